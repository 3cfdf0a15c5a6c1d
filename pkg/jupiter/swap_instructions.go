package jupiter

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// SwapInstructions is the decoded /swap-instructions response: the same swap
// the /swap endpoint would build, broken out into its instructions so the
// caller can assemble the transaction themselves.
type SwapInstructions struct {
	TokenLedgerInstruction      *Instruction       `json:"tokenLedgerInstruction"`
	ComputeBudgetInstructions   []Instruction      `json:"computeBudgetInstructions"`
	SetupInstructions           []Instruction      `json:"setupInstructions"`
	SwapInstruction             Instruction        `json:"swapInstruction"`
	CleanupInstruction          *Instruction       `json:"cleanupInstruction"`
	OtherInstructions           []Instruction      `json:"otherInstructions"`
	AddressLookupTableAddresses []solana.PublicKey `json:"addressLookupTableAddresses"`
	PrioritizationFeeLamports   uint64             `json:"prioritizationFeeLamports"`
}

// SwapInstructions asks the API for the individual instructions of a swap
// instead of a fully built transaction.
func (c *Client) SwapInstructions(ctx context.Context, req SwapRequest) (*SwapInstructions, error) {
	var out SwapInstructions
	if err := c.postJSON(ctx, c.quoteAPI+"/swap-instructions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
