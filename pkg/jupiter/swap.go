package jupiter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// SwapRequest represents the Jupiter Swap API request
type SwapRequest struct {
	UserPublicKey                 solana.PublicKey   `json:"userPublicKey"`
	WrapAndUnwrapSol              bool               `json:"wrapAndUnwrapSol"`
	UseSharedAccounts             bool               `json:"useSharedAccounts"`
	FeeAccount                    *solana.PublicKey  `json:"feeAccount,omitempty"`
	DestinationTokenAccount       *solana.PublicKey  `json:"destinationTokenAccount,omitempty"`
	UseTokenLedger                bool               `json:"useTokenLedger"`
	AsLegacyTransaction           bool               `json:"asLegacyTransaction,omitempty"`
	DynamicComputeUnitLimit       bool               `json:"dynamicComputeUnitLimit,omitempty"`
	SkipUserAccountsRPCCalls      bool               `json:"skipUserAccountsRpcCalls,omitempty"`
	ComputeUnitPriceMicroLamports uint64             `json:"computeUnitPriceMicroLamports,omitempty"`
	PrioritizationFee             *PrioritizationFee `json:"prioritizationFeeLamports,omitempty"`
	QuoteResponse                 QuoteResponse      `json:"quoteResponse"`
}

// NewSwapRequest builds a swap request with the defaults the API expects for
// a plain wallet swap: SOL wrapping handled automatically, shared program
// accounts on, versioned transaction format.
func NewSwapRequest(user solana.PublicKey, quote *QuoteResponse) SwapRequest {
	return SwapRequest{
		UserPublicKey:     user,
		WrapAndUnwrapSol:  true,
		UseSharedAccounts: true,
		QuoteResponse:     *quote,
	}
}

type prioritizationFeeMode uint8

const (
	feeAuto prioritizationFeeMode = iota
	feeExact
	feeAutoMultiplier
	feeJitoTip
	feePriorityLevel
)

// PriorityLevel names the fee percentile tiers the API accepts.
type PriorityLevel string

const (
	PriorityLevelMedium   PriorityLevel = "medium"
	PriorityLevelHigh     PriorityLevel = "high"
	PriorityLevelVeryHigh PriorityLevel = "veryHigh"
)

// PrioritizationFee is the prioritizationFeeLamports union. Depending on how
// it was constructed it serializes as the string "auto", a bare lamport
// amount, or one of the tagged single-key objects.
type PrioritizationFee struct {
	mode        prioritizationFeeMode
	lamports    uint64
	multiplier  uint64
	level       PriorityLevel
	maxLamports uint64
}

// PrioritizationFeeAuto lets the API pick the fee.
func PrioritizationFeeAuto() *PrioritizationFee {
	return &PrioritizationFee{mode: feeAuto}
}

// PrioritizationFeeExact sets an exact fee in lamports.
func PrioritizationFeeExact(lamports uint64) *PrioritizationFee {
	return &PrioritizationFee{mode: feeExact, lamports: lamports}
}

// PrioritizationFeeAutoMultiplier scales the automatic fee.
func PrioritizationFeeAutoMultiplier(multiplier uint64) *PrioritizationFee {
	return &PrioritizationFee{mode: feeAutoMultiplier, multiplier: multiplier}
}

// PrioritizationFeeJitoTip tips the Jito block engine instead of paying a
// compute-unit price.
func PrioritizationFeeJitoTip(lamports uint64) *PrioritizationFee {
	return &PrioritizationFee{mode: feeJitoTip, lamports: lamports}
}

// PrioritizationFeePriorityLevel asks for a fee percentile, capped.
func PrioritizationFeePriorityLevel(level PriorityLevel, maxLamports uint64) *PrioritizationFee {
	return &PrioritizationFee{mode: feePriorityLevel, level: level, maxLamports: maxLamports}
}

func (f PrioritizationFee) MarshalJSON() ([]byte, error) {
	switch f.mode {
	case feeAuto:
		return json.Marshal("auto")
	case feeExact:
		return json.Marshal(f.lamports)
	case feeAutoMultiplier:
		return json.Marshal(map[string]uint64{"autoMultiplier": f.multiplier})
	case feeJitoTip:
		return json.Marshal(map[string]uint64{"jitoTipLamports": f.lamports})
	case feePriorityLevel:
		return json.Marshal(map[string]interface{}{
			"priorityLevelWithMaxLamports": map[string]interface{}{
				"priorityLevel": f.level,
				"maxLamports":   f.maxLamports,
			},
		})
	}
	return nil, fmt.Errorf("unknown prioritization fee mode %d", f.mode)
}

// swapResponseWire represents the Jupiter Swap API response
type swapResponseWire struct {
	SwapTransaction           string `json:"swapTransaction"` // base64 encoded transaction
	LastValidBlockHeight      uint64 `json:"lastValidBlockHeight"`
	PrioritizationFeeLamports uint64 `json:"prioritizationFeeLamports"`
}

// Swap is an unsigned swap transaction built by the API, decoded and ready
// for signing.
type Swap struct {
	Transaction               *solana.Transaction
	LastValidBlockHeight      uint64
	PrioritizationFeeLamports uint64
}

// Swap asks the API to build the swap transaction for a quote.
func (c *Client) Swap(ctx context.Context, req SwapRequest) (*Swap, error) {
	var wire swapResponseWire
	if err := c.postJSON(ctx, c.quoteAPI+"/swap", req, &wire); err != nil {
		return nil, err
	}
	if wire.SwapTransaction == "" {
		return nil, &APIError{Message: "swap response carried no transaction"}
	}

	tx, err := decodeTransaction("swapTransaction", wire.SwapTransaction)
	if err != nil {
		return nil, err
	}
	return &Swap{
		Transaction:               tx,
		LastValidBlockHeight:      wire.LastValidBlockHeight,
		PrioritizationFeeLamports: wire.PrioritizationFeeLamports,
	}, nil
}
