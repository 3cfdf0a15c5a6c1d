package jupiter

import (
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// SwapMode selects which side of the swap the amount parameter fixes.
type SwapMode string

const (
	SwapModeExactIn  SwapMode = "ExactIn"
	SwapModeExactOut SwapMode = "ExactOut"
)

// QuoteResponse represents the Jupiter Quote API response
type QuoteResponse struct {
	InputMint            solana.PublicKey `json:"inputMint"`
	InAmount             AmountLamports   `json:"inAmount"`
	OutputMint           solana.PublicKey `json:"outputMint"`
	OutAmount            AmountLamports   `json:"outAmount"`
	OtherAmountThreshold AmountLamports   `json:"otherAmountThreshold"`
	SwapMode             SwapMode         `json:"swapMode"`
	SlippageBps          int              `json:"slippageBps"`
	PlatformFee          *PlatformFee     `json:"platformFee,omitempty"`
	PriceImpactPct       decimal.Decimal  `json:"priceImpactPct"`
	RoutePlan            []RoutePlanStep  `json:"routePlan"`
	ContextSlot          uint64           `json:"contextSlot,omitempty"`
	TimeTaken            float64          `json:"timeTaken,omitempty"`
}

// PlatformFee is the integrator fee taken out of the quote, when one is set.
type PlatformFee struct {
	Amount AmountLamports `json:"amount"`
	FeeBps int            `json:"feeBps"`
}

// RoutePlanStep is one hop of the route a quote traverses, with the share of
// the input amount sent through it.
type RoutePlanStep struct {
	SwapInfo SwapInfo `json:"swapInfo"`
	Percent  int      `json:"percent"`
}

// SwapInfo describes the liquidity venue a route step goes through.
type SwapInfo struct {
	AmmKey     solana.PublicKey `json:"ammKey"`
	Label      string           `json:"label,omitempty"`
	InputMint  solana.PublicKey `json:"inputMint"`
	OutputMint solana.PublicKey `json:"outputMint"`
	InAmount   AmountLamports   `json:"inAmount"`
	OutAmount  AmountLamports   `json:"outAmount"`
	FeeAmount  AmountLamports   `json:"feeAmount"`
	FeeMint    solana.PublicKey `json:"feeMint"`
}

// PriceData is a single entry of the Price API response.
type PriceData struct {
	ID            solana.PublicKey `json:"id"`
	MintSymbol    string           `json:"mintSymbol"`
	VsToken       solana.PublicKey `json:"vsToken"`
	VsTokenSymbol string           `json:"vsTokenSymbol"`
	Price         decimal.Decimal  `json:"price"`
}

// priceResponse is the Price API envelope: data keyed by mint, plus timing.
type priceResponse struct {
	Data      map[string]PriceData `json:"data"`
	TimeTaken float64              `json:"timeTaken"`
}

// RouteMap maps each input mint to the output mints reachable from it.
type RouteMap map[solana.PublicKey][]solana.PublicKey
