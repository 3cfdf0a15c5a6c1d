// Package jupiterv1 binds the original v1 quote API. The service has since
// moved on to the shapes in pkg/jupiter, but gateways pinned to the old paths
// still speak this format, so the binding is kept alongside the current one.
package jupiterv1

import (
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// Response is the generic envelope with timing information the v1 endpoints
// wrap their payloads in.
type Response[T any] struct {
	Data      T       `json:"data"`
	TimeTaken float64 `json:"timeTaken"`
}

// Price is a simple price lookup result.
type Price struct {
	InputMint    solana.PublicKey `json:"inputMint"`
	InputSymbol  string           `json:"inputSymbol"`
	OutputMint   solana.PublicKey `json:"outputMint"`
	OutputSymbol string           `json:"outputSymbol"`
	Amount       uint64           `json:"amount"`
	Price        decimal.Decimal  `json:"price"`
}

// Quote is a priced route proposal. The v1 API returns several per request,
// best first.
type Quote struct {
	InAmount              uint64          `json:"inAmount"`
	OutAmount             uint64          `json:"outAmount"`
	OutAmountWithSlippage uint64          `json:"outAmountWithSlippage"`
	PriceImpactPct        decimal.Decimal `json:"priceImpactPct"`
	MarketInfos           []MarketInfo    `json:"marketInfos"`
}

// MarketInfo is one liquidity venue a quote traverses.
type MarketInfo struct {
	ID                 string           `json:"id"`
	Label              string           `json:"label"`
	InputMint          solana.PublicKey `json:"inputMint"`
	OutputMint         solana.PublicKey `json:"outputMint"`
	NotEnoughLiquidity bool             `json:"notEnoughLiquidity"`
	InAmount           uint64           `json:"inAmount"`
	OutAmount          uint64           `json:"outAmount"`
	PriceImpactPct     decimal.Decimal  `json:"priceImpactPct"`
	LpFee              FeeInfo          `json:"lpFee"`
	PlatformFee        FeeInfo          `json:"platformFee"`
}

// FeeInfo is a fee taken by a venue, in smallest units of Mint.
type FeeInfo struct {
	Amount uint64           `json:"amount"`
	Mint   solana.PublicKey `json:"mint"`
	Pct    decimal.Decimal  `json:"pct"`
}

// Swap holds the partially built transactions required to execute a swap.
// Setup and Cleanup are only present when the API needs them.
type Swap struct {
	Setup   *solana.Transaction
	Swap    *solana.Transaction
	Cleanup *solana.Transaction
}

// RouteMap maps each input mint to the output mints reachable from it.
type RouteMap map[solana.PublicKey][]solana.PublicKey
