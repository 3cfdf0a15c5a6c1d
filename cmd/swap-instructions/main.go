package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/gagliardetto/solana-go"

	"jup-ag-go/pkg/config"
	"jup-ag-go/pkg/jupiter"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg := config.NewConfig()
	client := jupiter.NewClient(
		jupiter.WithQuoteAPI(cfg.QuoteAPIURL),
		jupiter.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		jupiter.WithLogger(logger),
	)
	ctx := context.Background()

	wallet := solana.NewWallet()

	sol := solana.MustPublicKeyFromBase58(jupiter.WrappedSolMint)
	msol := solana.MustPublicKeyFromBase58("mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So")

	quote, err := client.Quote(ctx, sol, msol, 10_000_000, jupiter.QuoteConfig{
		SlippageBps: cfg.SlippageBps,
	})
	if err != nil {
		logger.Fatalf("Failed to fetch quote: %v", err)
	}

	label := "Unknown DEX"
	if len(quote.RoutePlan) > 0 && quote.RoutePlan[0].SwapInfo.Label != "" {
		label = quote.RoutePlan[0].SwapInfo.Label
	}
	logger.Printf("Quote: %s lamports of SOL for %s of mSOL via %s (worst case %s)",
		quote.InAmount, quote.OutAmount, label, quote.OtherAmountThreshold)

	instructions, err := client.SwapInstructions(ctx, jupiter.NewSwapRequest(wallet.PublicKey(), quote))
	if err != nil {
		logger.Fatalf("Failed to fetch swap instructions: %v", err)
	}

	logger.Printf("Swap uses %d setup, %d compute budget and %d lookup tables",
		len(instructions.SetupInstructions),
		len(instructions.ComputeBudgetInstructions),
		len(instructions.AddressLookupTableAddresses))
	spew.Dump(instructions)
}
