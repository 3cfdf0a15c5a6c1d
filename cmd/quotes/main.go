package main

import (
	"context"
	"log"
	"math/big"
	"net/http"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"jup-ag-go/pkg/config"
	"jup-ag-go/pkg/jupiter"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg := config.NewConfig()
	client := jupiter.NewClient(
		jupiter.WithQuoteAPI(cfg.QuoteAPIURL),
		jupiter.WithPriceAPI(cfg.PriceAPIURL),
		jupiter.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		jupiter.WithLogger(logger),
	)
	ctx := context.Background()

	sol := solana.MustPublicKeyFromBase58(jupiter.WrappedSolMint)
	usdc := solana.MustPublicKeyFromBase58(jupiter.USDCMint)
	msol := solana.MustPublicKeyFromBase58("mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So")

	outputs := []struct {
		mint     solana.PublicKey
		decimals int32
	}{
		{usdc, 6},
		{msol, 9},
		{sol, 9},
	}

	uiAmount := decimal.NewFromInt(1)
	amount := uint64(1_000_000_000) // 1 SOL in lamports

	for _, output := range outputs {
		prices, err := client.Price(ctx, []solana.PublicKey{sol}, output.mint)
		if err != nil {
			logger.Fatalf("Failed to fetch price: %v", err)
		}
		if data, ok := prices[sol]; ok {
			logger.Printf("Price for %s %s is %s %s",
				uiAmount, data.MintSymbol, data.Price, data.VsTokenSymbol)
		}

		quote, err := client.Quote(ctx, sol, output.mint, amount, jupiter.QuoteConfig{
			SlippageBps: cfg.SlippageBps,
		})
		if err != nil {
			logger.Fatalf("Failed to fetch quote: %v", err)
		}

		labels := make([]string, 0, len(quote.RoutePlan))
		for _, step := range quote.RoutePlan {
			labels = append(labels, step.SwapInfo.Label)
		}
		logger.Printf("Quote: %s SOL for %s via %s (worst case with slippage: %s). Impact: %s%%",
			lamportsToUi(quote.InAmount.Uint64(), 9),
			lamportsToUi(quote.OutAmount.Uint64(), output.decimals),
			strings.Join(labels, ", "),
			lamportsToUi(quote.OtherAmountThreshold.Uint64(), output.decimals),
			quote.PriceImpactPct.Mul(decimal.NewFromInt(100)),
		)
	}
}

func lamportsToUi(v uint64, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), -decimals)
}
