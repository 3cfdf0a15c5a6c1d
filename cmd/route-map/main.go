package main

import (
	"context"
	"log"
	"net/http"
	"os"

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

	routeMap, err := client.RouteMap(context.Background(), false)
	if err != nil {
		logger.Fatalf("Failed to fetch route map: %v", err)
	}
	logger.Printf("%d supported input tokens", len(routeMap))

	sol := solana.MustPublicKeyFromBase58(jupiter.WrappedSolMint)
	outputs, ok := routeMap[sol]
	if !ok {
		logger.Fatal("SOL is not an input token")
	}
	logger.Printf("%d supported output tokens for SOL:", len(outputs))
	for _, output := range outputs {
		logger.Printf("- %s", output)
	}
}
