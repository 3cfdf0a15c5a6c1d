package main

import (
	"context"
	"log"
	"net/http"
	"os"

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

	mints, err := client.Tokens(context.Background())
	if err != nil {
		logger.Fatalf("Failed to fetch tradable tokens: %v", err)
	}

	logger.Printf("%d tradable tokens:", len(mints))
	for _, mint := range mints {
		logger.Printf("- %s", mint)
	}
}
