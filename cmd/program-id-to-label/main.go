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

	labels, err := client.ProgramIDToLabel(context.Background())
	if err != nil {
		logger.Fatalf("Failed to fetch program labels: %v", err)
	}

	logger.Printf("%d programs:", len(labels))
	for programID, label := range labels {
		logger.Printf("%s  %s", programID, label)
	}
}
