package jupiter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quoteFixture = `{
	"inputMint": "So11111111111111111111111111111111111111112",
	"inAmount": "1000000000",
	"outputMint": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
	"outAmount": "157430648",
	"otherAmountThreshold": "156643495",
	"swapMode": "ExactIn",
	"slippageBps": 50,
	"platformFee": null,
	"priceImpactPct": "0.0001979",
	"routePlan": [
		{
			"swapInfo": {
				"ammKey": "7EJfcAv4EkAxRtg9QG8xRHWKdmg74BS4JyckKqXBuriw",
				"label": "Orca",
				"inputMint": "So11111111111111111111111111111111111111112",
				"outputMint": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
				"inAmount": "1000000000",
				"outAmount": "157430648",
				"feeAmount": "300000",
				"feeMint": "So11111111111111111111111111111111111111112"
			},
			"percent": 100
		}
	],
	"contextSlot": 268599026,
	"timeTaken": 0.044
}`

func TestQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/quote", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, WrappedSolMint, q.Get("inputMint"))
		assert.Equal(t, USDCMint, q.Get("outputMint"))
		assert.Equal(t, "1000000000", q.Get("amount"))
		assert.Equal(t, "50", q.Get("slippageBps"))
		assert.Equal(t, "true", q.Get("onlyDirectRoutes"))
		assert.Empty(t, q.Get("swapMode"), "zero-valued parameters must be omitted")
		assert.Empty(t, q.Get("maxAccounts"), "zero-valued parameters must be omitted")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(quoteFixture))
	}))
	defer server.Close()

	client := NewClient(WithQuoteAPI(server.URL))
	quote, err := client.Quote(
		context.Background(),
		solana.MustPublicKeyFromBase58(WrappedSolMint),
		solana.MustPublicKeyFromBase58(USDCMint),
		1_000_000_000,
		QuoteConfig{SlippageBps: 50, OnlyDirectRoutes: true},
	)
	require.NoError(t, err)

	assert.Equal(t, WrappedSolMint, quote.InputMint.String())
	assert.Equal(t, uint64(1_000_000_000), quote.InAmount.Uint64())
	assert.Equal(t, uint64(157_430_648), quote.OutAmount.Uint64())
	assert.Equal(t, uint64(156_643_495), quote.OtherAmountThreshold.Uint64())
	assert.Equal(t, SwapModeExactIn, quote.SwapMode)
	assert.Equal(t, 50, quote.SlippageBps)
	assert.Nil(t, quote.PlatformFee)
	assert.True(t, quote.PriceImpactPct.Equal(decimal.RequireFromString("0.0001979")))
	require.Len(t, quote.RoutePlan, 1)
	assert.Equal(t, "Orca", quote.RoutePlan[0].SwapInfo.Label)
	assert.Equal(t, 100, quote.RoutePlan[0].Percent)
	assert.Equal(t, uint64(300_000), quote.RoutePlan[0].SwapInfo.FeeAmount.Uint64())
	assert.Equal(t, uint64(268_599_026), quote.ContextSlot)
}

func TestQuotePlatformFee(t *testing.T) {
	fixture := `{
		"inputMint": "So11111111111111111111111111111111111111112",
		"inAmount": "1000",
		"outputMint": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"outAmount": "500",
		"otherAmountThreshold": "495",
		"swapMode": "ExactIn",
		"slippageBps": 100,
		"platformFee": {"amount": "5", "feeBps": 10},
		"priceImpactPct": "0",
		"routePlan": []
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("platformFeeBps"))
		w.Write([]byte(fixture))
	}))
	defer server.Close()

	client := NewClient(WithQuoteAPI(server.URL))
	quote, err := client.Quote(
		context.Background(),
		solana.MustPublicKeyFromBase58(WrappedSolMint),
		solana.MustPublicKeyFromBase58(USDCMint),
		1000,
		QuoteConfig{SlippageBps: 100, PlatformFeeBps: 10},
	)
	require.NoError(t, err)
	require.NotNil(t, quote.PlatformFee)
	assert.Equal(t, uint64(5), quote.PlatformFee.Amount.Uint64())
	assert.Equal(t, 10, quote.PlatformFee.FeeBps)
}

func TestQuoteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errorCode": "COULD_NOT_FIND_ANY_ROUTE", "error": "No routes found for the input and output mints"}`))
	}))
	defer server.Close()

	client := NewClient(WithQuoteAPI(server.URL))
	_, err := client.Quote(
		context.Background(),
		solana.MustPublicKeyFromBase58(WrappedSolMint),
		solana.MustPublicKeyFromBase58(USDCMint),
		1,
		QuoteConfig{},
	)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "COULD_NOT_FIND_ANY_ROUTE", apiErr.Code)
	assert.Contains(t, apiErr.Message, "No routes found")
}

func TestQuoteInBandError(t *testing.T) {
	// Some gateway versions report errors with a 200 status.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Cannot compute other amount threshold"}`))
	}))
	defer server.Close()

	client := NewClient(WithQuoteAPI(server.URL))
	_, err := client.Quote(
		context.Background(),
		solana.MustPublicKeyFromBase58(WrappedSolMint),
		solana.MustPublicKeyFromBase58(USDCMint),
		1,
		QuoteConfig{},
	)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Cannot compute other amount threshold", apiErr.Message)
}

func TestQuoteNonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := NewClient(WithQuoteAPI(server.URL))
	_, err := client.Quote(
		context.Background(),
		solana.MustPublicKeyFromBase58(WrappedSolMint),
		solana.MustPublicKeyFromBase58(USDCMint),
		1,
		QuoteConfig{},
	)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "upstream unavailable")
}

func TestQuoteTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(WithQuoteAPI(server.URL))
	_, err := client.Quote(
		context.Background(),
		solana.MustPublicKeyFromBase58(WrappedSolMint),
		solana.MustPublicKeyFromBase58(USDCMint),
		1,
		QuoteConfig{},
	)
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}
