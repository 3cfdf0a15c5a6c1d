package jupiterv1

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jup-ag-go/pkg/jupiter"
)

const (
	solMint  = "So11111111111111111111111111111111111111112"
	usdcMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
)

const quoteFixture = `{
	"data": [
		{
			"inAmount": 1000000000,
			"outAmount": 157430648,
			"outAmountWithSlippage": 156643495,
			"priceImpactPct": 0.0001979,
			"marketInfos": [
				{
					"id": "7EJfcAv4EkAxRtg9QG8xRHWKdmg74BS4JyckKqXBuriw",
					"label": "Orca",
					"inputMint": "` + solMint + `",
					"outputMint": "` + usdcMint + `",
					"notEnoughLiquidity": false,
					"inAmount": 1000000000,
					"outAmount": 157430648,
					"priceImpactPct": 0.0001979,
					"lpFee": {"amount": 300000, "mint": "` + solMint + `", "pct": 0.0003},
					"platformFee": {"amount": 0, "mint": "` + usdcMint + `", "pct": 0}
				}
			]
		}
	],
	"timeTaken": 0.06
}`

func TestQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/quote", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, solMint, q.Get("inputMint"))
		assert.Equal(t, usdcMint, q.Get("outputMint"))
		assert.Equal(t, "1000000000", q.Get("amount"))
		assert.Equal(t, "false", q.Get("onlyDirectRoutes"))
		assert.Equal(t, "0.005", q.Get("slippage"))
		w.Write([]byte(quoteFixture))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	resp, err := client.Quote(
		context.Background(),
		solana.MustPublicKeyFromBase58(solMint),
		solana.MustPublicKeyFromBase58(usdcMint),
		1_000_000_000,
		QuoteConfig{Slippage: 0.005},
	)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 0.06, resp.TimeTaken)

	quote := resp.Data[0]
	assert.Equal(t, uint64(1_000_000_000), quote.InAmount)
	assert.Equal(t, uint64(157_430_648), quote.OutAmount)
	assert.Equal(t, uint64(156_643_495), quote.OutAmountWithSlippage)
	require.Len(t, quote.MarketInfos, 1)

	market := quote.MarketInfos[0]
	assert.Equal(t, "Orca", market.Label)
	assert.False(t, market.NotEnoughLiquidity)
	assert.Equal(t, solMint, market.InputMint.String())
	assert.Equal(t, uint64(300_000), market.LpFee.Amount)
	assert.True(t, market.LpFee.Pct.Equal(decimal.RequireFromString("0.0003")))
}

func TestPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/price", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, solMint, q.Get("inputMint"))
		assert.Equal(t, usdcMint, q.Get("outputMint"))
		assert.Equal(t, "1", q.Get("amount"))
		w.Write([]byte(`{
			"data": {
				"inputMint": "` + solMint + `",
				"inputSymbol": "SOL",
				"outputMint": "` + usdcMint + `",
				"outputSymbol": "USDC",
				"amount": 1,
				"price": 157.43
			},
			"timeTaken": 0.001
		}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	resp, err := client.Price(
		context.Background(),
		solana.MustPublicKeyFromBase58(solMint),
		solana.MustPublicKeyFromBase58(usdcMint),
		1,
	)
	require.NoError(t, err)
	assert.Equal(t, "SOL", resp.Data.InputSymbol)
	assert.Equal(t, "USDC", resp.Data.OutputSymbol)
	assert.True(t, resp.Data.Price.Equal(decimal.RequireFromString("157.43")))
}

func encodedTestTransaction(t *testing.T, payer solana.PrivateKey) string {
	t.Helper()

	tx, err := solana.NewTransaction(
		[]solana.Instruction{
			system.NewTransferInstruction(
				1,
				payer.PublicKey(),
				solana.MustPublicKeyFromBase58(usdcMint),
			).Build(),
		},
		solana.Hash{},
		solana.TransactionPayer(payer.PublicKey()),
	)
	require.NoError(t, err)

	raw, err := tx.MarshalBinary()
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func TestSwap(t *testing.T) {
	payer := solana.NewWallet().PrivateKey
	encoded := encodedTestTransaction(t, payer)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/swap", r.URL.Path)

		var req map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.JSONEq(t, "true", string(req["wrapUnwrapSOL"]))
		assert.JSONEq(t, fmt.Sprintf("%q", payer.PublicKey()), string(req["userPublicKey"]))

		fmt.Fprintf(w, `{
			"setupTransaction": %q,
			"swapTransaction": %q,
			"cleanupTransaction": null
		}`, encoded, encoded)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	swap, err := client.Swap(context.Background(), Quote{InAmount: 1000}, payer.PublicKey())
	require.NoError(t, err)

	require.NotNil(t, swap.Setup)
	require.NotNil(t, swap.Swap)
	assert.Nil(t, swap.Cleanup)
	assert.Equal(t, payer.PublicKey(), swap.Swap.Message.AccountKeys[0])
}

func TestSwapMalformedSetupTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"setupTransaction": "AAAA", "swapTransaction": "AAAA"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Swap(context.Background(), Quote{}, solana.NewWallet().PublicKey())
	require.Error(t, err)

	var decodeErr *jupiter.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "setupTransaction", decodeErr.Field)
}

func TestRouteMap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/indexed-route-map", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("onlyDirectRoutes"))
		w.Write([]byte(`{
			"mintKeys": ["` + solMint + `", "` + usdcMint + `"],
			"indexedRouteMap": {"0": [1]}
		}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	routeMap, err := client.RouteMap(context.Background(), false)
	require.NoError(t, err)

	sol := solana.MustPublicKeyFromBase58(solMint)
	usdc := solana.MustPublicKeyFromBase58(usdcMint)
	require.Contains(t, routeMap, sol)
	assert.Equal(t, []solana.PublicKey{usdc}, routeMap[sol])
}

func TestQuoteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "Rate limit exceeded"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Quote(
		context.Background(),
		solana.MustPublicKeyFromBase58(solMint),
		solana.MustPublicKeyFromBase58(usdcMint),
		1,
		QuoteConfig{},
	)
	var apiErr *jupiter.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}
