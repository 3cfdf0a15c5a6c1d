package jupiterv1

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"jup-ag-go/pkg/jupiter"
)

// DefaultAPI is the v1 quote API base URL.
const DefaultAPI = "https://quote-api.jup.ag/v1"

// Client represents a v1 Jupiter API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(base, "/") }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new v1 Jupiter API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: DefaultAPI,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Price fetches the price for swapping uiAmount of inputMint into
// outputMint. uiAmount is in display units, not smallest units.
func (c *Client) Price(ctx context.Context, inputMint, outputMint solana.PublicKey, uiAmount float64) (*Response[Price], error) {
	q := url.Values{}
	q.Set("inputMint", inputMint.String())
	q.Set("outputMint", outputMint.String())
	q.Set("amount", strconv.FormatFloat(uiAmount, 'f', -1, 64))

	var resp Response[Price]
	if err := jupiter.GetJSON(ctx, c.httpClient, c.baseURL+"/price?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QuoteConfig carries the optional parameters of a v1 quote request.
type QuoteConfig struct {
	OnlyDirectRoutes bool
	Slippage         float64 // fractional, 0.005 is 0.5%; zero omits the parameter
	FeesBps          int
}

// Quote fetches priced routes for swapping amount of inputMint into
// outputMint, best route first. amount is in smallest units.
func (c *Client) Quote(ctx context.Context, inputMint, outputMint solana.PublicKey, amount uint64, cfg QuoteConfig) (*Response[[]Quote], error) {
	q := url.Values{}
	q.Set("inputMint", inputMint.String())
	q.Set("outputMint", outputMint.String())
	q.Set("amount", strconv.FormatUint(amount, 10))
	q.Set("onlyDirectRoutes", strconv.FormatBool(cfg.OnlyDirectRoutes))
	if cfg.Slippage > 0 {
		q.Set("slippage", strconv.FormatFloat(cfg.Slippage, 'f', -1, 64))
	}
	if cfg.FeesBps > 0 {
		q.Set("feesBps", strconv.Itoa(cfg.FeesBps))
	}

	var resp Response[[]Quote]
	if err := jupiter.GetJSON(ctx, c.httpClient, c.baseURL+"/quote?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type swapRequestWire struct {
	Quote         Quote   `json:"quote"`
	WrapUnwrapSOL bool    `json:"wrapUnwrapSOL"`
	FeeAccount    *string `json:"feeAccount"`
	TokenLedger   *string `json:"tokenLedger"`
	UserPublicKey string  `json:"userPublicKey"`
}

type swapResponseWire struct {
	SetupTransaction   *string `json:"setupTransaction"`
	SwapTransaction    string  `json:"swapTransaction"`
	CleanupTransaction *string `json:"cleanupTransaction"`
}

// Swap asks the API to build the transactions executing a quote. Setup and
// cleanup transactions are present only when the wallet needs intermediate
// token accounts created or unwound.
func (c *Client) Swap(ctx context.Context, quote Quote, userPublicKey solana.PublicKey) (*Swap, error) {
	req := swapRequestWire{
		Quote:         quote,
		WrapUnwrapSOL: true,
		UserPublicKey: userPublicKey.String(),
	}

	var wire swapResponseWire
	if err := jupiter.PostJSON(ctx, c.httpClient, c.baseURL+"/swap", req, &wire); err != nil {
		return nil, err
	}

	swap := &Swap{}
	var err error
	if wire.SetupTransaction != nil {
		if swap.Setup, err = decodeTransaction("setupTransaction", *wire.SetupTransaction); err != nil {
			return nil, err
		}
	}
	if swap.Swap, err = decodeTransaction("swapTransaction", wire.SwapTransaction); err != nil {
		return nil, err
	}
	if wire.CleanupTransaction != nil {
		if swap.Cleanup, err = decodeTransaction("cleanupTransaction", *wire.CleanupTransaction); err != nil {
			return nil, err
		}
	}
	return swap, nil
}

type indexedRouteMapWire struct {
	MintKeys        []string         `json:"mintKeys"`
	IndexedRouteMap map[string][]int `json:"indexedRouteMap"`
}

// RouteMap fetches the map of input mint to reachable output mints,
// expanding the index-compressed wire format.
func (c *Client) RouteMap(ctx context.Context, onlyDirectRoutes bool) (RouteMap, error) {
	u := c.baseURL + "/indexed-route-map?onlyDirectRoutes=" + strconv.FormatBool(onlyDirectRoutes)

	var wire indexedRouteMapWire
	if err := jupiter.GetJSON(ctx, c.httpClient, u, &wire); err != nil {
		return nil, err
	}

	expanded, err := jupiter.ExpandRouteMap(wire.MintKeys, wire.IndexedRouteMap)
	if err != nil {
		return nil, err
	}
	return RouteMap(expanded), nil
}

func decodeTransaction(field, encoded string) (*solana.Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &jupiter.DecodeError{Field: field, Err: err}
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, &jupiter.DecodeError{Field: field, Err: err}
	}
	return tx, nil
}
