package jupiter

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// QuoteConfig carries the optional parameters of a quote request. Zero
// values are left out of the query string.
type QuoteConfig struct {
	SlippageBps         int
	SwapMode            SwapMode
	Dexes               []string
	ExcludeDexes        []string
	OnlyDirectRoutes    bool
	AsLegacyTransaction bool
	PlatformFeeBps      int
	MaxAccounts         int
}

func (cfg QuoteConfig) values(inputMint, outputMint solana.PublicKey, amount uint64) url.Values {
	q := url.Values{}
	q.Set("inputMint", inputMint.String())
	q.Set("outputMint", outputMint.String())
	q.Set("amount", strconv.FormatUint(amount, 10))
	if cfg.SlippageBps > 0 {
		q.Set("slippageBps", strconv.Itoa(cfg.SlippageBps))
	}
	if cfg.SwapMode != "" {
		q.Set("swapMode", string(cfg.SwapMode))
	}
	if len(cfg.Dexes) > 0 {
		q.Set("dexes", strings.Join(cfg.Dexes, ","))
	}
	if len(cfg.ExcludeDexes) > 0 {
		q.Set("excludeDexes", strings.Join(cfg.ExcludeDexes, ","))
	}
	if cfg.OnlyDirectRoutes {
		q.Set("onlyDirectRoutes", "true")
	}
	if cfg.AsLegacyTransaction {
		q.Set("asLegacyTransaction", "true")
	}
	if cfg.PlatformFeeBps > 0 {
		q.Set("platformFeeBps", strconv.Itoa(cfg.PlatformFeeBps))
	}
	if cfg.MaxAccounts > 0 {
		q.Set("maxAccounts", strconv.Itoa(cfg.MaxAccounts))
	}
	return q
}

// Quote fetches a priced route for swapping amount of inputMint into
// outputMint. amount is in smallest units of the mint the swap mode fixes.
func (c *Client) Quote(ctx context.Context, inputMint, outputMint solana.PublicKey, amount uint64, cfg QuoteConfig) (*QuoteResponse, error) {
	u := c.quoteAPI + "/quote?" + cfg.values(inputMint, outputMint, amount).Encode()

	var quote QuoteResponse
	if err := c.getJSON(ctx, u, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}
