package jupiter

import (
	"context"
	"net/url"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Price fetches the price of each mint denominated in vsMint. The result is
// keyed by mint; mints the API does not know are absent from the map.
func (c *Client) Price(ctx context.Context, mints []solana.PublicKey, vsMint solana.PublicKey) (map[solana.PublicKey]PriceData, error) {
	ids := make([]string, 0, len(mints))
	for _, mint := range mints {
		ids = append(ids, mint.String())
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vsToken", vsMint.String())

	var resp priceResponse
	if err := c.getJSON(ctx, c.priceAPI+"/price?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	prices := make(map[solana.PublicKey]PriceData, len(resp.Data))
	for raw, data := range resp.Data {
		mint, err := solana.PublicKeyFromBase58(raw)
		if err != nil {
			return nil, &DecodeError{Field: "data." + raw, Err: err}
		}
		prices[mint] = data
	}
	return prices, nil
}
