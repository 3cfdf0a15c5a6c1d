package jupiter

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Tokens returns the mints the aggregator can currently trade.
func (c *Client) Tokens(ctx context.Context) ([]solana.PublicKey, error) {
	var mints []solana.PublicKey
	if err := c.getJSON(ctx, c.quoteAPI+"/tokens", &mints); err != nil {
		return nil, err
	}
	return mints, nil
}

// ProgramIDToLabel returns the DEX label for every program id the
// aggregator routes through.
func (c *Client) ProgramIDToLabel(ctx context.Context) (map[solana.PublicKey]string, error) {
	var wire map[string]string
	if err := c.getJSON(ctx, c.quoteAPI+"/program-id-to-label", &wire); err != nil {
		return nil, err
	}

	labels := make(map[solana.PublicKey]string, len(wire))
	for raw, label := range wire {
		programID, err := solana.PublicKeyFromBase58(raw)
		if err != nil {
			return nil, &DecodeError{Field: raw, Err: err}
		}
		labels[programID] = label
	}
	return labels, nil
}
