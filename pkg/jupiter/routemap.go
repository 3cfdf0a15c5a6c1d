package jupiter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"
)

// indexedRouteMapWire is the compressed adjacency structure the API serves:
// a flat list of mint keys plus index lists keyed by index.
type indexedRouteMapWire struct {
	MintKeys        []string         `json:"mintKeys"`
	IndexedRouteMap map[string][]int `json:"indexedRouteMap"`
}

// RouteMap fetches the map of input mint to reachable output mints,
// expanding the index-compressed wire format.
func (c *Client) RouteMap(ctx context.Context, onlyDirectRoutes bool) (RouteMap, error) {
	u := c.quoteAPI + "/indexed-route-map"
	if onlyDirectRoutes {
		u += "?onlyDirectRoutes=true"
	}

	var wire indexedRouteMapWire
	if err := c.getJSON(ctx, u, &wire); err != nil {
		return nil, err
	}
	return ExpandRouteMap(wire.MintKeys, wire.IndexedRouteMap)
}

// ExpandRouteMap resolves an index-compressed route map against its mint key
// table. Both API versions serve the same compressed shape, so the expansion
// is shared.
func ExpandRouteMap(mintKeys []string, indexed map[string][]int) (RouteMap, error) {
	mints, err := parsePublicKeys("mintKeys", mintKeys)
	if err != nil {
		return nil, err
	}

	routeMap := make(RouteMap, len(indexed))
	for fromKey, toIndices := range indexed {
		from, err := strconv.Atoi(fromKey)
		if err != nil {
			return nil, &DecodeError{Field: "indexedRouteMap." + fromKey, Err: err}
		}
		if from < 0 || from >= len(mints) {
			return nil, &DecodeError{
				Field: "indexedRouteMap." + fromKey,
				Err:   fmt.Errorf("index %d out of range for %d mint keys", from, len(mints)),
			}
		}

		outputs := make([]solana.PublicKey, 0, len(toIndices))
		for _, to := range toIndices {
			if to < 0 || to >= len(mints) {
				return nil, &DecodeError{
					Field: "indexedRouteMap." + fromKey,
					Err:   fmt.Errorf("index %d out of range for %d mint keys", to, len(mints)),
				}
			}
			outputs = append(outputs, mints[to])
		}
		routeMap[mints[from]] = outputs
	}
	return routeMap, nil
}
