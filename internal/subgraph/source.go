package subgraph

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"dexScope/internal/model"
)

// v2-style pairs do not expose a fee tier; the classic constant-product
// AMMs all charge 0.30%.
const v2FeeBasisPoints = 30

const v3Query = `{
  tokens(first: 100, orderBy: totalValueLockedUSD, orderDirection: desc) {
    id
    symbol
    decimals
  }
  pools(first: 100, orderBy: totalValueLockedUSD, orderDirection: desc) {
    id
    feeTier
    token0 { id }
    token1 { id }
    totalValueLockedToken0
    totalValueLockedToken1
  }
}`

const v2Query = `{
  tokens(first: 100, orderBy: tradeVolumeUSD, orderDirection: desc) {
    id
    symbol
    decimals
  }
  pairs(first: 100, orderBy: reserveUSD, orderDirection: desc) {
    id
    reserve0
    reserve1
    token0 { id }
    token1 { id }
  }
}`

// SchemaKind selects which query document and entity shape a source uses.
type SchemaKind int

const (
	SchemaV3 SchemaKind = iota
	SchemaV2
)

// Source describes one subgraph endpoint and how to map its entities.
type Source struct {
	Name    string
	Chain   string
	URL     string
	Factory string
	Schema  SchemaKind
}

// Fetch queries the source and maps its entities into the common shape.
func (s Source) Fetch(ctx context.Context, client *Client) (model.DexData, error) {
	switch s.Schema {
	case SchemaV3:
		return s.fetchV3(ctx, client)
	case SchemaV2:
		return s.fetchV2(ctx, client)
	default:
		return model.DexData{}, fmt.Errorf("unknown schema kind %d", s.Schema)
	}
}

func (s Source) fetchV3(ctx context.Context, client *Client) (model.DexData, error) {
	var data v3QueryData
	if err := client.Query(ctx, s.URL, v3Query, &data); err != nil {
		return model.DexData{}, err
	}

	out := model.DexData{
		Tokens: mapTokens(data.Tokens),
		Pools:  make([]model.Pool, 0, len(data.Pools)),
	}
	for _, pool := range data.Pools {
		id := NormalizeAddress(pool.ID)
		out.Pools = append(out.Pools, model.Pool{
			ID:       &id,
			Factory:  s.factoryRef(),
			DexName:  s.Name,
			Chain:    s.Chain,
			Token0:   NormalizeAddress(pool.Token0.ID),
			Token1:   NormalizeAddress(pool.Token1.ID),
			Reserve0: parseAmount(pool.TotalValueLockedToken0),
			Reserve1: parseAmount(pool.TotalValueLockedToken1),
			Fee:      parseFee(pool.FeeTier),
		})
	}
	return out, nil
}

func (s Source) fetchV2(ctx context.Context, client *Client) (model.DexData, error) {
	var data v2QueryData
	if err := client.Query(ctx, s.URL, v2Query, &data); err != nil {
		return model.DexData{}, err
	}

	out := model.DexData{
		Tokens: mapTokens(data.Tokens),
		Pools:  make([]model.Pool, 0, len(data.Pairs)),
	}
	for _, pair := range data.Pairs {
		id := NormalizeAddress(pair.ID)
		out.Pools = append(out.Pools, model.Pool{
			ID:       &id,
			Factory:  s.factoryRef(),
			DexName:  s.Name,
			Chain:    s.Chain,
			Token0:   NormalizeAddress(pair.Token0.ID),
			Token1:   NormalizeAddress(pair.Token1.ID),
			Reserve0: parseAmount(pair.Reserve0),
			Reserve1: parseAmount(pair.Reserve1),
			Fee:      v2FeeBasisPoints,
		})
	}
	return out, nil
}

func (s Source) factoryRef() *string {
	if s.Factory == "" {
		return nil
	}
	factory := NormalizeAddress(s.Factory)
	return &factory
}

func mapTokens(tokens []tokenResponse) []model.Token {
	out := make([]model.Token, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, model.Token{
			Symbol:   token.Symbol,
			Decimals: parseDecimals(token.Decimals),
			Address:  NormalizeAddress(token.ID),
		})
	}
	return out
}

// NormalizeAddress lowercases an address, going through the checksummed
// form when the input is valid hex so malformed padding is fixed up.
func NormalizeAddress(address string) string {
	if common.IsHexAddress(address) {
		return strings.ToLower(common.HexToAddress(address).Hex())
	}
	return strings.ToLower(strings.TrimSpace(address))
}

func parseDecimals(raw string) uint8 {
	value, err := strconv.ParseUint(raw, 10, 8)
	if err != nil || value > 18 {
		return 18
	}
	return uint8(value)
}

func parseFee(raw string) uint64 {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

var maxUint64 = new(big.Int).SetUint64(math.MaxUint64)

// parseAmount converts a subgraph decimal string into a uint64, dropping
// any fractional part and saturating at the uint64 range.
func parseAmount(raw string) uint64 {
	raw = strings.TrimSpace(raw)
	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		raw = raw[:idx]
	}
	if raw == "" || raw == "-" || strings.HasPrefix(raw, "-") {
		return 0
	}

	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return 0
	}
	if value.Cmp(maxUint64) > 0 {
		return math.MaxUint64
	}
	return value.Uint64()
}
