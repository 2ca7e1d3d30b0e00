package query

import (
	"fmt"
	"strconv"
	"strings"

	"dexScope/internal/model"
)

const (
	unknownSymbol   = "UNKNOWN"
	unknownDecimals = 18
)

// TokenInfo is the expanded token side of a formatted pool.
type TokenInfo struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// FormattedPool is the external representation of a pool. Reserves and
// fee are decimal strings so values beyond 2^53 survive JSON clients.
type FormattedPool struct {
	ID       string    `json:"id"`
	Factory  *string   `json:"factory"`
	Token0   TokenInfo `json:"token0"`
	Token1   TokenInfo `json:"token1"`
	Reserve0 string    `json:"reserve0"`
	Reserve1 string    `json:"reserve1"`
	Fee      string    `json:"fee"`
	Protocol string    `json:"protocol"`
	Network  string    `json:"network"`
}

// Pagination describes the position of a Page within the filtered set.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// Page is the terminal output of the pipeline.
type Page struct {
	Data       []FormattedPool `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

// FormatPool converts a pool into its external shape, resolving token
// metadata through the lowercase-address lookup.
func FormatPool(pool model.Pool, tokens map[string]model.Token) FormattedPool {
	id := fmt.Sprintf("%s-%s", pool.Token0, pool.Token1)
	if pool.ID != nil {
		id = *pool.ID
	}

	return FormattedPool{
		ID:       id,
		Factory:  pool.Factory,
		Token0:   resolveToken(pool.Token0, tokens),
		Token1:   resolveToken(pool.Token1, tokens),
		Reserve0: strconv.FormatUint(pool.Reserve0, 10),
		Reserve1: strconv.FormatUint(pool.Reserve1, 10),
		Fee:      strconv.FormatUint(pool.Fee, 10),
		Protocol: pool.DexName,
		Network:  pool.Chain,
	}
}

// The lookup is keyed by lowercase address, so the key is normalized
// here too; a hand-supplied snapshot may carry mixed-case addresses.
func resolveToken(address string, tokens map[string]model.Token) TokenInfo {
	if token, ok := tokens[strings.ToLower(address)]; ok {
		return TokenInfo{
			Address:  address,
			Symbol:   token.Symbol,
			Decimals: token.Decimals,
		}
	}
	return TokenInfo{
		Address:  address,
		Symbol:   unknownSymbol,
		Decimals: unknownDecimals,
	}
}
