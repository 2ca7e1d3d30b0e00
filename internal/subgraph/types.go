package subgraph

// Entity shapes as returned by The Graph. Numeric fields arrive as
// decimal strings and are parsed during mapping.

type tokenResponse struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Decimals string `json:"decimals"`
}

type poolTokenResponse struct {
	ID string `json:"id"`
}

// v3 pool entity (Uniswap V3 schema).
type poolResponse struct {
	ID                     string            `json:"id"`
	FeeTier                string            `json:"feeTier"`
	Token0                 poolTokenResponse `json:"token0"`
	Token1                 poolTokenResponse `json:"token1"`
	TotalValueLockedToken0 string            `json:"totalValueLockedToken0"`
	TotalValueLockedToken1 string            `json:"totalValueLockedToken1"`
}

// v2 pair entity (SushiSwap/QuickSwap schema).
type pairResponse struct {
	ID       string            `json:"id"`
	Reserve0 string            `json:"reserve0"`
	Reserve1 string            `json:"reserve1"`
	Token0   poolTokenResponse `json:"token0"`
	Token1   poolTokenResponse `json:"token1"`
}

type v3QueryData struct {
	Tokens []tokenResponse `json:"tokens"`
	Pools  []poolResponse  `json:"pools"`
}

type v2QueryData struct {
	Tokens []tokenResponse `json:"tokens"`
	Pairs  []pairResponse  `json:"pairs"`
}
