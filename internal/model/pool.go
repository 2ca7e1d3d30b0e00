package model

// Pool represents a normalized liquidity pool from any source DEX.
// ID and Factory are nil when the source does not report them.
// Token addresses are lowercase hex, reserves are in the token's
// smallest unit, and Fee is in basis points.
type Pool struct {
	ID       *string `json:"id"`
	Factory  *string `json:"factory"`
	DexName  string  `json:"dexName"`
	Chain    string  `json:"chain"`
	Token0   string  `json:"token0"`
	Token1   string  `json:"token1"`
	Reserve0 uint64  `json:"reserve0"`
	Reserve1 uint64  `json:"reserve1"`
	Fee      uint64  `json:"fee"`
}
