package model

// Token captures ERC20 metadata as reported by a subgraph.
// Address is always lowercase 0x-prefixed hex.
type Token struct {
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	Address  string `json:"address"`
}
