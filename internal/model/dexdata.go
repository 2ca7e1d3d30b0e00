package model

// DexData is one aggregated snapshot of all configured sources.
type DexData struct {
	Tokens []Token `json:"tokens"`
	Pools  []Pool  `json:"pools"`
}

// TokenLookup builds an address-keyed index over the snapshot's tokens.
// Later duplicates do not overwrite earlier entries.
func (d *DexData) TokenLookup() map[string]Token {
	lookup := make(map[string]Token, len(d.Tokens))
	for _, token := range d.Tokens {
		if _, ok := lookup[token.Address]; ok {
			continue
		}
		lookup[token.Address] = token
	}
	return lookup
}
