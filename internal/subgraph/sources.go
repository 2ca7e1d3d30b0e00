package subgraph

// Canonical factory addresses for the supported sources.
const (
	uniswapV3Factory = "0x1F98431c8aD98523631AE4a59f267346ea31F984"
	sushiswapFactory = "0xC0AEe478e3658e2610c5F7A4A2E1777cE9e4f2Ac"
	quickswapFactory = "0x5757371414417b8C6CAad45bAeF941aBc7d3Ab32"
)

// SourceURLs holds the configured subgraph endpoints. Empty URLs
// disable the source.
type SourceURLs struct {
	Uniswap   string
	Sushiswap string
	Quickswap string
}

// BuildSources returns the configured sources with their chain and
// factory metadata filled in.
func BuildSources(urls SourceURLs) []Source {
	sources := make([]Source, 0, 3)
	if urls.Uniswap != "" {
		sources = append(sources, Source{
			Name:    "Uniswap V3",
			Chain:   "Ethereum",
			URL:     urls.Uniswap,
			Factory: uniswapV3Factory,
			Schema:  SchemaV3,
		})
	}
	if urls.Sushiswap != "" {
		sources = append(sources, Source{
			Name:    "SushiSwap",
			Chain:   "Ethereum",
			URL:     urls.Sushiswap,
			Factory: sushiswapFactory,
			Schema:  SchemaV2,
		})
	}
	if urls.Quickswap != "" {
		sources = append(sources, Source{
			Name:    "QuickSwap",
			Chain:   "Polygon",
			URL:     urls.Quickswap,
			Factory: quickswapFactory,
			Schema:  SchemaV2,
		})
	}
	return sources
}
