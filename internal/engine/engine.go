package engine

import (
	"fmt"
	"math"

	"dexScope/internal/model"
)

// Engine analyzes one aggregated snapshot and reports a summary line.
type Engine interface {
	Name() string
	Execute(data *model.DexData) (string, error)
}

// SummaryEngine reports token and pool counts, broken down per DEX.
type SummaryEngine struct{}

func (SummaryEngine) Name() string { return "summary" }

func (SummaryEngine) Execute(data *model.DexData) (string, error) {
	perDex := make(map[string]int)
	for _, pool := range data.Pools {
		perDex[pool.DexName]++
	}
	return fmt.Sprintf("%d tokens, %d pools across %d dexes", len(data.Tokens), len(data.Pools), len(perDex)), nil
}

// TopPoolEngine reports the pool with the largest combined reserves.
type TopPoolEngine struct{}

func (TopPoolEngine) Name() string { return "top_pool" }

func (TopPoolEngine) Execute(data *model.DexData) (string, error) {
	if len(data.Pools) == 0 {
		return "", fmt.Errorf("no pools in snapshot")
	}

	best := data.Pools[0]
	bestSize := combinedReserves(best)
	for _, pool := range data.Pools[1:] {
		if size := combinedReserves(pool); size > bestSize {
			best = pool
			bestSize = size
		}
	}

	return fmt.Sprintf("top pool is %s (%s/%s) with combined reserves %d", best.DexName, best.Token0, best.Token1, bestSize), nil
}

// combinedReserves saturates instead of wrapping when both sides are
// near the uint64 range.
func combinedReserves(pool model.Pool) uint64 {
	if pool.Reserve0 > math.MaxUint64-pool.Reserve1 {
		return math.MaxUint64
	}
	return pool.Reserve0 + pool.Reserve1
}
