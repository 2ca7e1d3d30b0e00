package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"dexScope/internal/model"
)

const defaultTopN = 3

// poolScore holds one scored pool with its position in the snapshot,
// used as a tie-break so equal scores rank deterministically.
type poolScore struct {
	index int
	pool  model.Pool
	score float64
}

// ScoreEngine ranks pools by a feature score over reserves and fee tier
// and reports the top N. Reserves enter log-scaled so one deep pool does
// not drown out the rest; the fee rate adds a small earning-potential
// weight on top.
type ScoreEngine struct {
	TopN int
}

func (ScoreEngine) Name() string { return "score" }

func (e ScoreEngine) Execute(data *model.DexData) (string, error) {
	if len(data.Pools) == 0 {
		return "", fmt.Errorf("no pools in snapshot")
	}

	scored := make([]poolScore, 0, len(data.Pools))
	for i, pool := range data.Pools {
		score := scorePool(pool)
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return "", fmt.Errorf("pool %s/%s has invalid score", pool.Token0, pool.Token1)
		}
		scored = append(scored, poolScore{index: i, pool: pool, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	topN := e.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > len(scored) {
		topN = len(scored)
	}

	lines := make([]string, 0, topN)
	for _, entry := range scored[:topN] {
		lines = append(lines, fmt.Sprintf("%s %s/%s (%.2f)", entry.pool.DexName, entry.pool.Token0, entry.pool.Token1, entry.score))
	}
	return fmt.Sprintf("top %d of %d pools: %s", topN, len(scored), strings.Join(lines, ", ")), nil
}

// scorePool reduces a pool to the reserve0/reserve1/fee feature vector
// and collapses it into one number.
func scorePool(pool model.Pool) float64 {
	liquidity := math.Log1p(float64(pool.Reserve0)) + math.Log1p(float64(pool.Reserve1))
	feeRate := float64(pool.Fee) / 10000
	return liquidity * (1 + feeRate)
}
