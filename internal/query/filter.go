package query

import (
	"strings"

	"dexScope/internal/model"
)

// Filter reduces pools to those matching every supplied dimension of q.
// Dimensions are conjunctive; comma-separated values within one
// dimension are alternatives. The input slice is not mutated and
// relative order is preserved.
func Filter(pools []model.Pool, q Query) []model.Pool {
	factories := toSet(q.Factories)
	poolIDs := toSet(q.PoolIDs)
	inputTokens := toSet(q.InputTokens)
	outputTokens := toSet(q.OutputTokens)

	out := make([]model.Pool, 0, len(pools))
	for _, pool := range pools {
		if q.Chain != "" && pool.Chain != q.Chain {
			continue
		}
		if factories != nil && !matchesOptional(pool.Factory, factories) {
			continue
		}
		if poolIDs != nil && !matchesOptional(pool.ID, poolIDs) {
			continue
		}
		if inputTokens != nil && !matchesPair(pool, inputTokens) {
			continue
		}
		if outputTokens != nil && !matchesPair(pool, outputTokens) {
			continue
		}
		if q.Protocol != "" && pool.DexName != q.Protocol {
			continue
		}
		out = append(out, pool)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

func matchesOptional(value *string, set map[string]struct{}) bool {
	if value == nil {
		return false
	}
	_, ok := set[strings.ToLower(*value)]
	return ok
}

// matchesPair tests undirected membership over {token0, token1}; the
// input_token and output_token dimensions deliberately do not
// distinguish trade direction.
func matchesPair(pool model.Pool, set map[string]struct{}) bool {
	if _, ok := set[strings.ToLower(pool.Token0)]; ok {
		return true
	}
	_, ok := set[strings.ToLower(pool.Token1)]
	return ok
}
