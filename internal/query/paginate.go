package query

import "dexScope/internal/model"

// Paginate extracts the 1-indexed page of size limit from pools.
// Out-of-range pages yield an empty slice, never an error.
func Paginate(pools []model.Pool, page, limit int) []model.Pool {
	if page < 1 || limit < 1 {
		return []model.Pool{}
	}

	start := (page - 1) * limit
	if start >= len(pools) {
		return []model.Pool{}
	}

	end := start + limit
	if end > len(pools) {
		end = len(pools)
	}
	return pools[start:end]
}
