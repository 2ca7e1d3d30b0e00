package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 1000
)

// chainNames maps accepted network identifiers to chain display names.
var chainNames = map[string]string{
	"arbitrum-one": "Arbitrum",
	"avalanche":    "Avalanche",
	"base":         "Base",
	"bsc":          "BSC",
	"mainnet":      "Ethereum",
	"optimism":     "Optimism",
	"polygon":      "Polygon",
	"unichain":     "Unichain",
}

// protocolNames maps accepted protocol identifiers to DEX display names.
var protocolNames = map[string]string{
	"uniswap_v2": "Uniswap V2",
	"uniswap_v3": "Uniswap V3",
	"uniswap_v4": "Uniswap V4",
}

// ValidationError reports a malformed or out-of-range request parameter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Params holds the raw string query parameters as received on the wire.
type Params struct {
	Network     string
	Protocol    string
	Factory     string
	Pool        string
	InputToken  string
	OutputToken string
	Page        string
	Limit       string
}

// Query is the validated, typed projection of Params. Empty string or
// nil slice fields mean the dimension is unfiltered.
type Query struct {
	Chain        string
	Protocol     string
	Factories    []string
	PoolIDs      []string
	InputTokens  []string
	OutputTokens []string
	Page         int
	Limit        int
}

// ParseParams validates raw parameters and maps them into a Query.
// It is a pure transform; on error the dataset must not be touched.
func ParseParams(params Params) (Query, error) {
	q := Query{Page: defaultPage, Limit: defaultLimit}

	if params.Page != "" {
		page, err := strconv.Atoi(strings.TrimSpace(params.Page))
		if err != nil || page < 1 {
			return Query{}, &ValidationError{Message: fmt.Sprintf("invalid page %q: must be an integer >= 1", params.Page)}
		}
		q.Page = page
	}

	if params.Limit != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(params.Limit))
		if err != nil || limit < 1 {
			return Query{}, &ValidationError{Message: fmt.Sprintf("invalid limit %q: must be an integer >= 1", params.Limit)}
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		q.Limit = limit
	}

	if params.Network != "" {
		chain, ok := chainNames[params.Network]
		if !ok {
			return Query{}, &ValidationError{
				Message: fmt.Sprintf("invalid network %q: accepted values are %s", params.Network, acceptedKeys(chainNames)),
			}
		}
		q.Chain = chain
	}

	if params.Protocol != "" {
		protocol, ok := protocolNames[params.Protocol]
		if !ok {
			return Query{}, &ValidationError{
				Message: fmt.Sprintf("invalid protocol %q: accepted values are %s", params.Protocol, acceptedKeys(protocolNames)),
			}
		}
		q.Protocol = protocol
	}

	q.Factories = splitList(params.Factory)
	q.PoolIDs = splitList(params.Pool)
	q.InputTokens = splitList(params.InputToken)
	q.OutputTokens = splitList(params.OutputToken)

	return q, nil
}

// splitList splits a comma-separated parameter into trimmed lowercase
// entries. No existence validation: unknown values match nothing.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func acceptedKeys(table map[string]string) string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
