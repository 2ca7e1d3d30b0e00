package query

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseParamsDefaults(t *testing.T) {
	q, err := ParseParams(Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Page != 1 || q.Limit != 10 {
		t.Fatalf("unexpected defaults: page=%d limit=%d", q.Page, q.Limit)
	}
	if q.Chain != "" || q.Protocol != "" {
		t.Fatalf("expected no chain/protocol filter: %+v", q)
	}
	if q.Factories != nil || q.PoolIDs != nil || q.InputTokens != nil || q.OutputTokens != nil {
		t.Fatalf("expected nil list filters: %+v", q)
	}
}

func TestParseParamsPage(t *testing.T) {
	cases := []struct {
		name    string
		page    string
		want    int
		wantErr bool
	}{
		{name: "valid", page: "3", want: 3},
		{name: "one", page: "1", want: 1},
		{name: "zero", page: "0", wantErr: true},
		{name: "negative", page: "-2", wantErr: true},
		{name: "not a number", page: "abc", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := ParseParams(Params{Page: tc.page})
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for page %q", tc.page)
				}
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Page != tc.want {
				t.Fatalf("page mismatch: %d != %d", q.Page, tc.want)
			}
		})
	}
}

func TestParseParamsLimit(t *testing.T) {
	cases := []struct {
		name    string
		limit   string
		want    int
		wantErr bool
	}{
		{name: "valid", limit: "50", want: 50},
		{name: "clamped", limit: "1001", want: 1000},
		{name: "clamped large", limit: "999999", want: 1000},
		{name: "at max", limit: "1000", want: 1000},
		{name: "zero", limit: "0", wantErr: true},
		{name: "negative", limit: "-1", wantErr: true},
		{name: "not a number", limit: "ten", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := ParseParams(Params{Limit: tc.limit})
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for limit %q", tc.limit)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Limit != tc.want {
				t.Fatalf("limit mismatch: %d != %d", q.Limit, tc.want)
			}
		})
	}
}

func TestParseParamsNetwork(t *testing.T) {
	cases := map[string]string{
		"arbitrum-one": "Arbitrum",
		"avalanche":    "Avalanche",
		"base":         "Base",
		"bsc":          "BSC",
		"mainnet":      "Ethereum",
		"optimism":     "Optimism",
		"polygon":      "Polygon",
		"unichain":     "Unichain",
	}

	for network, chain := range cases {
		q, err := ParseParams(Params{Network: network})
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", network, err)
		}
		if q.Chain != chain {
			t.Fatalf("chain mismatch for %q: %q != %q", network, q.Chain, chain)
		}
	}
}

func TestParseParamsNetworkUnknown(t *testing.T) {
	_, err := ParseParams(Params{Network: "bogus"})
	if err == nil {
		t.Fatalf("expected error for unknown network")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	for _, key := range []string{"arbitrum-one", "avalanche", "base", "bsc", "mainnet", "optimism", "polygon", "unichain"} {
		if !strings.Contains(validationErr.Message, key) {
			t.Fatalf("error message missing accepted key %q: %s", key, validationErr.Message)
		}
	}
}

func TestParseParamsProtocol(t *testing.T) {
	cases := map[string]string{
		"uniswap_v2": "Uniswap V2",
		"uniswap_v3": "Uniswap V3",
		"uniswap_v4": "Uniswap V4",
	}

	for protocol, name := range cases {
		q, err := ParseParams(Params{Protocol: protocol})
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", protocol, err)
		}
		if q.Protocol != name {
			t.Fatalf("protocol mismatch for %q: %q != %q", protocol, q.Protocol, name)
		}
	}

	if _, err := ParseParams(Params{Protocol: "sushiswap"}); err == nil {
		t.Fatalf("expected error for unknown protocol")
	}
}

func TestParseParamsLists(t *testing.T) {
	q, err := ParseParams(Params{
		Factory:    "0xAAA, 0xBBB ,,0xccc",
		Pool:       " 0xDEAD ",
		InputToken: "0xF00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(q.Factories, []string{"0xaaa", "0xbbb", "0xccc"}) {
		t.Fatalf("factories mismatch: %+v", q.Factories)
	}
	if !reflect.DeepEqual(q.PoolIDs, []string{"0xdead"}) {
		t.Fatalf("pool ids mismatch: %+v", q.PoolIDs)
	}
	if !reflect.DeepEqual(q.InputTokens, []string{"0xf00"}) {
		t.Fatalf("input tokens mismatch: %+v", q.InputTokens)
	}
	if q.OutputTokens != nil {
		t.Fatalf("output tokens should be nil: %+v", q.OutputTokens)
	}
}
