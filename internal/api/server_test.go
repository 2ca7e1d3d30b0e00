package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dexScope/internal/model"
	"dexScope/internal/query"
	"dexScope/internal/subgraph"
)

type stubSource struct {
	data model.DexData
	err  error
}

func (s *stubSource) FetchAll(_ context.Context) (model.DexData, error) {
	return s.data, s.err
}

func strPtr(s string) *string {
	return &s
}

// The scenario dataset: three Ethereum pools (two Uniswap V3, one
// SushiSwap) and one Polygon QuickSwap pool.
func scenarioData() model.DexData {
	return model.DexData{
		Tokens: []model.Token{
			{Symbol: "WETH", Decimals: 18, Address: "0xaaa"},
			{Symbol: "USDC", Decimals: 6, Address: "0xbbb"},
		},
		Pools: []model.Pool{
			{ID: strPtr("0xpool1"), Factory: strPtr("0xfac1"), DexName: "Uniswap V3", Chain: "Ethereum", Token0: "0xaaa", Token1: "0xbbb", Reserve0: 100, Reserve1: 200, Fee: 3000},
			{ID: strPtr("0xpool2"), Factory: strPtr("0xfac1"), DexName: "Uniswap V3", Chain: "Ethereum", Token0: "0xbbb", Token1: "0xccc", Reserve0: 300, Reserve1: 400, Fee: 500},
			{ID: strPtr("0xpool3"), Factory: strPtr("0xfac2"), DexName: "SushiSwap", Chain: "Ethereum", Token0: "0xaaa", Token1: "0xccc", Reserve0: 500, Reserve1: 600, Fee: 30},
			{ID: strPtr("0xpool4"), DexName: "QuickSwap", Chain: "Polygon", Token0: "0xddd", Token1: "0xeee", Reserve0: 700, Reserve1: 800, Fee: 30},
		},
	}
}

func newTestServer(source query.DataSource) *httptest.Server {
	pipeline := query.NewPipeline(source, nil)
	server := NewServer(":0", pipeline, nil)
	return httptest.NewServer(server.Handler())
}

func getPage(t *testing.T, server *httptest.Server, path string) (int, query.Page) {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var page query.Page
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			t.Fatalf("decode page: %v", err)
		}
	}
	return resp.StatusCode, page
}

func getError(t *testing.T, server *httptest.Server, path string) (int, map[string]string) {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp.StatusCode, body
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(&stubSource{data: scenarioData()})
	defer server.Close()

	status, body := getError(t, server, "/health")
	if status != http.StatusOK {
		t.Fatalf("health status %d", status)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body: %+v", body)
	}
}

func TestPoolsScenario(t *testing.T) {
	server := newTestServer(&stubSource{data: scenarioData()})
	defer server.Close()

	cases := []struct {
		path      string
		wantTotal int
		wantLen   int
	}{
		{path: "/v1/evm/pools?network=mainnet", wantTotal: 3, wantLen: 3},
		{path: "/v1/evm/pools?network=mainnet&protocol=uniswap_v3", wantTotal: 2, wantLen: 2},
		{path: "/v1/evm/pools?network=polygon", wantTotal: 1, wantLen: 1},
		{path: "/v1/evm/pools?page=2&limit=2", wantTotal: 4, wantLen: 2},
	}

	for _, tc := range cases {
		status, page := getPage(t, server, tc.path)
		if status != http.StatusOK {
			t.Fatalf("%s: status %d", tc.path, status)
		}
		if page.Pagination.Total != tc.wantTotal {
			t.Fatalf("%s: total %d != %d", tc.path, page.Pagination.Total, tc.wantTotal)
		}
		if len(page.Data) != tc.wantLen {
			t.Fatalf("%s: len %d != %d", tc.path, len(page.Data), tc.wantLen)
		}
	}

	// Page 2 of 2-sized pages over 4 pools is the last page.
	_, page := getPage(t, server, "/v1/evm/pools?page=2&limit=2")
	if page.Pagination.HasMore {
		t.Fatalf("hasMore should be false on the last page")
	}
}

func TestPoolsReservesAreStrings(t *testing.T) {
	server := newTestServer(&stubSource{data: scenarioData()})
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/evm/pools?limit=1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var decoded struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Data) != 1 {
		t.Fatalf("expected one pool, got %d", len(decoded.Data))
	}

	for _, field := range []string{"reserve0", "reserve1", "fee"} {
		if _, ok := decoded.Data[0][field].(string); !ok {
			t.Fatalf("%s should be a JSON string, got %T", field, decoded.Data[0][field])
		}
	}
}

func TestPoolsPreflight(t *testing.T) {
	server := newTestServer(&stubSource{data: scenarioData()})
	defer server.Close()

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/v1/evm/pools", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("preflight status %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("preflight missing CORS headers: %+v", resp.Header)
	}
}

func TestPoolsValidationErrors(t *testing.T) {
	server := newTestServer(&stubSource{data: scenarioData()})
	defer server.Close()

	cases := []string{
		"/v1/evm/pools?network=bogus",
		"/v1/evm/pools?protocol=sushiswap",
		"/v1/evm/pools?page=0",
		"/v1/evm/pools?page=abc",
		"/v1/evm/pools?limit=0",
	}

	for _, path := range cases {
		status, body := getError(t, server, path)
		if status != http.StatusBadRequest {
			t.Fatalf("%s: status %d != 400", path, status)
		}
		if body["error"] == "" {
			t.Fatalf("%s: missing error message", path)
		}
	}

	// An unrecognized network must enumerate the accepted keys.
	_, body := getError(t, server, "/v1/evm/pools?network=bogus")
	for _, key := range []string{"arbitrum-one", "avalanche", "base", "bsc", "mainnet", "optimism", "polygon", "unichain"} {
		if !strings.Contains(body["error"], key) {
			t.Fatalf("error message missing key %q: %s", key, body["error"])
		}
	}
}

func TestPoolsUpstreamFailure(t *testing.T) {
	source := &stubSource{err: &subgraph.FetchError{Err: fmt.Errorf("connection refused")}}
	server := newTestServer(source)
	defer server.Close()

	status, body := getError(t, server, "/v1/evm/pools")
	if status != http.StatusInternalServerError {
		t.Fatalf("status %d != 500", status)
	}
	if body["error"] == "" || body["message"] == "" {
		t.Fatalf("500 body must carry error and message: %+v", body)
	}
	if !strings.Contains(body["message"], "connection refused") {
		t.Fatalf("message should surface the underlying error: %+v", body)
	}
}
