package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/csheth/partscout/internal/lookup"
)

// isolate keeps the real user config and environment out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"PARTSCOUT_ENDPOINT", "PARTSCOUT_CATALOG", "PARTSCOUT_TIMEOUT", "PARTSCOUT_EXAMPLES",
		"PARTSCOUT_HINT_INTERVAL", "PARTSCOUT_COMPACT_WIDTH", "PARTSCOUT_ALT_SCREEN",
		"PARTSCOUT_WATCH_CONFIG", "PARTSCOUT_VERBOSE", "PARTSCOUT_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("1.2.3", "abc123", "2024-01-01")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type backend struct {
	server *httptest.Server
	hits   atomic.Int32
	path   atomic.Value
}

func newBackend(t *testing.T, status int, body interface{}) *backend {
	t.Helper()
	b := &backend{}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok"}`))
			return
		}
		b.hits.Add(1)
		b.path.Store(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func TestSearchPrintsResults(t *testing.T) {
	isolate(t)
	b := newBackend(t, http.StatusOK, lookup.Response{
		Results: []lookup.ResultGroup{{MainPart: "6R1998002", Section: "Front", AllParts: []string{"6R1998002", "5E1"}}},
	})

	out, err := execute(t, "search", "5e1", "--endpoint", b.server.URL)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "Main Part: 6R1998002 [Front]") {
		t.Fatalf("group header missing:\n%s", out)
	}
	if !strings.Contains(out, "★ 5E1") {
		t.Fatalf("query match should be highlighted:\n%s", out)
	}
	if got := b.path.Load(); got != "/search" {
		t.Fatalf("unexpected path %v", got)
	}
}

func TestSearchUsesCatalogFlag(t *testing.T) {
	isolate(t)
	b := newBackend(t, http.StatusOK, lookup.Response{Results: []lookup.ResultGroup{}, Message: "No matches"})

	out, err := execute(t, "search", "5E1", "--endpoint", b.server.URL, "--catalog", "brake-pads")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if got := b.path.Load(); got != "/search-brake-pads" {
		t.Fatalf("unexpected path %v", got)
	}
	if strings.TrimSpace(out) != "ℹ No matches" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSearchFailureExitsWithError(t *testing.T) {
	isolate(t)
	b := newBackend(t, http.StatusInternalServerError, map[string]string{"error": "DB unavailable"})

	out, err := execute(t, "search", "5E1", "--endpoint", b.server.URL)
	if !errors.Is(err, ErrReported) {
		t.Fatalf("expected an already reported failure, got %v", err)
	}
	if strings.Count(out, "DB unavailable") != 1 {
		t.Fatalf("server message should be printed exactly once:\n%s", out)
	}
	if strings.Contains(err.Error(), "DB unavailable") {
		t.Fatalf("returned error must not repeat the message: %v", err)
	}
}

func TestSearchBlankInputNeverHitsBackend(t *testing.T) {
	isolate(t)
	b := newBackend(t, http.StatusOK, lookup.Response{})

	out, err := execute(t, "search", "   ", "--endpoint", b.server.URL)
	if !errors.Is(err, ErrReported) {
		t.Fatalf("expected an already reported failure for blank input, got %v", err)
	}
	if !strings.Contains(out, lookup.EmptyQueryMessage) {
		t.Fatalf("validation message missing:\n%s", out)
	}
	if hits := b.hits.Load(); hits != 0 {
		t.Fatalf("expected no requests, got %d", hits)
	}
}

func TestHealthCommand(t *testing.T) {
	isolate(t)
	b := newBackend(t, http.StatusOK, nil)

	out, err := execute(t, "health", "--endpoint", b.server.URL)
	if err != nil {
		t.Fatalf("health failed: %v", err)
	}
	if !strings.Contains(out, "is healthy") {
		t.Fatalf("unexpected output %q", out)
	}

	b.server.Close()
	if _, err := execute(t, "health", "--endpoint", b.server.URL); err == nil {
		t.Fatal("expected an error for an unreachable backend")
	}
}

func TestConfigShowAppliesFlags(t *testing.T) {
	isolate(t)
	cases := []struct {
		name   string
		args   []string
		expect string
	}{
		{name: "yaml", args: []string{"config", "show", "--endpoint", "http://parts.example:9000"}, expect: "endpoint: http://parts.example:9000"},
		{name: "json", args: []string{"config", "show", "--format", "json", "--catalog", "brake-pads"}, expect: `"catalog": "brake-pads"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			if err != nil {
				t.Fatalf("config show failed: %v", err)
			}
			if !strings.Contains(out, tc.expect) {
				t.Fatalf("expected %q in:\n%s", tc.expect, out)
			}
		})
	}
}

func TestInvalidFlagsAreRejected(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{
		{"config", "show", "--catalog", "mirrors"},
		{"config", "show", "--endpoint", "ftp://parts.example"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Fatalf("expected %v to fail", args)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "PartScout 1.2.3 (abc123) built on 2024-01-01") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
