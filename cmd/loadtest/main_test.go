package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    loadMode
		wantErr bool
	}{
		{in: "browse", want: modeBrowse},
		{in: " order ", want: modeOrder},
		{in: "create-pay", wantErr: true},
	} {
		got, err := parseMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseMode(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("parseMode(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := parseConfig(nil)
		if err != nil {
			t.Fatalf("parseConfig: %v", err)
		}
		if cfg.baseURL != "http://localhost:8080" || cfg.total != 400 || cfg.mode != modeBrowse || cfg.totalSet {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := parseConfig([]string{
			"-url", "http://shop:9000/",
			"-mode", "order",
			"-duration", "30s",
			"-total", "50",
			"-concurrency", "4",
			"-payment", "cash",
		})
		if err != nil {
			t.Fatalf("parseConfig: %v", err)
		}
		if cfg.baseURL != "http://shop:9000" || cfg.mode != modeOrder || cfg.duration != 30*time.Second {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if !cfg.totalSet || cfg.total != 50 || cfg.concurrency != 4 || cfg.paymentMethod != "cash" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	for _, tc := range []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "bad mode", args: []string{"-mode", "x"}, wantErr: "unsupported mode"},
		{name: "empty url", args: []string{"-url", " "}, wantErr: "url is required"},
		{name: "negative duration", args: []string{"-duration", "-1s"}, wantErr: "duration must be >= 0"},
		{name: "zero total", args: []string{"-total", "0"}, wantErr: "total must be > 0"},
		{name: "zero total with duration", args: []string{"-duration", "1s", "-total", "0"}, wantErr: "explicitly set"},
		{name: "zero concurrency", args: []string{"-concurrency", "0"}, wantErr: "concurrency must be > 0"},
		{name: "zero timeout", args: []string{"-timeout", "0s"}, wantErr: "timeout must be > 0"},
		{name: "empty customer tag", args: []string{"-customer-tag", ""}, wantErr: "customer-tag is required"},
		{name: "order without payment", args: []string{"-mode", "order", "-payment", ""}, wantErr: "payment is required"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig(tc.args)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDispatchJobs(t *testing.T) {
	t.Run("count mode", func(t *testing.T) {
		jobs := make(chan int, 16)
		dispatchJobs(jobs, config{total: 5})

		var got []int
		for v := range jobs {
			got = append(got, v)
		}
		if !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
			t.Fatalf("unexpected jobs sequence: %v", got)
		}
	})

	t.Run("duration mode", func(t *testing.T) {
		jobs := make(chan int, 32)
		done := make(chan struct{})
		go func() {
			dispatchJobs(jobs, config{duration: 20 * time.Millisecond})
			close(done)
		}()

		count := 0
		for range jobs {
			count++
		}
		<-done
		if count == 0 {
			t.Fatalf("expected non-zero jobs for duration mode")
		}
	})

	t.Run("duration with explicit max total", func(t *testing.T) {
		jobs := make(chan int, 16)
		dispatchJobs(jobs, config{duration: time.Second, total: 3, totalSet: true})
		count := 0
		for range jobs {
			count++
		}
		if count != 3 {
			t.Fatalf("expected 3 jobs, got %d", count)
		}
	})
}

func TestCollectorAndReport(t *testing.T) {
	c := newCollector()
	c.record(scenarioMethod, 10*time.Millisecond, http.StatusOK)
	c.record(scenarioMethod, 20*time.Millisecond, http.StatusServiceUnavailable)
	c.record("SubmitOrder", 15*time.Millisecond, http.StatusCreated)
	c.record("SubmitOrder", 5*time.Millisecond, 0)

	r := c.buildReport(time.Now(), 2*time.Second)
	if r.TotalScenarios != 2 || r.SuccessScenarios != 1 || r.FailedScenarios != 1 {
		t.Fatalf("unexpected report totals: %+v", r)
	}
	if r.RPS != 1 {
		t.Fatalf("unexpected rps: %f", r.RPS)
	}

	submit, ok := r.Methods["SubmitOrder"]
	if !ok {
		t.Fatalf("expected SubmitOrder stats in report")
	}
	if submit.Codes["201"] != 1 || submit.Codes["transport_error"] != 1 || submit.Failed != 1 {
		t.Fatalf("unexpected SubmitOrder stats: %+v", submit)
	}
}

func TestUtilityFunctions(t *testing.T) {
	if got := ratio(1, 4); got != 0.25 {
		t.Fatalf("ratio mismatch: %f", got)
	}
	if got := ratio(1, 0); got != 0 {
		t.Fatalf("ratio with zero total must be 0, got %f", got)
	}

	values := []float64{10, 20, 30, 40}
	summary := buildLatencySummary(values)
	if summary.Min != 10 || summary.Max != 40 || summary.Avg != 25 || summary.P50 != 25 {
		t.Fatalf("unexpected latency summary: %+v", summary)
	}
	if p := percentile([]float64{7}, 99); p != 7 {
		t.Fatalf("single value percentile: %f", p)
	}
	if (buildLatencySummary(nil) != latencySummary{}) {
		t.Fatalf("empty summary must be zero")
	}

	if got := runTarget(config{total: 50}); got != "count:50" {
		t.Fatalf("unexpected run target: %s", got)
	}
	if got := runTarget(config{duration: 2 * time.Second}); got != "duration:2s" {
		t.Fatalf("unexpected duration run target: %s", got)
	}
	if got := runTarget(config{duration: 2 * time.Second, total: 10, totalSet: true}); got != "duration:2s,max-total:10" {
		t.Fatalf("unexpected capped duration run target: %s", got)
	}
}

func TestWriteJSONReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	if err := writeJSONReport(path, report{TotalScenarios: 2, SuccessScenarios: 2}); err != nil {
		t.Fatalf("writeJSONReport error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var decoded report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if decoded.TotalScenarios != 2 || decoded.SuccessScenarios != 2 {
		t.Fatalf("unexpected decoded report: %+v", decoded)
	}

	if err := writeJSONReport("../escape.json", report{}); err == nil {
		t.Fatalf("expected error for path outside current directory")
	}
	if err := writeJSONReport(".", report{}); err == nil {
		t.Fatalf("expected error for directory path")
	}
}

// fakeShop имитирует публичный API магазина.
type fakeShop struct {
	mu        sync.Mutex
	closed    bool
	carts     map[string][]string
	submitted map[string]string
}

func newFakeShop() *fakeShop {
	return &fakeShop{carts: make(map[string][]string), submitted: make(map[string]string)}
}

func (f *fakeShop) handler() http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("GET /api/v1/store", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"open": !f.closed})
	})
	mux.HandleFunc("GET /api/v1/menu", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.closed {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "store is closed"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"sections": []any{
			map[string]any{"products": []any{map[string]string{"id": "p1"}, map[string]string{"id": "p2"}}},
		}})
	})
	mux.HandleFunc("POST /api/v1/cart/items", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ProductID string `json:"product_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		defer f.mu.Unlock()
		sess := r.Header.Get(sessionHeader)
		f.carts[sess] = append(f.carts[sess], body.ProductID)
		writeJSON(w, http.StatusCreated, map[string]int{"count": len(f.carts[sess])})
	})
	mux.HandleFunc("POST /api/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		defer f.mu.Unlock()
		sess := r.Header.Get(sessionHeader)
		if len(f.carts[sess]) == 0 || body["payment_method"] == "" {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "cart is empty"})
			return
		}
		f.submitted[sess] = r.Header.Get(idempotencyHeader)
		delete(f.carts, sess)
		writeJSON(w, http.StatusCreated, map[string]any{"order": map[string]string{"id": "order-" + sess}})
	})
	return mux
}

func TestRunScenario(t *testing.T) {
	shop := newFakeShop()
	srv := httptest.NewServer(shop.handler())
	t.Cleanup(srv.Close)

	base := config{baseURL: srv.URL, timeout: time.Second, customerTag: "lt", paymentMethod: "pix"}

	t.Run("browse", func(t *testing.T) {
		col := newCollector()
		cfg := base
		cfg.mode = modeBrowse
		if err := runScenario(context.Background(), srv.Client(), cfg, 0, "run", col); err != nil {
			t.Fatalf("runScenario: %v", err)
		}
		r := col.buildReport(time.Now(), time.Second)
		if r.SuccessScenarios != 1 {
			t.Fatalf("unexpected report: %+v", r)
		}
		if _, ok := r.Methods["SubmitOrder"]; ok {
			t.Fatalf("browse mode must not submit orders")
		}
	})

	t.Run("order", func(t *testing.T) {
		col := newCollector()
		cfg := base
		cfg.mode = modeOrder
		for i := 0; i < 3; i++ {
			if err := runScenario(context.Background(), srv.Client(), cfg, i, "run", col); err != nil {
				t.Fatalf("runScenario(%d): %v", i, err)
			}
		}

		r := col.buildReport(time.Now(), time.Second)
		if r.SuccessScenarios != 3 || r.Methods["SubmitOrder"].Codes["201"] != 3 {
			t.Fatalf("unexpected report: %+v", r)
		}

		shop.mu.Lock()
		defer shop.mu.Unlock()
		if len(shop.submitted) != 3 {
			t.Fatalf("expected 3 sessions to submit, got %d", len(shop.submitted))
		}
		if key := shop.submitted["lt-run-1"]; key != "lt-submit-run-1" {
			t.Fatalf("unexpected idempotency key: %q", key)
		}
	})

	t.Run("closed store fails scenario", func(t *testing.T) {
		shop.mu.Lock()
		shop.closed = true
		shop.mu.Unlock()
		t.Cleanup(func() {
			shop.mu.Lock()
			shop.closed = false
			shop.mu.Unlock()
		})

		col := newCollector()
		cfg := base
		cfg.mode = modeOrder
		err := runScenario(context.Background(), srv.Client(), cfg, 0, "closed", col)
		if err == nil || !strings.Contains(err.Error(), "GetMenu") {
			t.Fatalf("expected GetMenu failure, got %v", err)
		}
		r := col.buildReport(time.Now(), time.Second)
		if r.FailedScenarios != 1 || r.Methods[scenarioMethod].Codes["503"] != 1 {
			t.Fatalf("unexpected report: %+v", r)
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		col := newCollector()
		cfg := base
		cfg.baseURL = "http://127.0.0.1:1"
		if err := runScenario(context.Background(), &http.Client{}, cfg, 0, "down", col); err == nil {
			t.Fatalf("expected transport error")
		}
		r := col.buildReport(time.Now(), time.Second)
		if r.Methods["GetStore"].Codes["transport_error"] != 1 {
			t.Fatalf("unexpected report: %+v", r.Methods)
		}
	})
}

func TestPickProduct(t *testing.T) {
	var menu menuResponse
	if err := json.Unmarshal([]byte(`{"sections":[{"products":[{"id":"a"}]},{"products":[{"id":"b"},{"id":""}]}]}`), &menu); err != nil {
		t.Fatalf("decode menu: %v", err)
	}
	if got := pickProduct(menu, 0); got != "a" {
		t.Fatalf("pickProduct(0) = %q", got)
	}
	if got := pickProduct(menu, 3); got != "b" {
		t.Fatalf("pickProduct(3) = %q", got)
	}
	if got := pickProduct(menuResponse{}, 1); got != "" {
		t.Fatalf("empty menu must yield no product, got %q", got)
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, report{
		TotalScenarios: 1,
		Methods: map[string]methodReport{
			scenarioMethod: {Calls: 1},
			"GetMenu":      {Calls: 1, Success: 1},
		},
	}, config{mode: modeBrowse, total: 1})

	out := buf.String()
	if !strings.Contains(out, "mode=browse run=count:1") || !strings.Contains(out, "GetMenu: calls=1") {
		t.Fatalf("unexpected output: %s", out)
	}
	if strings.Contains(out, "scenario: calls") {
		t.Fatalf("scenario must not be printed as a method: %s", out)
	}
}
