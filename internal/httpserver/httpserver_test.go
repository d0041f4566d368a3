package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-task-analyzer/config"
	"smart-task-analyzer/internal/analysis"
	"smart-task-analyzer/pkg/log"
)

type stubUseCase struct {
	out analysis.AnalyzeOutput
	err error
}

func (s stubUseCase) Analyze(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	return s.out, s.err
}

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	if cfg.Port == 0 {
		cfg.Port = 8000
	}
	if cfg.Mode == "" {
		cfg.Mode = gin.TestMode
	}
	if cfg.AnalysisUseCase == nil {
		cfg.AnalysisUseCase = stubUseCase{out: analysis.AnalyzeOutput{Analysis: analysis.TaskAnalysis{
			Description: "Buy milk",
			Priority:    analysis.PriorityMedium,
			Category:    "shopping",
		}}}
	}
	srv, err := New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func do(h http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(nil, Config{Port: 1, Mode: gin.TestMode, AnalysisUseCase: stubUseCase{}}); err == nil {
		t.Error("expected error for nil logger")
	}
	if _, err := New(log.NewNop(), Config{Port: 1, Mode: gin.TestMode}); err == nil {
		t.Error("expected error for missing use case")
	}
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, AnalysisUseCase: stubUseCase{}}); err == nil {
		t.Error("expected error for missing port")
	}
}

func TestHealthRoutes(t *testing.T) {
	srv := newTestServer(t, Config{CollaboratorConfigured: true})

	for path, want := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		w := do(srv.Handler(), http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if body["status"] != want {
			t.Errorf("%s status field = %q, want %q", path, body["status"], want)
		}
		if body["service"] != ServiceName {
			t.Errorf("%s service = %q", path, body["service"])
		}
	}
}

func TestReady_DegradedWithoutCollaborator(t *testing.T) {
	srv := newTestServer(t, Config{CollaboratorConfigured: false})
	w := do(srv.Handler(), http.MethodGet, "/ready", "", nil)

	if !strings.Contains(w.Body.String(), `"degraded"`) {
		t.Errorf("body = %s, want degraded status", w.Body.String())
	}
}

func TestAnalyzeRoute(t *testing.T) {
	srv := newTestServer(t, Config{})
	w := do(srv.Handler(), http.MethodPost, "/analyze-task", `{"text":"buy milk"}`, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	want := `{"description":"Buy milk","priority":"medium","due_date":null,"category":"shopping"}`
	if w.Body.String() != want {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestAnalyzeRoute_RateLimited(t *testing.T) {
	srv := newTestServer(t, Config{RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerMin: 10}})
	h := srv.Handler()

	if w := do(h, http.MethodPost, "/analyze-task", `{"text":"a"}`, nil); w.Code != http.StatusOK {
		t.Fatalf("first status = %d", w.Code)
	}
	w := do(h, http.MethodPost, "/analyze-task", `{"text":"a"}`, nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"detail"`) {
		t.Errorf("body = %s, want detail", w.Body.String())
	}

	// Health routes are not rate limited.
	if w := do(h, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}
}

func TestAnalyzeRoute_ForwardedForIgnoredWithoutTrustedProxy(t *testing.T) {
	srv := newTestServer(t, Config{RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerMin: 10}})
	h := srv.Handler()

	first := do(h, http.MethodPost, "/analyze-task", `{"text":"a"}`, map[string]string{"X-Forwarded-For": "203.0.113.1"})
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d", first.Code)
	}
	second := do(h, http.MethodPost, "/analyze-task", `{"text":"a"}`, map[string]string{"X-Forwarded-For": "203.0.113.2"})
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429: a spoofed X-Forwarded-For must not get a new bucket", second.Code)
	}
}

func TestAnalyzeRoute_ForwardedForFromTrustedProxy(t *testing.T) {
	// httptest requests come from 192.0.2.1.
	srv := newTestServer(t, Config{
		TrustedProxies: []string{"192.0.2.1"},
		RateLimit:      config.RateLimitConfig{Enabled: true, RequestsPerMin: 10},
	})
	h := srv.Handler()

	for _, ip := range []string{"203.0.113.1", "203.0.113.2"} {
		w := do(h, http.MethodPost, "/analyze-task", `{"text":"a"}`, map[string]string{"X-Forwarded-For": ip})
		if w.Code != http.StatusOK {
			t.Fatalf("client %s status = %d, want 200", ip, w.Code)
		}
	}
}

func TestNew_InvalidTrustedProxy(t *testing.T) {
	_, err := New(log.NewNop(), Config{
		Port:            1,
		Mode:            gin.TestMode,
		TrustedProxies:  []string{"not-an-ip"},
		AnalysisUseCase: stubUseCase{},
	})
	if err == nil {
		t.Fatal("expected error for invalid trusted proxy")
	}
}

func TestMetricsRoute(t *testing.T) {
	srv := newTestServer(t, Config{})
	h := srv.Handler()
	do(h, http.MethodGet, "/health", "", nil)

	w := do(h, http.MethodGet, "/metrics", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Error("metrics output does not contain http_requests_total")
	}
}

func TestCORS_Preflight(t *testing.T) {
	srv := newTestServer(t, Config{CORSAllowedOrigins: []string{"https://app.example.com"}})

	w := do(srv.Handler(), http.MethodOptions, "/analyze-task", "", map[string]string{
		"Origin":                        "https://app.example.com",
		"Access-Control-Request-Method": http.MethodPost,
	})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	w = do(srv.Handler(), http.MethodOptions, "/analyze-task", "", map[string]string{
		"Origin":                        "https://evil.example.com",
		"Access-Control-Request-Method": http.MethodPost,
	})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got Access-Control-Allow-Origin = %q", got)
	}
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, Config{Port: 18765})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
}
