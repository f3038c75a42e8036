package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"pawfect/config"
	"pawfect/handlers"
	"pawfect/middleware"
	"pawfect/models"
	"pawfect/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogue, err := search.NewCatalogue(search.DefaultListings())
	if err != nil {
		t.Fatalf("catalogue: %v", err)
	}
	svc := search.NewDefaultSearchService(catalogue, nil)
	hb := handlers.NewHandlerBundle(handlers.NewSearchHandler(svc))

	r, err := NewRouter(cfg, zap.NewNop(), hb)
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndexPage(t *testing.T) {
	r := newTestRouter(t, config.Config{CORSAllowedOrigins: "*"})

	w := serve(r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "<title>Pawfect</title>") {
		t.Fatalf("page title not rendered: %s", w.Body.String())
	}
}

func TestStaticAssets(t *testing.T) {
	r := newTestRouter(t, config.Config{CORSAllowedOrigins: "*"})

	for _, path := range []string{"/static/js/app.js", "/static/css/style.css"} {
		if w := serve(r, http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Fatalf("%s: expected %d got %d", path, http.StatusOK, w.Code)
		}
	}
}

func TestSearchRoute(t *testing.T) {
	r := newTestRouter(t, config.Config{CORSAllowedOrigins: "*"})

	cases := []struct {
		name string
		body string
		want []int
	}{
		{"empty filters", `{}`, []int{1, 2, 3}},
		{"no body", "", []int{1, 2, 3}},
		{"central", `{"location":"Central (District 1-2)"}`, []int{1}},
		{"sitter", `{"petService":"Sitter"}`, []int{2}},
		{"bare string", `"hello"`, []int{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(r, http.MethodPost, "/api/search", tc.body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected %d got %d", http.StatusOK, w.Code)
			}
			var resp models.SearchResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if resp.Count != len(tc.want) || len(resp.Results) != len(tc.want) {
				t.Fatalf("expected %d results got count=%d len=%d", len(tc.want), resp.Count, len(resp.Results))
			}
			for i, id := range tc.want {
				if resp.Results[i].ID != id {
					t.Fatalf("result %d: expected id %d got %d", i, id, resp.Results[i].ID)
				}
			}
		})
	}
}

func TestSearchResponseShape(t *testing.T) {
	r := newTestRouter(t, config.Config{CORSAllowedOrigins: "*"})

	w := serve(r, http.MethodPost, "/api/search", `{"petService":"Sitter"}`)
	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	for _, key := range []string{"filters", "count", "results"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("missing key %q in %s", key, w.Body.String())
		}
	}

	var filters map[string]string
	if err := json.Unmarshal(body["filters"], &filters); err != nil {
		t.Fatalf("invalid filters: %v", err)
	}
	want := map[string]string{"petType": "", "location": "", "petService": "Sitter", "dateRange": ""}
	for k, v := range want {
		if got, ok := filters[k]; !ok || got != v {
			t.Fatalf("filters[%q]: expected %q got %q (present=%v)", k, v, got, ok)
		}
	}

	var results []map[string]any
	if err := json.Unmarshal(body["results"], &results); err != nil {
		t.Fatalf("invalid results: %v", err)
	}
	for _, key := range []string{"id", "title", "description", "price", "service", "location"} {
		if _, ok := results[0][key]; !ok {
			t.Fatalf("result missing %q", key)
		}
	}
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(t, config.Config{CORSAllowedOrigins: "*"})

	w := serve(r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), `"cache"`) {
		t.Fatalf("cache snapshot reported while the cache is off: %s", w.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(t, config.Config{CORSAllowedOrigins: "*"})

	w := serve(r, http.MethodGet, "/health", "")
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatal("expected a generated request id")
	}
}

func TestRateLimit(t *testing.T) {
	r := newTestRouter(t, config.Config{CORSAllowedOrigins: "*", MaxRequestsPerMin: 2})

	for i := 0; i < 2; i++ {
		if w := serve(r, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected %d got %d", i, http.StatusOK, w.Code)
		}
	}
	if w := serve(r, http.MethodGet, "/health", ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected %d got %d", http.StatusTooManyRequests, w.Code)
	}
}

func TestSearchIsNotRateLimited(t *testing.T) {
	r := newTestRouter(t, config.Config{CORSAllowedOrigins: "*", MaxRequestsPerMin: 1})

	for i := 0; i < 5; i++ {
		if w := serve(r, http.MethodPost, "/api/search", `{}`); w.Code != http.StatusOK {
			t.Fatalf("search %d: expected %d got %d", i, http.StatusOK, w.Code)
		}
	}
	if w := serve(r, http.MethodGet, "/api/search/options", ""); w.Code != http.StatusOK {
		t.Fatalf("options: expected %d got %d", http.StatusOK, w.Code)
	}
	if w := serve(r, http.MethodGet, "/health", ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("health: expected %d got %d", http.StatusTooManyRequests, w.Code)
	}
}

func TestForwardedForIgnoredWithoutTrustedProxies(t *testing.T) {
	r := newTestRouter(t, config.Config{CORSAllowedOrigins: "*", MaxRequestsPerMin: 2})

	codes := map[int]int{}
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Forwarded-For", "198.51.100."+strconv.Itoa(i))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}
	if codes[http.StatusOK] != 2 || codes[http.StatusTooManyRequests] != 4 {
		t.Fatalf("forwarding header bypassed the limit: %v", codes)
	}
}

func TestInvalidTrustedProxies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hb := handlers.NewHandlerBundle(handlers.NewSearchHandler(nil))
	if _, err := NewRouter(config.Config{TrustedProxies: "not-an-ip"}, zap.NewNop(), hb); err == nil {
		t.Fatal("expected an error for an invalid proxy address")
	}
}

func TestCORSConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	if !all.AllowAllOrigins || all.AllowCredentials {
		t.Fatalf("wildcard origin should allow all without credentials: %+v", all)
	}

	listed := corsConfig([]string{"http://localhost:3000"})
	if listed.AllowAllOrigins || len(listed.AllowOrigins) != 1 || !listed.AllowCredentials {
		t.Fatalf("unexpected config for listed origins: %+v", listed)
	}
}
