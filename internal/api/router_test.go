package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"route-summary-service/internal/adapters/cache"
	"route-summary-service/internal/adapters/repositories"
	"route-summary-service/internal/api/handlers"
	"route-summary-service/internal/format"
	"route-summary-service/internal/resultjson"
	"route-summary-service/internal/services"
)

const standardResult = `{
  "acs_data": {"iteration_logs": [{"phase": "ACS", "cluster_id": 1, "route_sequence": "1-4-5-1", "total_distance": 1234.5}]},
  "rvnd_data": {"iteration_logs": [{"phase": "RVND-INTRA", "cluster_id": 1, "route_sequence": "1-5-4-1", "total_distance": 1200}]},
  "routes": [
    {"cluster_id": 1, "sequence": [1, 4, 5, 1], "stops": [{"node_id": 1}], "total_distance": 1200, "vehicle_type": "A"}
  ]
}`

func newTestRouter(t *testing.T, limiter *rate.Limiter, checks ...map[string]handlers.HealthCheck) http.Handler {
	t.Helper()
	c, err := resultjson.DecodeContext([]byte(`{"points": {"depots": [{"id": 1, "name": "Utara"}]},
		"vehicles": [{"id": "A", "fixed_cost": 150000, "variable_cost_per_km": 1000}]}`))
	require.NoError(t, err)

	f, err := format.NewFromLocale("id")
	require.NoError(t, err)

	svc := &services.SummaryService{
		Results: repositories.NewMemoryResultRepository(),
		Context: repositories.NewStaticContextRepository(c),
		Cache:   cache.NewMemorySummaryCache(),
	}
	var hc map[string]handlers.HealthCheck
	if len(checks) > 0 {
		hc = checks[0]
	}
	return NewRouter(svc, f, limiter, hc)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(t, h, http.MethodPost, "/health", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestHealthReportsDependencies(t *testing.T) {
	h := newTestRouter(t, nil, map[string]handlers.HealthCheck{
		"database": func(context.Context) error { return nil },
		"cache":    func(context.Context) error { return errors.New("connection refused") },
	})

	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"status":"degraded","checks":{"cache":"down","database":"ok"}}`, rec.Body.String())
}

func TestSummariesInline(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/summaries", `{"result": `+standardResult+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "ok", got["status"])
	require.Equal(t, "Total Jarak Keseluruhan: 1.200,00 km", got["total_distance_line"])
	require.Equal(t, "1.350.000", got["total_cost"])

	summary := got["summary"].([]any)
	require.Len(t, summary, 1)
	row := summary[0].(map[string]any)
	require.Equal(t, "Utara", row["depot_name"])
	require.Equal(t, "1, 4, 5, 1", row["customers"])

	iters := got["iterations"].(map[string]any)
	rvnd := iters["rvnd"].([]any)
	require.Equal(t, "INTRA", rvnd[0].(map[string]any)["phase"])
}

func TestSummariesWithInlineContext(t *testing.T) {
	h := newTestRouter(t, nil)

	body := `{"result": ` + standardResult + `,
		"points": {"depots": [{"id": 7, "name": "Lain"}]},
		"vehicles": []}`
	rec := do(t, h, http.MethodPost, "/summaries", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got struct {
		Summary []format.SummaryRow `json:"summary"`
		Totals  services.Totals     `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Summary, 1)
	require.Equal(t, 7, got.Summary[0].DepotID)
	require.Zero(t, got.Totals.TotalCost)
}

func TestSummariesWithoutResultIsDeclined(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/summaries", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"no_result"`)
}

func TestSummariesBadRequests(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := map[string]string{
		"not json":      `{`,
		"unknown field": `{"resultz": {}}`,
		"two objects":   `{} {}`,
		"bad result":    `{"result": [1, 2]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/summaries", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestSummariesNoDepots(t *testing.T) {
	h := newTestRouter(t, nil)

	body := `{"result": ` + standardResult + `, "points": {"depots": []}}`
	rec := do(t, h, http.MethodPost, "/summaries", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestStoredResultFlow(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/results", standardResult)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID   string `json:"id"`
		Mode string `json:"mode"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "STANDARD", created.Mode)

	for i := 0; i < 2; i++ {
		rec = do(t, h, http.MethodGet, "/results/"+created.ID+"/summary", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Contains(t, rec.Body.String(), `"result_id":"`+created.ID+`"`)
		require.Contains(t, rec.Body.String(), `"total_cost":"1.350.000"`)
	}

	rec = do(t, h, http.MethodGet, "/results/nope/summary", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/results/"+created.ID+"/summary", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(t, h, http.MethodPost, "/results", "   ")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/results", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcademicResultStored(t *testing.T) {
	h := newTestRouter(t, nil)

	body := `{"mode": "ACADEMIC_REPLAY",
		"iteration_logs": [{"phase": "ACS_SUMMARY", "route_sequence": "0-1-2-0", "total_distance": 5}],
		"routes": [{"sequence": [0, 1, 2, 0], "total_distance": 5}],
		"costs": {"total_fixed_cost": 1000, "total_variable_cost": 250, "total_cost": 1250},
		"dataset": {"depot": {"id": 0, "name": "Pusat"}}}`
	rec := do(t, h, http.MethodPost, "/results", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"mode":"ACADEMIC_REPLAY"`)
}

func TestRateLimit(t *testing.T) {
	h := newTestRouter(t, rate.NewLimiter(rate.Every(1e12), 1))

	rec := do(t, h, http.MethodPost, "/summaries", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/summaries", `{}`)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, nil)

	do(t, h, http.MethodGet, "/health", "")
	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestRouteLabel(t *testing.T) {
	require.Equal(t, "/results/{id}/summary", routeLabel("/results/abc/summary"))
	require.Equal(t, "/summaries", routeLabel("/summaries"))
	require.Equal(t, "other", routeLabel("/admin"))
}
