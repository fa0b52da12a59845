package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foot-analises/foot-stats-service/internal/app/analysis"
	"github.com/foot-analises/foot-stats-service/internal/http/handlers"
	"github.com/foot-analises/foot-stats-service/internal/http/requestutil"
	"github.com/foot-analises/foot-stats-service/internal/stats"
	"github.com/foot-analises/foot-stats-service/internal/testutil"
)

func newTestRouter() http.Handler {
	svc := analysis.NewService(testutil.NewStubProvider(), stats.DefaultExclusions(), nil, nil)
	logger, _ := testutil.NewBufferLogger()
	return NewRouter(handlers.NewHandler(svc, logger, nil), logger, nil)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := map[string]int{
		"/health":                                      http.StatusOK,
		"/ready":                                       http.StatusOK,
		"/competitions":                                http.StatusOK,
		"/competitions/10/rounds":                      http.StatusOK,
		"/competitions/10/rounds/1":                    http.StatusOK,
		"/competitions/10/rounds/current":              http.StatusOK,
		"/competitions/10/ranking":                     http.StatusOK,
		"/competitions/10/teams/1001":                  http.StatusOK,
		"/competitions/10/teams/1001/stats":            http.StatusOK,
		"/competitions/10/teams/1001/record":           http.StatusOK,
		"/competitions/10/compare?home=1001&away=1002": http.StatusOK,
		"/competitions/10/predict?home=1001&away=1002": http.StatusOK,
		"/competitions/10/fundamentals/3/players":      http.StatusOK,
		"/matches/501/lineup":                          http.StatusOK,
		"/matches/501/fundamentals":                    http.StatusOK,
		"/matches/abc/lineup":                          http.StatusBadRequest,
		"/competitions/10/teams/1003":                  http.StatusNotFound,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		assert.Equal(t, expected, rr.Code, "route %s", path)
	}
}

func TestRouterUnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	req.Header.Set(requestutil.HeaderRequestID, "req-1")
	rr := testutil.ServeRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	assert.Equal(t, "req-1", body["requestId"])
}

func TestRouterRejectsNonGET(t *testing.T) {
	router := newTestRouter()

	rr := testutil.Serve(router, http.MethodPost, "/competitions", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
