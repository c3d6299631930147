package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "cbexplorer/internal/config"
	api "cbexplorer/internal/http"
	"cbexplorer/internal/http/handlers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	intconfig.DB = db

	r := api.NewRouter(intconfig.Env{})
	handlers.SetRouter(r)
	return r, mock
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestOrganizationListEnvelope(t *testing.T) {
	r, mock := newTestRouter(t)

	cols := []string{
		"entity_id", "uuid", "display_name", "permalink", "country_code", "city",
		"location", "image_url", "company_type", "operating_status", "ipo_status",
		"revenue_range_code", "num_employees_enum", "funding_stage",
		"funding_total_usd", "last_funding_at", "last_funding_type",
		"rank_value", "num_funding_rounds", "num_investments", "num_lead_investments",
		"num_acquisitions", "num_exits", "num_articles", "total_count",
	}
	mock.ExpectQuery("WITH filtered AS").
		WithArgs(1, 25).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "u1", "Acme", "acme", nil, nil, nil, nil, nil, nil, nil,
				nil, nil, nil, nil, nil, nil, 1.0, 0, 0, 0, 0, 0, 0, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/organizations", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Items           []map[string]any `json:"items"`
		TotalCount      int              `json:"totalCount"`
		PageNumber      int              `json:"pageNumber"`
		PageSize        int              `json:"pageSize"`
		TotalPages      int              `json:"totalPages"`
		HasPreviousPage bool             `json:"hasPreviousPage"`
		HasNextPage     bool             `json:"hasNextPage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.TotalCount)
	assert.Equal(t, 1, body.PageNumber)
	assert.Equal(t, 25, body.PageSize)
	assert.Equal(t, 1, body.TotalPages)
	assert.False(t, body.HasPreviousPage)
	assert.False(t, body.HasNextPage)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Acme", body.Items[0]["displayName"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationDetailNotFound(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("FROM entity e").
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"entity_id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/organizations/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
	assert.Contains(t, w.Body.String(), "request_id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationDetailBadID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/organizations/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchPostRejectsMalformedJSON(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/organizations/search",
		strings.NewReader(`{"pageNumber": `))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request payload")
}

func TestGlobalSearchBlankText(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?searchText=", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGlobalSearchReturnsBareList(t *testing.T) {
	r, mock := newTestRouter(t)

	cols := []string{
		"entity_id", "uuid", "entity_type", "display_name", "permalink",
		"short_description", "image_url", "country_code", "city",
		"rank_value", "match_rank",
	}
	mock.ExpectQuery("FROM entity e").
		WithArgs("acme%", "%acme%", "acme%", "%acme%", "%acme%", "%acme%", 10).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(7, "uuid-7", "organization", "Acme", "acme",
				nil, nil, nil, nil, 12.0, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?searchText=acme", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// the response is the ordered match list itself, not a wrapper object
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Acme", body[0]["displayName"])
	assert.Equal(t, "organization", body[0]["entityType"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestIDPropagation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get("X-Request-ID"))
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "route not found")
}
