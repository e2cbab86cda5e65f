package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offlineGateway struct{}

func (offlineGateway) Enrich(context.Context, string) (models.NutritionTotals, error) {
	return models.NutritionTotals{}, context.DeadlineExceeded
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	applyLogLevel("panic")
	catalogService = services.NewCatalogService(offlineGateway{})
	require.NoError(t, catalogService.Seed())
	return setupRouter()
}

func TestRouterServesOperationalEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	testCases := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "root", path: "/", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "health", path: "/health", wantStatus: http.StatusOK, wantBody: `"status":"healthy"`},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK, wantBody: "meals_api_http_requests_total"},
		{name: "unknown route", path: "/drinks", wantStatus: http.StatusNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRouterServesSeededCatalog(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dishes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var dishes map[string]models.Dish
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dishes))
	assert.Len(t, dishes, 4)

	req := httptest.NewRequest(http.MethodPost, "/meals", strings.NewReader(`{"name":"lunch","appetizer":4,"main":1,"dessert":2}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "1", rec.Body.String())

	// creating a dish needs the nutrition service, which is offline here
	req = httptest.NewRequest(http.MethodPost, "/dishes", strings.NewReader(`{"name":"risotto"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "-4", rec.Body.String())
}
