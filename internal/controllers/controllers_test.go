package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-meals-api/internal/middleware"
	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/repository"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// menuGateway knows a fixed set of foods
type menuGateway struct {
	foods map[string]models.NutritionTotals
	err   error
}

func (g *menuGateway) Enrich(_ context.Context, name string) (models.NutritionTotals, error) {
	if g.err != nil {
		return models.NutritionTotals{}, g.err
	}
	totals, ok := g.foods[name]
	if !ok {
		return models.NutritionTotals{}, repository.ErrUnknownFood
	}
	return totals, nil
}

func newMenuGateway() *menuGateway {
	return &menuGateway{foods: map[string]models.NutritionTotals{
		"pasta": {Name: "pasta", Calories: 500, ServingSizeG: 150, SodiumMg: 12, SugarG: 1, Entries: 1},
		"salad": {Name: "salad", Calories: 28.2, ServingSizeG: 100, SodiumMg: 78.2, SugarG: 6, Entries: 1},
		"cake":  {Name: "cake", Calories: 350, ServingSizeG: 100, SodiumMg: 200, SugarG: 30, Entries: 1},
	}}
}

func setupRouter(gateway repository.NutritionGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetLogLevel(logrus.PanicLevel)
	middleware.SetLogLevel(logrus.PanicLevel)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery())
	RegisterRoutes(router, services.NewCatalogService(gateway))
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeInt(t *testing.T, rec *httptest.ResponseRecorder) int {
	t.Helper()
	var value int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value), rec.Body.String())
	return value
}

func meal(name string, appetizer, main, dessert int) gin.H {
	return gin.H{"name": name, "appetizer": appetizer, "main": main, "dessert": dessert}
}

func TestCatalogScenario(t *testing.T) {
	router := setupRouter(newMenuGateway())

	rec := doJSON(t, router, http.MethodPost, "/dishes", gin.H{"name": "pasta"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, decodeInt(t, rec))

	rec = doJSON(t, router, http.MethodPost, "/dishes", gin.H{"name": "pasta"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, int(models.CodeDuplicateName), decodeInt(t, rec))

	rec = doJSON(t, router, http.MethodPost, "/dishes", gin.H{"name": "salad"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, decodeInt(t, rec))

	rec = doJSON(t, router, http.MethodPost, "/meals", meal("combo", 2, 1, 2))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, decodeInt(t, rec))

	rec = doJSON(t, router, http.MethodGet, "/meals/combo", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Meal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.ID)
	assert.InDelta(t, 556.4, got.Cal, 1e-9)
	assert.InDelta(t, 168.4, got.Sodium, 1e-9)
	assert.InDelta(t, 13.0, got.Sugar, 1e-9)

	rec = doJSON(t, router, http.MethodDelete, "/dishes/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeInt(t, rec))

	// the meal keeps the totals captured at creation
	rec = doJSON(t, router, http.MethodGet, "/meals/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var after models.Meal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.Equal(t, got, after)

	rec = doJSON(t, router, http.MethodPut, "/meals/1", meal("combo", 2, 1, 2))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, int(models.CodeInvalidReference), decodeInt(t, rec))
}

func TestDishEndpoints(t *testing.T) {
	router := setupRouter(newMenuGateway())
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/dishes", gin.H{"name": "pasta"}).Code)

	rec := doJSON(t, router, http.MethodGet, "/dishes/pasta", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"ID": 1.0, "name": "pasta", "cal": 500.0, "size": 150.0, "sodium": 12.0, "sugar": 1.0}, body)

	rec = doJSON(t, router, http.MethodGet, "/dishes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all map[string]models.Dish
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Contains(t, all, "1")
	assert.Equal(t, "pasta", all["1"].Name)

	rec = doJSON(t, router, http.MethodDelete, "/dishes/pasta", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeInt(t, rec))

	for _, path := range []string{"/dishes/1", "/dishes/pasta"} {
		rec = doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, int(models.CodeNotFound), decodeInt(t, rec))
		rec = doJSON(t, router, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, int(models.CodeNotFound), decodeInt(t, rec))
	}
}

func TestCreateDishFailures(t *testing.T) {
	testCases := []struct {
		name       string
		gatewayErr error
		dish       string
		wantStatus int
		wantCode   models.ErrorCode
	}{
		{name: "unknown food", dish: "blah", wantStatus: http.StatusUnprocessableEntity, wantCode: models.CodeUnknownFood},
		{name: "upstream down", gatewayErr: repository.ErrUpstreamUnavailable, dish: "pasta", wantStatus: http.StatusUnprocessableEntity, wantCode: models.CodeUpstreamUnavailable},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newMenuGateway()
			gateway.err = tt.gatewayErr
			router := setupRouter(gateway)

			rec := doJSON(t, router, http.MethodPost, "/dishes", gin.H{"name": tt.dish})
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, int(tt.wantCode), decodeInt(t, rec))

			rec = doJSON(t, router, http.MethodGet, "/dishes", nil)
			assert.JSONEq(t, `{}`, rec.Body.String())
		})
	}
}

func TestRequestValidation(t *testing.T) {
	router := setupRouter(newMenuGateway())

	testCases := []struct {
		name        string
		method      string
		path        string
		contentType string
		body        string
		wantStatus  int
		wantCode    models.ErrorCode
	}{
		{name: "dish without json content type", method: http.MethodPost, path: "/dishes", contentType: "text/plain", body: `{"name":"pasta"}`, wantStatus: http.StatusUnsupportedMediaType, wantCode: models.CodeUnsupportedMediaType},
		{name: "meal without content type", method: http.MethodPost, path: "/meals", body: `{}`, wantStatus: http.StatusUnsupportedMediaType, wantCode: models.CodeUnsupportedMediaType},
		{name: "update without json content type", method: http.MethodPut, path: "/meals/1", contentType: "application/xml", body: `<meal/>`, wantStatus: http.StatusUnsupportedMediaType, wantCode: models.CodeUnsupportedMediaType},
		{name: "dish body is not json", method: http.MethodPost, path: "/dishes", contentType: "application/json", body: `name=pasta`, wantStatus: http.StatusUnprocessableEntity, wantCode: models.CodeInvalidBody},
		{name: "dish body without name", method: http.MethodPost, path: "/dishes", contentType: "application/json", body: `{"title":"pasta"}`, wantStatus: http.StatusUnprocessableEntity, wantCode: models.CodeInvalidBody},
		{name: "meal body missing dessert", method: http.MethodPost, path: "/meals", contentType: "application/json", body: `{"name":"combo","appetizer":1,"main":1}`, wantStatus: http.StatusUnprocessableEntity, wantCode: models.CodeInvalidBody},
		{name: "meal body with string id", method: http.MethodPost, path: "/meals", contentType: "application/json", body: `{"name":"combo","appetizer":"1","main":1,"dessert":1}`, wantStatus: http.StatusUnprocessableEntity, wantCode: models.CodeInvalidBody},
		{name: "json with charset is accepted", method: http.MethodPost, path: "/meals", contentType: "application/json; charset=utf-8", body: `{"name":"combo","appetizer":9,"main":9,"dessert":9}`, wantStatus: http.StatusUnprocessableEntity, wantCode: models.CodeInvalidReference},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, int(tt.wantCode), decodeInt(t, rec))
		})
	}
}

func TestMealEndpoints(t *testing.T) {
	router := setupRouter(newMenuGateway())
	for _, name := range []string{"pasta", "salad", "cake"} {
		require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/dishes", gin.H{"name": name}).Code)
	}
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/meals", meal("combo", 1, 2, 3)).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/meals", meal("dinner", 2, 2, 2)).Code)

	testCases := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantBody   int
	}{
		{name: "duplicate meal name", method: http.MethodPost, path: "/meals", body: meal("combo", 1, 1, 1), wantStatus: http.StatusUnprocessableEntity, wantBody: int(models.CodeDuplicateName)},
		{name: "meal with unknown dish", method: http.MethodPost, path: "/meals", body: meal("lunch", 1, 7, 1), wantStatus: http.StatusUnprocessableEntity, wantBody: int(models.CodeInvalidReference)},
		{name: "update unknown meal", method: http.MethodPut, path: "/meals/42", body: meal("x", 1, 1, 1), wantStatus: http.StatusNotFound, wantBody: int(models.CodeNotFound)},
		{name: "update with non numeric id", method: http.MethodPut, path: "/meals/combo", body: meal("x", 1, 1, 1), wantStatus: http.StatusNotFound, wantBody: int(models.CodeNotFound)},
		{name: "update to taken name", method: http.MethodPut, path: "/meals/1", body: meal("dinner", 1, 1, 1), wantStatus: http.StatusUnprocessableEntity, wantBody: int(models.CodeDuplicateName)},
		{name: "update with unknown dish", method: http.MethodPut, path: "/meals/1", body: meal("renamed", 1, 9, 1), wantStatus: http.StatusUnprocessableEntity, wantBody: int(models.CodeInvalidReference)},
		{name: "update renames meal", method: http.MethodPut, path: "/meals/1", body: meal("brunch", 3, 3, 3), wantStatus: http.StatusOK, wantBody: 1},
		{name: "get renamed meal by old name", method: http.MethodGet, path: "/meals/combo", wantStatus: http.StatusNotFound, wantBody: int(models.CodeNotFound)},
		{name: "delete meal by name", method: http.MethodDelete, path: "/meals/dinner", wantStatus: http.StatusOK, wantBody: 2},
		{name: "delete meal twice", method: http.MethodDelete, path: "/meals/2", wantStatus: http.StatusNotFound, wantBody: int(models.CodeNotFound)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, decodeInt(t, rec))
		})
	}

	rec := doJSON(t, router, http.MethodGet, "/meals/brunch", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var brunch models.Meal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &brunch))
	assert.Equal(t, 1, brunch.ID)
	assert.InDelta(t, 1050.0, brunch.Cal, 1e-9)

	rec = doJSON(t, router, http.MethodGet, "/meals", nil)
	var all map[string]models.Meal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 1)
	assert.Contains(t, all, "1")
}

func TestBulkDeleteIsNotAllowed(t *testing.T) {
	router := setupRouter(newMenuGateway())

	for _, path := range []string{"/dishes", "/meals"} {
		rec := doJSON(t, router, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.JSONEq(t, `"Not implemented"`, rec.Body.String())
	}
}
