package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetLogLevel(logrus.PanicLevel)
	router := gin.New()
	router.Use(RequestID(), Logger(), Metrics(), Recovery())
	return router
}

func TestRequestID(t *testing.T) {
	router := setupRouter()
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	testCases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generates an id when none is sent", incoming: "", keep: false},
		{name: "keeps a valid caller id", incoming: "7b0d4f0e-4d55-4c57-9d2a-3c1e1b0e9f11", keep: true},
		{name: "replaces an id that is not a uuid", incoming: "not-a-uuid", keep: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, got, rec.Body.String())
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestRecoveryReportsCorruption(t *testing.T) {
	router := setupRouter()
	router.GET("/corrupt", func(c *gin.Context) {
		panic(&repository.CorruptionError{Entity: "dish", Index: "name", Key: `"pasta"`})
	})
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	testCases := []struct {
		path     string
		wantCode string
	}{
		{path: "/corrupt", wantCode: models.ErrRepositoryCorrupt},
		{path: "/boom", wantCode: models.ErrInternalServer},
	}

	for _, tt := range testCases {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			var apiErr models.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}
