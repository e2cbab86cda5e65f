package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-meals-api/internal/middleware"
	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const jsonContentType = "application/json"

// requireJSON answers 415 with code 0 unless the request declares a JSON body
func requireJSON(ctx *gin.Context) bool {
	if ctx.ContentType() != jsonContentType {
		ctx.JSON(http.StatusUnsupportedMediaType, models.CodeUnsupportedMediaType)
		return false
	}
	return true
}

// bindBody decodes the JSON body into req, answering 422 with code -1 on failure
func bindBody(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		requestLogger(ctx).WithError(err).Debug("Rejected request body")
		ctx.JSON(http.StatusUnprocessableEntity, models.CodeInvalidBody)
		return false
	}
	return true
}

// pathKey reports whether the :key parameter is a numeric id or a name
func pathKey(ctx *gin.Context) (id int, name string, byID bool) {
	key := ctx.Param("key")
	if id, err := strconv.Atoi(key); err == nil {
		return id, "", true
	}
	return 0, key, false
}

// errorCode maps a catalog error to its numeric wire code
func errorCode(err error) (models.ErrorCode, bool) {
	switch {
	case errors.Is(err, repository.ErrDuplicateName):
		return models.CodeDuplicateName, true
	case errors.Is(err, repository.ErrUnknownFood):
		return models.CodeUnknownFood, true
	case errors.Is(err, repository.ErrUpstreamUnavailable):
		return models.CodeUpstreamUnavailable, true
	case errors.Is(err, repository.ErrNotFound):
		return models.CodeNotFound, true
	case errors.Is(err, repository.ErrInvalidReference):
		return models.CodeInvalidReference, true
	default:
		return 0, false
	}
}

// respondError writes err as a numeric code with the given status.
// Errors without a code become a 500 APIError.
func respondError(ctx *gin.Context, status int, err error) {
	code, ok := errorCode(err)
	if !ok {
		requestLogger(ctx).WithError(err).Error("Unexpected catalog error")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
		return
	}
	requestLogger(ctx).WithFields(logrus.Fields{"code": code, "status": status}).WithError(err).Info("Catalog request failed")
	ctx.JSON(status, code)
}

// notImplementedBulk answers bulk deletes, which the catalog does not support
func notImplementedBulk(ctx *gin.Context) {
	ctx.JSON(http.StatusMethodNotAllowed, models.ErrNotImplementedBulk)
}

func requestLogger(ctx *gin.Context) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"request_id": ctx.GetString(middleware.RequestIDKey),
		"method":     ctx.Request.Method,
		"path":       ctx.Request.URL.Path,
	})
}
