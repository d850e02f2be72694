package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maktab-hr/manpower_office_app/internal/apperrors"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
)

// respondError translates a service error into the JSON error envelope.
// AppError codes map straight to HTTP statuses; anything else is a 500 with
// the fallback message so internals never leak to the client.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error(fallback, slog.String("error", err.Error()))
			c.JSON(appErr.Code, dto.Error(appErr.Message))
			return
		}
		logger.Warn(fallback, slog.String("error", err.Error()))
		c.JSON(appErr.Code, dto.Fail(appErr.Message))
		return
	}
	logger.Error(fallback, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.Error(fallback))
}

// bindListParams binds page/limit query parameters and normalizes them.
func bindListParams(c *gin.Context) dto.ListParams {
	var params dto.ListParams
	_ = c.ShouldBindQuery(&params)
	params.Normalize()
	return params
}

// queryIntPtr reads an optional integer query parameter. Absent or malformed
// values come back as nil, so a bad month/year degrades to "no filter".
func queryIntPtr(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}
