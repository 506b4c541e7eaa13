package types

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/killallgit/podcast-catalog/internal/services/pagination"
	apperrors "github.com/killallgit/podcast-catalog/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as a positive uint.
// Returns false after sending a 400 when parsing fails.
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || value == 0 {
		SendError(c, apperrors.New(apperrors.ErrCodeInvalidInput, "Invalid "+paramName).
			WithDetail(paramName, c.Param(paramName)))
		return 0, false
	}
	return uint(value), true
}

// ParsePagination reads page and limit from the query string and clamps them.
// Missing or malformed values fall back to page 1 and the default limit.
func ParsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = pagination.DefaultLimit
	}
	return pagination.Clamp(page, limit, pagination.DefaultLimit)
}

// BindJSONOrError binds the JSON body to target.
// Returns false after sending a 400 when binding fails.
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeValidation),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendError writes err as an ErrorResponse with the status its code maps to
func SendError(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) {
		c.AbortWithStatus(499)
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.TimeoutError(c.FullPath(), "request deadline")
	}

	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Wrap(err, apperrors.ErrCodeInternal, "Internal server error")
	}

	status := appErr.GetHTTPCode()
	path := c.FullPath()
	if c.Request != nil && c.Request.URL != nil {
		path = c.Request.URL.Path
	}
	entry := log.WithFields(log.Fields{
		"path":   path,
		"code":   appErr.Code,
		"status": status,
	})
	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error("request failed")
	} else {
		entry.Debug(appErr.Message)
	}

	response := ErrorResponse{
		Status:  StatusError,
		Message: appErr.Message,
		Error:   string(appErr.Code),
	}
	if len(appErr.Details) > 0 {
		response.Details = appErr.Details
	}
	c.JSON(status, response)
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
