package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"hotel-management/middleware"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service error kinds onto HTTP statuses and the
// shared JSON error envelope. Unclassified errors become opaque 500s.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "error.validation", err.Error())
	case errors.Is(err, services.ErrInvalidState):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidState", err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.JSONError(c, http.StatusConflict, "error.conflict", err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal server error")
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "invalid "+name+" parameter")
		return 0, false
	}
	return uint(parsed), true
}

// parseDate accepts the date-only format the dashboards send, with an
// RFC3339 fallback.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// currentUser returns the authenticated caller's id and role as stored by
// the Authenticate middleware.
func currentUser(c *gin.Context) (uint, string) {
	var id uint
	if v, ok := c.Get(middleware.ContextUserID); ok {
		id, _ = v.(uint)
	}
	return id, c.GetString(middleware.ContextUserRole)
}
