// Package controller provides HTTP handlers for board, job and candidate
// operations.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"TalentBoard-backend/internal/core"
	"TalentBoard-backend/internal/filter"
	"TalentBoard-backend/internal/store"
	"TalentBoard-backend/internal/utilities"
)

// Controller handles board related endpoints
type Controller struct {
	Core *core.Core
}

// NewController creates a new instance of Controller
func NewController(c *core.Core) *Controller {
	return &Controller{Core: c}
}

// parseID reads a uuid path param, answering 400 on garbage.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid " + name + ": " + err.Error(),
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondStoreError converts a core failure into the single user-visible
// message for the operation.
func respondStoreError(c *gin.Context, err error) {
	var (
		validation *store.ValidationError
		parse      *store.ParseError
		transport  *store.TransportError
		attachment *store.AttachmentError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: validation.Error()})
	case errors.As(err, &parse):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: parse.Error()})
	case store.IsNotFound(err):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error()})
	case errors.As(err, &transport), errors.As(err, &attachment):
		c.JSON(http.StatusBadGateway, utilities.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: err.Error()})
	}
}

// parseFilters reads the query/filter state from request query params. Tags
// may repeat or arrive comma separated; dates are whole days.
func parseFilters(c *gin.Context) (string, filter.Filters) {
	query := c.Query("query")

	var f filter.Filters
	for _, raw := range c.QueryArray("tag") {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.Tags = append(f.Tags, t)
			}
		}
	}
	if v := c.Query("scoreMin"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.ScoreMin = &n
		}
	}
	if v := c.Query("scoreMax"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.ScoreMax = &n
		}
	}
	if v := c.Query("appliedFrom"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.AppliedFrom = &t
		}
	}
	if v := c.Query("appliedTo"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.AppliedTo = &t
		}
	}
	return query, f
}
