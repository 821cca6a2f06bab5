package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"TalentBoard-backend/internal/utilities"
)

// GetBoard derives the grouped view of the selected job.
// @Summary Get the filtered, stage-grouped board of the selected job
// @Description Empty query keeps every candidate; tags are conjunctive and case-insensitive
// @Tags Board
// @Produce json
// @Param query query string false "Fuzzy search over name, email, tags and notes"
// @Param tag query []string false "Tag filter, repeatable or comma separated"
// @Param scoreMin query integer false "Minimum score; candidates without a score fail the bound"
// @Param scoreMax query integer false "Maximum score; candidates without a score fail the bound"
// @Param appliedFrom query string false "Applied-at lower bound (YYYY-MM-DD, one-day pad)"
// @Param appliedTo query string false "Applied-at upper bound (YYYY-MM-DD, one-day pad)"
// @Success 200 {object} core.BoardView "Grouped board view with WIP advisories"
// @Router /board [get]
func (ct *Controller) GetBoard(c *gin.Context) {
	query, filters := parseFilters(c)
	c.JSON(http.StatusOK, ct.Core.Board(query, filters))
}

// GetAttachment serves a session-scoped local attachment handle.
// @Summary Download an attachment stored by the local backend
// @Tags Board
// @Produce octet-stream
// @Param key path string true "Attachment key"
// @Success 200 {file} binary "Attachment bytes"
// @Failure 404 {object} utilities.ErrorResponse "Unknown or expired handle"
// @Router /attachments/{key} [get]
func (ct *Controller) GetAttachment(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	data, ok := ct.Core.Attachments().Get("local://" + key)
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Attachment not found"})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", data)
}
