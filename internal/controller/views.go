package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"TalentBoard-backend/internal/filter"
	"TalentBoard-backend/internal/utilities"
)

// ListPresets returns every saved view preset.
// @Summary List saved view presets
// @Tags View
// @Produce json
// @Success 200 {array} filter.Preset "Presets in save order"
// @Router /views [get]
func (ct *Controller) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, ct.Core.Presets().List())
}

// SavePreset stores or replaces a named view preset.
// @Summary Save a view preset
// @Description Saving under an existing name overwrites it
// @Tags View
// @Accept json
// @Produce json
// @Param View body filter.Preset true "Preset to save"
// @Success 201 {object} filter.Preset "Saved preset"
// @Failure 400 {object} utilities.ErrorResponse "Invalid preset or missing name"
// @Router /views [post]
func (ct *Controller) SavePreset(c *gin.Context) {
	preset := filter.Preset{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&preset); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if preset.Name == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Preset name must not be empty"})
		return
	}

	ct.Core.Presets().Save(preset)
	c.JSON(http.StatusCreated, preset)
}

// ApplyPreset resolves a preset and returns the board computed from it. The
// preset replaces the live query/filter state wholesale.
// @Summary Apply a saved preset and get the resulting board
// @Tags View
// @Produce json
// @Param name path string true "Preset name"
// @Success 200 {object} core.BoardView "Board under the preset's query and filters"
// @Failure 404 {object} utilities.ErrorResponse "Preset not found"
// @Router /views/{name}/apply [post]
func (ct *Controller) ApplyPreset(c *gin.Context) {
	preset, ok := ct.Core.Presets().Get(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Preset not found"})
		return
	}
	c.JSON(http.StatusOK, ct.Core.Board(preset.Query, preset.Filters))
}

// DeletePreset removes a named preset.
// @Summary Delete a view preset
// @Tags View
// @Produce json
// @Param name path string true "Preset name"
// @Success 200 {object} utilities.MessageResponse "Preset deleted"
// @Failure 404 {object} utilities.ErrorResponse "Preset not found"
// @Router /views/{name} [delete]
func (ct *Controller) DeletePreset(c *gin.Context) {
	if !ct.Core.Presets().Delete(c.Param("name")) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Preset not found"})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Preset deleted"})
}
