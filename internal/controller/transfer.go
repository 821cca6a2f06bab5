package controller

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"TalentBoard-backend/internal/store"
	"TalentBoard-backend/internal/utilities"
)

// ExportJSON streams the full board state as a backup document.
// @Summary Export the full board state as JSON
// @Tags Transfer
// @Produce json
// @Success 200 {object} model.ATSState "Complete state document"
// @Router /export/json [get]
func (ct *Controller) ExportJSON(c *gin.Context) {
	data, err := ct.Core.ExportJSON()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to serialize state: %s", err.Error()),
		})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=ats-backup.json")
	c.Data(http.StatusOK, "application/json", data)
}

// ImportJSON replaces the entire board with an uploaded backup document.
// @Summary Import a JSON backup, replacing all state
// @Description All-or-nothing: a parse failure keeps the prior state
// @Tags Transfer
// @Accept json
// @Produce json
// @Success 200 {object} utilities.MessageResponse "State replaced"
// @Failure 400 {object} utilities.ErrorResponse "Malformed document or remote backend active"
// @Router /import [post]
func (ct *Controller) ImportJSON(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to read request body: %s", err.Error()),
		})
		return
	}

	if err := ct.Core.ImportState(data); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "State imported"})
}

// ExportCSV streams the currently filtered candidate list as CSV.
// @Summary Export the filtered candidates of the selected job as CSV
// @Description Same query parameters as /board; all fields quoted, tags pipe-joined
// @Tags Transfer
// @Produce plain
// @Success 200 {string} string "CSV projection"
// @Router /export/csv [get]
func (ct *Controller) ExportCSV(c *gin.Context) {
	query, filters := parseFilters(c)
	data := ct.Core.ExportCSV(query, filters)
	c.Header("Content-Disposition", "attachment; filename=candidates.csv")
	c.Data(http.StatusOK, "text/csv", data)
}

// BulkIntake creates one candidate per uploaded resume file.
// @Summary Bulk-upload resumes into a job
// @Description Candidate names are guessed from filenames; each failure is reported per file without aborting the batch
// @Tags Transfer
// @Accept mpfd
// @Produce json
// @Param id path string true "ID of owning job"
// @Param files formData file true "Resume files"
// @Success 200 {array} core.IntakeResult "Per-file outcomes"
// @Failure 400 {object} utilities.ErrorResponse "Not a multipart request"
// @Router /jobs/{id}/intake [post]
func (ct *Controller) BulkIntake(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse multipart form: %s", err.Error()),
		})
		return
	}

	var uploads []store.Upload
	for _, rawFile := range form.File["files"] {
		f, err := rawFile.Open()
		if err != nil {
			log.Printf("bulk intake: cannot open %s: %v", rawFile.Filename, err)
			continue
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			log.Printf("bulk intake: cannot read %s: %v", rawFile.Filename, err)
			continue
		}
		uploads = append(uploads, store.Upload{Name: rawFile.Filename, Data: data})
	}

	c.JSON(http.StatusOK, ct.Core.BulkIntake(c.Request.Context(), jobID, uploads))
}

// backendRequest names the persistence variant to activate.
type backendRequest struct {
	Mode string `json:"mode"`
}

// SwitchBackend activates the named persistence variant.
// @Summary Switch between the local and remote persistence backends
// @Description On switch the canonical state is replaced wholesale with the target backend's state
// @Tags Transfer
// @Accept json
// @Produce json
// @Param Backend body backendRequest true "local or remote"
// @Success 200 {object} utilities.MessageResponse "Backend switched"
// @Failure 400 {object} utilities.ErrorResponse "Unknown mode or remote not configured"
// @Failure 502 {object} utilities.ErrorResponse "Remote state load failed"
// @Router /backend [put]
func (ct *Controller) SwitchBackend(c *gin.Context) {
	req := backendRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if err := ct.Core.SwitchBackend(c.Request.Context(), req.Mode); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Backend switched to " + req.Mode})
}

// GetBackend reports the active variant and whether remote is available.
// @Summary Get the active persistence backend
// @Tags Transfer
// @Produce json
// @Success 200 {object} map[string]any "mode and remoteConfigured"
// @Router /backend [get]
func (ct *Controller) GetBackend(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mode":             ct.Core.Mode(),
		"remoteConfigured": ct.Core.RemoteConfigured(),
	})
}
