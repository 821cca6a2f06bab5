package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"TalentBoard-backend/internal/model"
	"TalentBoard-backend/internal/store"
	"TalentBoard-backend/internal/utilities"
)

// CreateJob handles the creation of a new hiring pipeline.
// @Summary Create job based on given json structure
// @Description Title is required and must be non-empty
// @Tags Job
// @Accept json
// @Produce json
// @Param Job body model.EditableJobInfo true "Input job information"
// @Success 201 {object} model.Job "Successfully created job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job struct or missing title"
// @Failure 502 {object} utilities.ErrorResponse "Remote backend rejected the write"
// @Router /jobs [post]
func (ct *Controller) CreateJob(c *gin.Context) {
	fields := model.EditableJobInfo{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fields); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job, err := ct.Core.CreateJob(c.Request.Context(), fields, nil)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJobs returns every job in the canonical snapshot.
// @Summary List all jobs with their candidates
// @Tags Job
// @Produce json
// @Success 200 {object} model.ATSState "Current board state"
// @Router /jobs [get]
func (ct *Controller) GetJobs(c *gin.Context) {
	c.JSON(http.StatusOK, ct.Core.State())
}

// EditJob applies a partial update to a job.
// @Summary Edit job based on given json structure
// @Tags Job
// @Accept json
// @Produce json
// @Param id path string true "ID of desired job"
// @Param Job body model.JobPatch true "Fields to update"
// @Success 200 {object} utilities.MessageResponse "Successfully updated job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid body or empty title"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 502 {object} utilities.ErrorResponse "Remote backend rejected the write"
// @Router /jobs/{id} [patch]
func (ct *Controller) EditJob(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	patch := model.JobPatch{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	if err := ct.Core.UpdateJob(c.Request.Context(), id, patch); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job updated"})
}

// DeleteJob removes a job and all of its candidates.
// @Summary Delete given job ID
// @Description Candidate deletion cascades; the selection moves to the first remaining job
// @Tags Job
// @Produce json
// @Param id path string true "ID of desired job"
// @Success 200 {object} utilities.MessageResponse "Successfully deleted job"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 502 {object} utilities.ErrorResponse "Remote backend rejected the write"
// @Router /jobs/{id} [delete]
func (ct *Controller) DeleteJob(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ct.Core.DeleteJob(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job deleted"})
}

// SelectJob moves the board selection to the given job.
// @Summary Select the job shown on the board
// @Tags Job
// @Produce json
// @Param id path string true "ID of desired job"
// @Success 200 {object} utilities.MessageResponse "Selection updated"
// @Router /jobs/{id}/select [post]
func (ct *Controller) SelectJob(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ct.Core.SelectJob(id)
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job selected"})
}

// UploadJobDescription attaches a JD file to a job.
// @Summary Upload job description attachment
// @Tags Job
// @Accept mpfd
// @Produce json
// @Param id path string true "ID of desired job"
// @Param jd formData file true "Job description file"
// @Success 200 {object} model.FileReference "Stored attachment reference"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 502 {object} utilities.ErrorResponse "Attachment storage failure"
// @Router /jobs/{id}/jd [post]
func (ct *Controller) UploadJobDescription(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	upload, ok := readFormFile(c, "jd")
	if !ok {
		return
	}

	ref, err := ct.Core.Adapter().UploadAttachment(c.Request.Context(), store.CategoryJobDescription, upload)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if err := ct.Core.UpdateJob(c.Request.Context(), id, model.JobPatch{JD: &ref}); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, ref)
}

// readFormFile pulls one multipart file into memory.
func readFormFile(c *gin.Context, field string) (store.Upload, bool) {
	rawFile, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve file: %s", err.Error()),
		})
		return store.Upload{}, false
	}

	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot open file"})
		return store.Upload{}, false
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close uploaded file: %v", err)
		}
	}()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot read file"})
		return store.Upload{}, false
	}

	return store.Upload{Name: rawFile.Filename, Data: fileBytes}, true
}
