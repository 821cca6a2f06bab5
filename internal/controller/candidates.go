package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"TalentBoard-backend/internal/model"
	"TalentBoard-backend/internal/pipeline"
	"TalentBoard-backend/internal/store"
	"TalentBoard-backend/internal/utilities"
)

// CreateCandidate adds a candidate to a job's pipeline.
// @Summary Create candidate under the given job
// @Description An unrecognized stage value is normalized to Sourced
// @Tags Candidate
// @Accept json
// @Produce json
// @Param id path string true "ID of owning job"
// @Param Candidate body model.EditableCandidateInfo true "Input candidate information"
// @Success 201 {object} model.Candidate "Successfully created candidate"
// @Failure 400 {object} utilities.ErrorResponse "Invalid candidate struct or missing name"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 502 {object} utilities.ErrorResponse "Remote backend rejected the write"
// @Router /jobs/{id}/candidates [post]
func (ct *Controller) CreateCandidate(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}

	fields := model.EditableCandidateInfo{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fields); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	cand, err := ct.Core.CreateCandidate(c.Request.Context(), jobID, fields, nil)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cand)
}

// EditCandidate applies a partial update to a candidate.
// @Summary Edit candidate based on given json structure
// @Tags Candidate
// @Accept json
// @Produce json
// @Param id path string true "ID of owning job"
// @Param candidate_id path string true "ID of desired candidate"
// @Param Candidate body model.CandidatePatch true "Fields to update"
// @Success 200 {object} utilities.MessageResponse "Successfully updated candidate"
// @Failure 400 {object} utilities.ErrorResponse "Invalid body, empty name or score out of range"
// @Failure 404 {object} utilities.ErrorResponse "Candidate not found"
// @Failure 502 {object} utilities.ErrorResponse "Remote backend rejected the write"
// @Router /jobs/{id}/candidates/{candidate_id} [patch]
func (ct *Controller) EditCandidate(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	candidateID, ok := parseID(c, "candidate_id")
	if !ok {
		return
	}

	patch := model.CandidatePatch{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	if err := ct.Core.UpdateCandidate(c.Request.Context(), jobID, candidateID, patch); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Candidate updated"})
}

// DeleteCandidate removes a candidate from a job's pipeline.
// @Summary Delete given candidate ID
// @Tags Candidate
// @Produce json
// @Param id path string true "ID of owning job"
// @Param candidate_id path string true "ID of desired candidate"
// @Success 200 {object} utilities.MessageResponse "Successfully deleted candidate"
// @Failure 404 {object} utilities.ErrorResponse "Candidate not found"
// @Failure 502 {object} utilities.ErrorResponse "Remote backend rejected the write"
// @Router /jobs/{id}/candidates/{candidate_id} [delete]
func (ct *Controller) DeleteCandidate(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	candidateID, ok := parseID(c, "candidate_id")
	if !ok {
		return
	}

	if err := ct.Core.DeleteCandidate(c.Request.Context(), jobID, candidateID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Candidate deleted"})
}

// moveRequest is the command the gesture layer reduces a drop to: either a
// stage column or another candidate's card.
type moveRequest struct {
	TargetStage     *model.Stage `json:"targetStage,omitempty"`
	TargetCandidate *uuid.UUID   `json:"targetCandidateId,omitempty"`
}

// MoveCandidate reassigns a candidate's stage.
// @Summary Move candidate to another pipeline stage
// @Description Dropping onto another candidate resolves to that candidate's column. Unresolvable requests are dropped silently; moving onto the current stage is a no-op.
// @Tags Candidate
// @Accept json
// @Produce json
// @Param id path string true "ID of owning job"
// @Param candidate_id path string true "ID of desired candidate"
// @Param Move body moveRequest true "Drop target"
// @Success 200 {object} pipeline.Result "Transition outcome"
// @Failure 502 {object} utilities.ErrorResponse "Remote backend rejected the write"
// @Router /jobs/{id}/candidates/{candidate_id}/move [post]
func (ct *Controller) MoveCandidate(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	candidateID, ok := parseID(c, "candidate_id")
	if !ok {
		return
	}

	req := moveRequest{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	target := pipeline.DropTarget{Stage: req.TargetStage, CandidateID: req.TargetCandidate}
	result, err := ct.Core.MoveCandidate(c.Request.Context(), jobID, candidateID, target)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UploadResume attaches a resume file to a candidate.
// @Summary Upload resume attachment
// @Tags Candidate
// @Accept mpfd
// @Produce json
// @Param id path string true "ID of owning job"
// @Param candidate_id path string true "ID of desired candidate"
// @Param resume formData file true "Resume file"
// @Success 200 {object} model.FileReference "Stored attachment reference"
// @Failure 404 {object} utilities.ErrorResponse "Candidate not found"
// @Failure 502 {object} utilities.ErrorResponse "Attachment storage failure"
// @Router /jobs/{id}/candidates/{candidate_id}/resume [post]
func (ct *Controller) UploadResume(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	candidateID, ok := parseID(c, "candidate_id")
	if !ok {
		return
	}

	upload, ok := readFormFile(c, "resume")
	if !ok {
		return
	}

	ref, err := ct.Core.Adapter().UploadAttachment(c.Request.Context(), store.CategoryResume, upload)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if err := ct.Core.UpdateCandidate(c.Request.Context(), jobID, candidateID, model.CandidatePatch{Resume: &ref}); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, ref)
}
