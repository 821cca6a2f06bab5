package core

import (
	"context"
	"log"

	"github.com/google/uuid"

	"TalentBoard-backend/internal/intake"
	"TalentBoard-backend/internal/model"
	"TalentBoard-backend/internal/store"
)

// IntakeResult reports the outcome for one file of a bulk upload.
type IntakeResult struct {
	Filename  string           `json:"filename"`
	Candidate *model.Candidate `json:"candidate,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// BulkIntake creates one Sourced candidate per uploaded resume, naming each
// from its filename. A failed file is reported and skipped; the rest of the
// batch continues.
func (c *Core) BulkIntake(ctx context.Context, jobID uuid.UUID, files []store.Upload) []IntakeResult {
	results := make([]IntakeResult, 0, len(files))
	for _, f := range files {
		fields := model.EditableCandidateInfo{
			Name:  intake.NameFromFilename(f.Name),
			Stage: model.StageSourced,
		}
		upload := f
		cand, err := c.CreateCandidate(ctx, jobID, fields, &upload)
		if err != nil {
			log.Printf("bulk intake: %s failed: %v", f.Name, err)
			results = append(results, IntakeResult{Filename: f.Name, Error: err.Error()})
			continue
		}
		results = append(results, IntakeResult{Filename: f.Name, Candidate: &cand})
	}
	return results
}

// ImportState replaces the entire board with a parsed backup document. The
// operation is all-or-nothing: a parse failure leaves the existing state
// untouched. Restore targets the local snapshot, so it requires the local
// variant to be active.
func (c *Core) ImportState(data []byte) error {
	if c.Mode() != "local" {
		return &store.ValidationError{Field: "mode", Reason: "import requires the local backend"}
	}

	imported, err := intake.ImportJSON(data)
	if err != nil {
		return err
	}

	c.local.ReplaceAll(imported)
	c.store.Replace(imported)
	return nil
}
