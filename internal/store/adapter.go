// Package store defines the persistence adapter contract and its two
// variants: an always-available local snapshot store and a Postgres-backed
// remote store. All call sites depend on the Adapter interface only; the
// active variant is selected once per session or backend switch.
package store

import (
	"context"

	"github.com/google/uuid"

	"TalentBoard-backend/internal/model"
)

// AttachmentCategory namespaces uploaded artifacts in object storage.
type AttachmentCategory string

const (
	CategoryJobDescription AttachmentCategory = "job-description"
	CategoryResume         AttachmentCategory = "resume"
)

// Upload is a file handed to the adapter for attachment storage.
type Upload struct {
	Name string
	Data []byte
}

// Adapter is the single persistence contract both variants implement.
// Remote calls may fail with a TransportError; the local variant never fails
// on CRUD. Mutations return the canonical record so the caller can feed it
// into the canonical store.
type Adapter interface {
	// Name identifies the variant: "local" or "remote".
	Name() string

	CreateJob(ctx context.Context, fields model.EditableJobInfo, jd *Upload) (model.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, patch model.JobPatch) error
	// DeleteJob cascades deletion of the job's candidates.
	DeleteJob(ctx context.Context, id uuid.UUID) error

	CreateCandidate(ctx context.Context, jobID uuid.UUID, fields model.EditableCandidateInfo, resume *Upload) (model.Candidate, error)
	UpdateCandidate(ctx context.Context, jobID, candidateID uuid.UUID, patch model.CandidatePatch) error
	DeleteCandidate(ctx context.Context, jobID, candidateID uuid.UUID) error

	// LoadAll returns the complete persisted state. On a switch to this
	// variant the canonical store is replaced wholesale with the result.
	LoadAll(ctx context.Context) (model.ATSState, error)

	UploadAttachment(ctx context.Context, category AttachmentCategory, upload Upload) (model.FileReference, error)
}
