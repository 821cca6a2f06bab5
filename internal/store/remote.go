package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"TalentBoard-backend/internal/database"
	"TalentBoard-backend/internal/model"
	"TalentBoard-backend/internal/storage"
)

// DefaultRemoteTimeout bounds each remote call so a hung network request
// cannot pin an operation forever.
const DefaultRemoteTimeout = 15 * time.Second

// RemoteStore is the Postgres-backed variant. Calls run against the network
// and may fail; the caller mutates the canonical store only after a
// confirmed response.
type RemoteStore struct {
	db      *database.DBinstanceStruct
	cloud   *storage.CloudStorageClient
	timeout time.Duration
}

// NewRemoteStore wraps an established database connection and attachment
// bucket. A non-positive timeout falls back to DefaultRemoteTimeout.
func NewRemoteStore(db *database.DBinstanceStruct, cloud *storage.CloudStorageClient, timeout time.Duration) *RemoteStore {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &RemoteStore{db: db, cloud: cloud, timeout: timeout}
}

// Name identifies the variant.
func (r *RemoteStore) Name() string { return "remote" }

func (r *RemoteStore) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// CreateJob uploads the optional description first, then inserts the row.
func (r *RemoteStore) CreateJob(ctx context.Context, fields model.EditableJobInfo, jd *Upload) (model.Job, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	job := model.Job{
		ID:              uuid.New(),
		EditableJobInfo: fields,
		CreatedAt:       time.Now(),
		Candidates:      []model.Candidate{},
	}
	if jd != nil {
		ref, err := r.UploadAttachment(ctx, CategoryJobDescription, *jd)
		if err != nil {
			return model.Job{}, err
		}
		job.JD = &ref
	}

	if err := r.db.WithContext(ctx).Create(&job).Error; err != nil {
		return model.Job{}, &TransportError{Op: "create job", Err: err}
	}
	return job, nil
}

// UpdateJob applies a partial update to the row.
func (r *RemoteStore) UpdateJob(ctx context.Context, id uuid.UUID, patch model.JobPatch) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Department != nil {
		updates["department"] = *patch.Department
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.JD != nil {
		updates["jd_name"] = patch.JD.Name
		updates["jd_url"] = patch.JD.URL
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&model.Job{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return &TransportError{Op: "update job", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteJob removes the row; the FK constraint cascades candidate deletion.
func (r *RemoteStore) DeleteJob(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&model.Job{}, "id = ?", id)
	if res.Error != nil {
		return &TransportError{Op: "delete job", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateCandidate uploads the optional resume, then inserts the row under
// the given job.
func (r *RemoteStore) CreateCandidate(ctx context.Context, jobID uuid.UUID, fields model.EditableCandidateInfo, resume *Upload) (model.Candidate, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	if fields.Tags == nil {
		fields.Tags = pq.StringArray{}
	}
	cand := model.Candidate{
		ID:                    uuid.New(),
		JobID:                 jobID,
		EditableCandidateInfo: fields,
		AppliedAt:             time.Now(),
	}
	if resume != nil {
		ref, err := r.UploadAttachment(ctx, CategoryResume, *resume)
		if err != nil {
			return model.Candidate{}, err
		}
		cand.Resume = &ref
	}

	if err := r.db.WithContext(ctx).Create(&cand).Error; err != nil {
		return model.Candidate{}, &TransportError{Op: "create candidate", Err: err}
	}
	return cand, nil
}

// UpdateCandidate applies a partial update scoped to the owning job.
func (r *RemoteStore) UpdateCandidate(ctx context.Context, jobID, candidateID uuid.UUID, patch model.CandidatePatch) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Tags != nil {
		updates["tags"] = pq.StringArray(*patch.Tags)
	}
	if patch.Score != nil {
		updates["score"] = *patch.Score
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if patch.Stage != nil {
		updates["stage"] = string(*patch.Stage)
	}
	if patch.Resume != nil {
		updates["resume_name"] = patch.Resume.Name
		updates["resume_url"] = patch.Resume.URL
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&model.Candidate{}).
		Where("id = ? AND job_id = ?", candidateID, jobID).
		Updates(updates)
	if res.Error != nil {
		return &TransportError{Op: "update candidate", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCandidate removes one candidate row scoped to the owning job.
func (r *RemoteStore) DeleteCandidate(ctx context.Context, jobID, candidateID uuid.UUID) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&model.Candidate{}, "id = ? AND job_id = ?", candidateID, jobID)
	if res.Error != nil {
		return &TransportError{Op: "delete candidate", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// LoadAll fetches every job with its candidates in insertion order. The
// selection is client-side state the schema does not carry, so it comes back
// nil and the canonical store reselects the first job.
func (r *RemoteStore) LoadAll(ctx context.Context) (model.ATSState, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Preload("Candidates", func(db *gorm.DB) *gorm.DB {
			return db.Order("applied_at ASC, id ASC")
		}).
		Order("created_at ASC").
		Find(&jobs).Error
	if err != nil {
		return model.ATSState{}, &TransportError{Op: "load state", Err: err}
	}
	for i := range jobs {
		if jobs[i].Candidates == nil {
			jobs[i].Candidates = []model.Candidate{}
		}
	}
	return model.ATSState{Jobs: jobs}, nil
}

// UploadAttachment writes the file to the public bucket.
func (r *RemoteStore) UploadAttachment(ctx context.Context, category AttachmentCategory, upload Upload) (model.FileReference, error) {
	key := storage.ObjectKey(string(category), upload.Name)
	ref, err := r.cloud.Upload(ctx, key, upload.Data, upload.Name)
	if err != nil {
		return model.FileReference{}, &AttachmentError{Name: upload.Name, Err: err}
	}
	return ref, nil
}

// IsNotFound reports whether err resolves a missing record in either variant.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
