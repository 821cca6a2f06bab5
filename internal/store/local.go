package store

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"TalentBoard-backend/internal/model"
	"TalentBoard-backend/internal/storage"
)

// SnapshotFile is the fixed identifier the local variant persists under.
const SnapshotFile = "ats-snapshot.json"

// LocalStore is the always-available persistence variant. Every mutation
// succeeds, is applied to the in-memory state and durably snapshotted as one
// JSON document. Attachment uploads synthesize session-scoped handles.
type LocalStore struct {
	mu          sync.Mutex
	state       model.ATSState
	path        string
	attachments *storage.SessionStore
}

// OpenLocal loads the snapshot at dir/SnapshotFile, falling back to the
// built-in seed state when the file is absent or unparseable.
func OpenLocal(dir string, attachments *storage.SessionStore) *LocalStore {
	s := &LocalStore{
		path:        filepath.Join(dir, SnapshotFile),
		attachments: attachments,
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.state = model.SeedState()
		return s
	}
	var loaded model.ATSState
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("snapshot unreadable, falling back to seed state: %v", err)
		s.state = model.SeedState()
		return s
	}
	s.state = loaded
	return s
}

// Name identifies the variant.
func (s *LocalStore) Name() string { return "local" }

// persist writes the full state document. Write goes to a temp file first so
// a crash never leaves a truncated snapshot behind.
func (s *LocalStore) persist() {
	data, err := json.Marshal(s.state)
	if err != nil {
		log.Printf("failed to encode snapshot: %v", err)
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Printf("failed to write snapshot: %v", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		log.Printf("failed to replace snapshot: %v", err)
	}
}

// CreateJob appends a new job and snapshots.
func (s *LocalStore) CreateJob(_ context.Context, fields model.EditableJobInfo, jd *Upload) (model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := model.Job{
		ID:              uuid.New(),
		EditableJobInfo: fields,
		CreatedAt:       time.Now(),
		Candidates:      []model.Candidate{},
	}
	if jd != nil {
		ref := s.attachments.Put(string(CategoryJobDescription), jd.Name, jd.Data)
		job.JD = &ref
	}

	s.state.Jobs = append(s.state.Jobs, job)
	s.persist()
	return job.Clone(), nil
}

// UpdateJob merges the patch into the stored job.
func (s *LocalStore) UpdateJob(_ context.Context, id uuid.UUID, patch model.JobPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.state.FindJob(id)
	if job == nil {
		return ErrNotFound
	}
	patch.ApplyTo(job)
	s.persist()
	return nil
}

// DeleteJob removes the job and, by containment, every candidate it holds.
func (s *LocalStore) DeleteJob(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := s.state.Jobs[:0]
	found := false
	for _, j := range s.state.Jobs {
		if j.ID == id {
			found = true
			continue
		}
		jobs = append(jobs, j)
	}
	if !found {
		return ErrNotFound
	}
	s.state.Jobs = jobs
	s.persist()
	return nil
}

// CreateCandidate appends a candidate to the job's pipeline in stage order of
// insertion.
func (s *LocalStore) CreateCandidate(_ context.Context, jobID uuid.UUID, fields model.EditableCandidateInfo, resume *Upload) (model.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.state.FindJob(jobID)
	if job == nil {
		return model.Candidate{}, ErrNotFound
	}

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
		ref := s.attachments.Put(string(CategoryResume), resume.Name, resume.Data)
		cand.Resume = &ref
	}

	job.Candidates = append(job.Candidates, cand)
	s.persist()
	return cand.Clone(), nil
}

// UpdateCandidate merges the patch into the stored candidate.
func (s *LocalStore) UpdateCandidate(_ context.Context, jobID, candidateID uuid.UUID, patch model.CandidatePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.state.FindJob(jobID)
	if job == nil {
		return ErrNotFound
	}
	cand := job.FindCandidate(candidateID)
	if cand == nil {
		return ErrNotFound
	}
	patch.ApplyTo(cand)
	s.persist()
	return nil
}

// DeleteCandidate removes one candidate from the job's pipeline.
func (s *LocalStore) DeleteCandidate(_ context.Context, jobID, candidateID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.state.FindJob(jobID)
	if job == nil {
		return ErrNotFound
	}
	cands := job.Candidates[:0]
	found := false
	for _, c := range job.Candidates {
		if c.ID == candidateID {
			found = true
			continue
		}
		cands = append(cands, c)
	}
	if !found {
		return ErrNotFound
	}
	job.Candidates = cands
	s.persist()
	return nil
}

// LoadAll returns a copy of the current local state.
func (s *LocalStore) LoadAll(_ context.Context) (model.ATSState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone(), nil
}

// UploadAttachment stores the file in the session store and returns its
// transient handle.
func (s *LocalStore) UploadAttachment(_ context.Context, category AttachmentCategory, upload Upload) (model.FileReference, error) {
	return s.attachments.Put(string(category), upload.Name, upload.Data), nil
}

// ReplaceAll swaps the whole state for an imported document and snapshots it.
func (s *LocalStore) ReplaceAll(state model.ATSState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
	s.persist()
}
