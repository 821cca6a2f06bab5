// Package state holds the canonical in-memory board snapshot. The
// CanonicalStore is the single authority over it: every change flows through
// one of the enumerated apply methods and readers only ever see copies.
package state

import (
	"sync"

	"github.com/google/uuid"

	"TalentBoard-backend/internal/model"
)

// CanonicalStore owns the current ATSState. Gin handlers run concurrently,
// so the snapshot sits behind an RWMutex; each apply is an atomic
// replace-and-publish.
type CanonicalStore struct {
	mu    sync.RWMutex
	state model.ATSState
}

// NewCanonicalStore seeds the store and normalizes the initial selection.
func NewCanonicalStore(initial model.ATSState) *CanonicalStore {
	s := &CanonicalStore{state: initial.Clone()}
	s.ensureSelection()
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *CanonicalStore) Snapshot() model.ATSState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// SelectedJob returns a copy of the currently selected job, if any.
func (s *CanonicalStore) SelectedJob() (model.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.SelectedJobID == nil {
		return model.Job{}, false
	}
	job := s.state.FindJob(*s.state.SelectedJobID)
	if job == nil {
		return model.Job{}, false
	}
	return job.Clone(), true
}

// Replace swaps the whole snapshot, e.g. after a backend switch or import.
func (s *CanonicalStore) Replace(next model.ATSState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = next.Clone()
	s.ensureSelection()
}

// SelectJob moves the selection; unknown ids are ignored.
func (s *CanonicalStore) SelectJob(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.FindJob(id) == nil {
		return
	}
	v := id
	s.state.SelectedJobID = &v
}

// ApplyJobCreated appends the confirmed job.
func (s *CanonicalStore) ApplyJobCreated(job model.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Jobs = append(s.state.Jobs, job.Clone())
	s.ensureSelection()
}

// ApplyJobUpdated merges a confirmed patch. A job deleted while the write
// was in flight is silently ignored.
func (s *CanonicalStore) ApplyJobUpdated(id uuid.UUID, patch model.JobPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.state.FindJob(id)
	if job == nil {
		return
	}
	patch.ApplyTo(job)
}

// ApplyJobDeleted drops the job, cascading its candidates out of the view,
// and reselects if the deleted job was selected.
func (s *CanonicalStore) ApplyJobDeleted(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	jobs := s.state.Jobs[:0]
	for _, j := range s.state.Jobs {
		if j.ID != id {
			jobs = append(jobs, j)
		}
	}
	s.state.Jobs = jobs
	s.ensureSelection()
}

// ApplyCandidateCreated appends the confirmed candidate to its job; if the
// job vanished mid-flight the result is discarded.
func (s *CanonicalStore) ApplyCandidateCreated(jobID uuid.UUID, cand model.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.state.FindJob(jobID)
	if job == nil {
		return
	}
	job.Candidates = append(job.Candidates, cand.Clone())
}

// ApplyCandidateUpdated merges a confirmed patch into the candidate; stale
// targets are discarded silently.
func (s *CanonicalStore) ApplyCandidateUpdated(jobID, candidateID uuid.UUID, patch model.CandidatePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.state.FindJob(jobID)
	if job == nil {
		return
	}
	cand := job.FindCandidate(candidateID)
	if cand == nil {
		return
	}
	patch.ApplyTo(cand)
}

// ApplyCandidateDeleted drops the candidate from its job's pipeline.
func (s *CanonicalStore) ApplyCandidateDeleted(jobID, candidateID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.state.FindJob(jobID)
	if job == nil {
		return
	}
	cands := job.Candidates[:0]
	for _, c := range job.Candidates {
		if c.ID != candidateID {
			cands = append(cands, c)
		}
	}
	job.Candidates = cands
}

// ensureSelection enforces the selection invariant: a non-empty board always
// has a valid selection, an empty one has none. Caller holds the lock.
func (s *CanonicalStore) ensureSelection() {
	if len(s.state.Jobs) == 0 {
		s.state.SelectedJobID = nil
		return
	}
	if s.state.SelectedJobID != nil && s.state.FindJob(*s.state.SelectedJobID) != nil {
		return
	}
	first := s.state.Jobs[0].ID
	s.state.SelectedJobID = &first
}
