// Package core wires the persistence adapter to the canonical store. Every
// CRUD helper calls the active adapter first and feeds the confirmed result
// into the matching apply method; on failure the canonical store stays
// untouched and the error surfaces once at the operation boundary.
package core

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"TalentBoard-backend/internal/filter"
	"TalentBoard-backend/internal/model"
	"TalentBoard-backend/internal/pipeline"
	"TalentBoard-backend/internal/state"
	"TalentBoard-backend/internal/storage"
	"TalentBoard-backend/internal/store"
)

// Core owns the active adapter, the canonical store and the session's view
// presets. The adapter swaps as a unit on backend switch; no call site ever
// branches on the variant inline.
type Core struct {
	mu      sync.RWMutex
	adapter store.Adapter

	local  *store.LocalStore
	remote *store.RemoteStore

	store       *state.CanonicalStore
	presets     *filter.PresetStore
	transitions *pipeline.Controller
	attachments *storage.SessionStore
}

// New builds the core with the local variant active. remote may be nil when
// the remote backend is not configured; SwitchBackend then refuses "remote".
func New(local *store.LocalStore, remote *store.RemoteStore, attachments *storage.SessionStore) *Core {
	initial, _ := local.LoadAll(context.Background())
	c := &Core{
		adapter:     local,
		local:       local,
		remote:      remote,
		store:       state.NewCanonicalStore(initial),
		presets:     filter.NewPresetStore(),
		attachments: attachments,
	}
	c.transitions = pipeline.NewController(c, nil)
	return c
}

// Adapter returns the active persistence variant.
func (c *Core) Adapter() store.Adapter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.adapter
}

// Mode names the active variant.
func (c *Core) Mode() string { return c.Adapter().Name() }

// RemoteConfigured reports whether a backend switch to remote is possible.
func (c *Core) RemoteConfigured() bool { return c.remote != nil }

// State returns a snapshot of the canonical model.
func (c *Core) State() model.ATSState { return c.store.Snapshot() }

// Presets exposes the session's view presets.
func (c *Core) Presets() *filter.PresetStore { return c.presets }

// Transitions exposes the stage transition controller.
func (c *Core) Transitions() *pipeline.Controller { return c.transitions }

// Attachments exposes the session attachment store behind local:// handles.
func (c *Core) Attachments() *storage.SessionStore { return c.attachments }

// SelectJob moves the board selection.
func (c *Core) SelectJob(id uuid.UUID) { c.store.SelectJob(id) }

// SwitchBackend activates the named variant and replaces the canonical
// snapshot wholesale with that backend's state. There is no merge with
// whatever was shown before.
func (c *Core) SwitchBackend(ctx context.Context, mode string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var next store.Adapter
	switch mode {
	case "local":
		next = c.local
	case "remote":
		if c.remote == nil {
			return &store.ValidationError{Field: "mode", Reason: "remote backend is not configured"}
		}
		next = c.remote
	default:
		return &store.ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown backend %q", mode)}
	}

	loaded, err := next.LoadAll(ctx)
	if err != nil {
		return err
	}
	c.adapter = next
	c.store.Replace(loaded)
	log.Printf("persistence backend switched to %s", mode)
	return nil
}

// CreateJob validates, persists and publishes a new job.
func (c *Core) CreateJob(ctx context.Context, fields model.EditableJobInfo, jd *store.Upload) (model.Job, error) {
	if fields.Title == "" {
		return model.Job{}, &store.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	job, err := c.Adapter().CreateJob(ctx, fields, jd)
	if err != nil {
		return model.Job{}, err
	}
	c.store.ApplyJobCreated(job)
	return job, nil
}

// UpdateJob persists a partial job update, then mirrors it into the
// canonical store.
func (c *Core) UpdateJob(ctx context.Context, id uuid.UUID, patch model.JobPatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return &store.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	if err := c.Adapter().UpdateJob(ctx, id, patch); err != nil {
		return err
	}
	c.store.ApplyJobUpdated(id, patch)
	return nil
}

// DeleteJob removes a job and cascades its candidates out of the view.
func (c *Core) DeleteJob(ctx context.Context, id uuid.UUID) error {
	if err := c.Adapter().DeleteJob(ctx, id); err != nil {
		return err
	}
	c.store.ApplyJobDeleted(id)
	return nil
}

// CreateCandidate validates, persists and publishes a new candidate. An
// externally supplied stage outside the enumeration is normalized to Sourced
// before anything trusts it.
func (c *Core) CreateCandidate(ctx context.Context, jobID uuid.UUID, fields model.EditableCandidateInfo, resume *store.Upload) (model.Candidate, error) {
	if fields.Name == "" {
		return model.Candidate{}, &store.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if fields.Score != nil && (*fields.Score < 0 || *fields.Score > 100) {
		return model.Candidate{}, &store.ValidationError{Field: "score", Reason: "must be between 0 and 100"}
	}
	fields.Stage = model.NormalizeStage(fields.Stage)

	cand, err := c.Adapter().CreateCandidate(ctx, jobID, fields, resume)
	if err != nil {
		return model.Candidate{}, err
	}
	c.store.ApplyCandidateCreated(jobID, cand)
	return cand, nil
}

// UpdateCandidate persists a partial candidate update, then mirrors it into
// the canonical store.
func (c *Core) UpdateCandidate(ctx context.Context, jobID, candidateID uuid.UUID, patch model.CandidatePatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return &store.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if patch.Stage != nil {
		st := model.NormalizeStage(*patch.Stage)
		patch.Stage = &st
	}
	if patch.Score != nil && (*patch.Score < 0 || *patch.Score > 100) {
		return &store.ValidationError{Field: "score", Reason: "must be between 0 and 100"}
	}

	if err := c.Adapter().UpdateCandidate(ctx, jobID, candidateID, patch); err != nil {
		return err
	}
	c.store.ApplyCandidateUpdated(jobID, candidateID, patch)
	return nil
}

// DeleteCandidate removes one candidate.
func (c *Core) DeleteCandidate(ctx context.Context, jobID, candidateID uuid.UUID) error {
	if err := c.Adapter().DeleteCandidate(ctx, jobID, candidateID); err != nil {
		return err
	}
	c.store.ApplyCandidateDeleted(jobID, candidateID)
	return nil
}

// MoveCandidate runs a stage reassignment request against the selected
// snapshot of the job.
func (c *Core) MoveCandidate(ctx context.Context, jobID, candidateID uuid.UUID, target pipeline.DropTarget) (pipeline.Result, error) {
	snap := c.store.Snapshot()
	job := snap.FindJob(jobID)
	if job == nil {
		// Job gone; request is silently dropped like any unresolvable target.
		return pipeline.Result{}, nil
	}
	return c.transitions.Move(ctx, *job, candidateID, target)
}
