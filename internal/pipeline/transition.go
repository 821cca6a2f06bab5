// Package pipeline owns candidate stage reassignment. The gesture layer
// (drag-drop or an explicit edit form) reduces to a plain
// (candidateID, drop target) command; everything after that happens here, so
// transitions are testable without any pointer simulation.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"TalentBoard-backend/internal/model"
)

// Mover issues the confirmed stage write. The core satisfies it.
type Mover interface {
	UpdateCandidate(ctx context.Context, jobID, candidateID uuid.UUID, patch model.CandidatePatch) error
}

// DropTarget is where a candidate card was released: either a stage column
// or another candidate's card, which stands in for that card's column.
type DropTarget struct {
	Stage       *model.Stage
	CandidateID *uuid.UUID
}

// Result describes the outcome of a move request. Moved is false for the
// idempotent no-op and for silently dropped requests.
type Result struct {
	Moved        bool        `json:"moved"`
	From         model.Stage `json:"from"`
	To           model.Stage `json:"to"`
	Confirmation string      `json:"confirmation,omitempty"`
}

// Controller validates and applies stage reassignment. Transitions are
// any-to-any; a candidate may go straight from Sourced to Hired.
type Controller struct {
	mover  Mover
	limits map[model.Stage]int
}

// NewController builds a Controller with the given WIP limits; nil limits
// fall back to DefaultWIPLimits.
func NewController(mover Mover, limits map[model.Stage]int) *Controller {
	if limits == nil {
		limits = DefaultWIPLimits()
	}
	return &Controller{mover: mover, limits: limits}
}

// ResolveTarget maps a drop target to a stage within the given job. Dropping
// onto a card resolves to that card's normalized stage. The second return is
// false when no stage can be resolved.
func ResolveTarget(job model.Job, target DropTarget) (model.Stage, bool) {
	if target.Stage != nil {
		if st, ok := model.ParseStage(string(*target.Stage)); ok {
			return st, true
		}
		return "", false
	}
	if target.CandidateID != nil {
		other := job.FindCandidate(*target.CandidateID)
		if other == nil {
			return "", false
		}
		return model.NormalizeStage(other.Stage), true
	}
	return "", false
}

// Move resolves the target and issues the stage write. Unresolvable requests
// (candidate deleted concurrently, no stage derivable from the target) are
// dropped without error or mutation. Moving a candidate onto its own current
// stage is a no-op.
func (c *Controller) Move(ctx context.Context, job model.Job, candidateID uuid.UUID, target DropTarget) (Result, error) {
	cand := job.FindCandidate(candidateID)
	if cand == nil {
		return Result{}, nil
	}
	to, ok := ResolveTarget(job, target)
	if !ok {
		return Result{}, nil
	}

	from := model.NormalizeStage(cand.Stage)
	if from == to {
		return Result{From: from, To: to}, nil
	}

	stage := to
	if err := c.mover.UpdateCandidate(ctx, job.ID, candidateID, model.CandidatePatch{Stage: &stage}); err != nil {
		return Result{}, err
	}

	return Result{
		Moved:        true,
		From:         from,
		To:           to,
		Confirmation: fmt.Sprintf("%s moved to %s", cand.Name, to),
	}, nil
}
