package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TalentBoard-backend/internal/model"
)

// recordingMover captures the stage writes a move produces.
type recordingMover struct {
	calls []model.CandidatePatch
	err   error
}

func (m *recordingMover) UpdateCandidate(_ context.Context, _, _ uuid.UUID, patch model.CandidatePatch) error {
	if m.err != nil {
		return m.err
	}
	m.calls = append(m.calls, patch)
	return nil
}

func pipelineJob() model.Job {
	job := model.Job{
		ID:              uuid.New(),
		EditableJobInfo: model.EditableJobInfo{Title: "Frontend Engineer"},
	}
	job.Candidates = []model.Candidate{
		{ID: uuid.New(), JobID: job.ID, EditableCandidateInfo: model.EditableCandidateInfo{Name: "Rohit Verma", Stage: model.StageSourced}},
		{ID: uuid.New(), JobID: job.ID, EditableCandidateInfo: model.EditableCandidateInfo{Name: "Ananya Iyer", Stage: model.StageInterviewFirst}},
	}
	return job
}

func stagePtr(s model.Stage) *model.Stage { return &s }

func TestMove_directToHired(t *testing.T) {
	mover := &recordingMover{}
	ctrl := NewController(mover, nil)
	job := pipelineJob()

	res, err := ctrl.Move(context.Background(), job, job.Candidates[0].ID, DropTarget{Stage: stagePtr(model.StageHired)})
	require.NoError(t, err)

	assert.True(t, res.Moved)
	assert.Equal(t, model.StageSourced, res.From)
	assert.Equal(t, model.StageHired, res.To)
	assert.Equal(t, "Rohit Verma moved to Hired", res.Confirmation)
	require.Len(t, mover.calls, 1)
	assert.Equal(t, model.StageHired, *mover.calls[0].Stage)
}

func TestMove_sameStageIsNoOp(t *testing.T) {
	mover := &recordingMover{}
	ctrl := NewController(mover, nil)
	job := pipelineJob()

	res, err := ctrl.Move(context.Background(), job, job.Candidates[0].ID, DropTarget{Stage: stagePtr(model.StageSourced)})
	require.NoError(t, err)

	assert.False(t, res.Moved)
	assert.Equal(t, model.StageSourced, res.From)
	assert.Equal(t, model.StageSourced, res.To)
	assert.Empty(t, res.Confirmation)
	assert.Empty(t, mover.calls)
}

func TestMove_dropOntoCardResolvesToItsStage(t *testing.T) {
	mover := &recordingMover{}
	ctrl := NewController(mover, nil)
	job := pipelineJob()

	res, err := ctrl.Move(context.Background(), job, job.Candidates[0].ID, DropTarget{CandidateID: &job.Candidates[1].ID})
	require.NoError(t, err)

	assert.True(t, res.Moved)
	assert.Equal(t, model.StageInterviewFirst, res.To)
}

func TestMove_missingCandidateIsSilentlyDropped(t *testing.T) {
	mover := &recordingMover{}
	ctrl := NewController(mover, nil)
	job := pipelineJob()

	res, err := ctrl.Move(context.Background(), job, uuid.New(), DropTarget{Stage: stagePtr(model.StageHired)})
	require.NoError(t, err)

	assert.False(t, res.Moved)
	assert.Empty(t, mover.calls)
}

func TestMove_unresolvableTargetIsSilentlyDropped(t *testing.T) {
	mover := &recordingMover{}
	ctrl := NewController(mover, nil)
	job := pipelineJob()

	ghost := uuid.New()
	for name, target := range map[string]DropTarget{
		"empty target":  {},
		"unknown card":  {CandidateID: &ghost},
		"unknown stage": {Stage: stagePtr(model.Stage("Limbo"))},
	} {
		res, err := ctrl.Move(context.Background(), job, job.Candidates[0].ID, target)
		require.NoError(t, err, name)
		assert.False(t, res.Moved, name)
	}
	assert.Empty(t, mover.calls)
}

func TestResolveTarget_normalizesUnknownCardStage(t *testing.T) {
	job := pipelineJob()
	job.Candidates[1].Stage = model.Stage("Imported:Legacy")

	stage, ok := ResolveTarget(job, DropTarget{CandidateID: &job.Candidates[1].ID})
	require.True(t, ok)
	assert.Equal(t, model.StageSourced, stage)
}

func TestEvaluate_flagsOverLimitStages(t *testing.T) {
	ctrl := NewController(&recordingMover{}, map[model.Stage]int{
		model.StageSourced:        2,
		model.StageInterviewFirst: 1,
	})

	grouped := map[model.Stage][]model.Candidate{
		model.StageSourced: {
			{EditableCandidateInfo: model.EditableCandidateInfo{Name: "A"}},
			{EditableCandidateInfo: model.EditableCandidateInfo{Name: "B"}},
			{EditableCandidateInfo: model.EditableCandidateInfo{Name: "C"}},
		},
		model.StageInterviewFirst: {
			{EditableCandidateInfo: model.EditableCandidateInfo{Name: "D"}},
		},
		model.StageHired: {
			{EditableCandidateInfo: model.EditableCandidateInfo{Name: "E"}},
		},
	}

	advisories := ctrl.Evaluate(grouped)
	require.Len(t, advisories, 1)
	assert.Equal(t, model.StageSourced, advisories[0].Stage)
	assert.Equal(t, 3, advisories[0].Count)
	assert.Equal(t, 2, advisories[0].Limit)
}

func TestDefaultWIPLimits_envOverride(t *testing.T) {
	t.Setenv("WIP_LIMITS", "Sourced=3,Interview:Final=1,Hired=9,bogus")

	limits := DefaultWIPLimits()
	assert.Equal(t, 3, limits[model.StageSourced])
	assert.Equal(t, 1, limits[model.StageInterviewFinal])
	// Terminal stages never carry a cap.
	_, capped := limits[model.StageHired]
	assert.False(t, capped)
}
