package core

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TalentBoard-backend/internal/filter"
	"TalentBoard-backend/internal/model"
	"TalentBoard-backend/internal/pipeline"
	"TalentBoard-backend/internal/storage"
	"TalentBoard-backend/internal/store"
)

// newLocalCore builds a core over a fresh local store seeded with the demo
// board, remote unconfigured.
func newLocalCore(t *testing.T) *Core {
	t.Helper()
	attachments := storage.NewSessionStore()
	local := store.OpenLocal(t.TempDir(), attachments)
	return New(local, nil, attachments)
}

func selectedJob(t *testing.T, c *Core) model.Job {
	t.Helper()
	snap := c.State()
	require.NotNil(t, snap.SelectedJobID)
	job := snap.FindJob(*snap.SelectedJobID)
	require.NotNil(t, job)
	return *job
}

func TestNew_startsLocalWithSeededSelection(t *testing.T) {
	c := newLocalCore(t)

	assert.Equal(t, "local", c.Mode())
	assert.False(t, c.RemoteConfigured())
	assert.Equal(t, "Frontend Engineer", selectedJob(t, c).Title)
}

func TestCreateJob_publishesToCanonicalState(t *testing.T) {
	c := newLocalCore(t)

	job, err := c.CreateJob(context.Background(), model.EditableJobInfo{Title: "Backend Engineer"}, nil)
	require.NoError(t, err)

	snap := c.State()
	assert.NotNil(t, snap.FindJob(job.ID))
	// First job stays selected.
	assert.NotEqual(t, job.ID, *snap.SelectedJobID)
}

func TestCreateJob_rejectsEmptyTitle(t *testing.T) {
	c := newLocalCore(t)

	_, err := c.CreateJob(context.Background(), model.EditableJobInfo{}, nil)

	var v *store.ValidationError
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "title", v.Field)
	assert.Len(t, c.State().Jobs, 1)
}

func TestCreateCandidate_normalizesUnknownStage(t *testing.T) {
	c := newLocalCore(t)
	job := selectedJob(t, c)

	cand, err := c.CreateCandidate(context.Background(), job.ID, model.EditableCandidateInfo{
		Name:  "Priya Sharma",
		Stage: model.Stage("Phone Screen"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, model.StageSourced, cand.Stage)
	snap := c.State()
	got := snap.FindJob(job.ID).FindCandidate(cand.ID)
	require.NotNil(t, got)
	assert.Equal(t, model.StageSourced, got.Stage)
}

func TestCreateCandidate_rejectsOutOfRangeScore(t *testing.T) {
	c := newLocalCore(t)
	job := selectedJob(t, c)

	score := 150
	_, err := c.CreateCandidate(context.Background(), job.ID, model.EditableCandidateInfo{
		Name:  "Priya Sharma",
		Score: &score,
	}, nil)

	var v *store.ValidationError
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "score", v.Field)
	// Nothing was persisted or published.
	snap := c.State()
	assert.Len(t, snap.FindJob(job.ID).Candidates, 3)
}

func TestUpdateCandidate_rejectsOutOfRangeScore(t *testing.T) {
	c := newLocalCore(t)
	job := selectedJob(t, c)
	cand := job.Candidates[0]

	score := 101
	err := c.UpdateCandidate(context.Background(), job.ID, cand.ID, model.CandidatePatch{Score: &score})

	var v *store.ValidationError
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "score", v.Field)
}

func TestDeleteJob_reselectsAndCascades(t *testing.T) {
	c := newLocalCore(t)
	first := selectedJob(t, c)
	second, err := c.CreateJob(context.Background(), model.EditableJobInfo{Title: "Backend Engineer"}, nil)
	require.NoError(t, err)

	require.NoError(t, c.DeleteJob(context.Background(), first.ID))

	snap := c.State()
	require.NotNil(t, snap.SelectedJobID)
	assert.Equal(t, second.ID, *snap.SelectedJobID)
	assert.Nil(t, snap.FindJob(first.ID))
}

func TestMoveCandidate_updatesStageThroughAdapter(t *testing.T) {
	c := newLocalCore(t)
	job := selectedJob(t, c)
	cand := job.Candidates[0] // Rohit Verma, Sourced

	hired := model.StageHired
	res, err := c.MoveCandidate(context.Background(), job.ID, cand.ID, pipeline.DropTarget{Stage: &hired})
	require.NoError(t, err)

	assert.True(t, res.Moved)
	assert.Equal(t, "Rohit Verma moved to Hired", res.Confirmation)
	snap := c.State()
	got := snap.FindJob(job.ID).FindCandidate(cand.ID)
	require.NotNil(t, got)
	assert.Equal(t, model.StageHired, got.Stage)
}

func TestMoveCandidate_missingJobIsSilentlyDropped(t *testing.T) {
	c := newLocalCore(t)
	hired := model.StageHired

	res, err := c.MoveCandidate(context.Background(), uuid.New(), uuid.New(), pipeline.DropTarget{Stage: &hired})
	require.NoError(t, err)
	assert.False(t, res.Moved)
}

func TestSwitchBackend_refusesUnconfiguredRemote(t *testing.T) {
	c := newLocalCore(t)

	err := c.SwitchBackend(context.Background(), "remote")

	var v *store.ValidationError
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "local", c.Mode())

	err = c.SwitchBackend(context.Background(), "s3")
	require.True(t, errors.As(err, &v))
}

func TestSwitchBackend_localReloadsSnapshot(t *testing.T) {
	c := newLocalCore(t)

	require.NoError(t, c.SwitchBackend(context.Background(), "local"))
	assert.Equal(t, "local", c.Mode())
	assert.Len(t, c.State().Jobs, 1)
}

func TestBoard_buildsAllColumnsWithFilters(t *testing.T) {
	c := newLocalCore(t)

	view := c.Board("", filter.Filters{Tags: []string{"react"}})

	require.NotNil(t, view.Job)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 2, view.Filtered)
	assert.Len(t, view.Columns, len(model.StageOrder))
	assert.Len(t, view.Columns[model.StageSourced], 1)
	assert.Len(t, view.Columns[model.StageInterviewFirst], 1)
	assert.Empty(t, view.Columns[model.StageHired])
}

func TestBoard_emptyBoardIsNotAnError(t *testing.T) {
	c := newLocalCore(t)
	require.NoError(t, c.ImportState([]byte(`{"jobs": [], "selectedJobId": null}`)))

	view := c.Board("", filter.Filters{})

	assert.Nil(t, view.Job)
	assert.Zero(t, view.Total)
	assert.Len(t, view.Columns, len(model.StageOrder))
}

func TestBulkIntake_namesFromFilenamesAndContinuesOnFailure(t *testing.T) {
	c := newLocalCore(t)
	job := selectedJob(t, c)

	results := c.BulkIntake(context.Background(), job.ID, []store.Upload{
		{Name: "John_Doe_2.pdf", Data: []byte("%PDF")},
		{Name: "", Data: []byte("%PDF")},
	})

	require.Len(t, results, 2)
	require.NotNil(t, results[0].Candidate)
	assert.Equal(t, "John Doe", results[0].Candidate.Name)
	assert.Equal(t, model.StageSourced, results[0].Candidate.Stage)
	require.NotNil(t, results[1].Candidate)
	assert.Equal(t, "New Candidate", results[1].Candidate.Name)

	snap := c.State()
	got := snap.FindJob(job.ID)
	assert.Len(t, got.Candidates, 5)
}

func TestBulkIntake_missingJobRecordsErrors(t *testing.T) {
	c := newLocalCore(t)

	results := c.BulkIntake(context.Background(), uuid.New(), []store.Upload{
		{Name: "John_Doe.pdf", Data: []byte("%PDF")},
	})

	require.Len(t, results, 1)
	assert.Nil(t, results[0].Candidate)
	assert.NotEmpty(t, results[0].Error)
}

func TestImportState_rejectsMalformedDocument(t *testing.T) {
	c := newLocalCore(t)

	err := c.ImportState([]byte("{broken"))

	var p *store.ParseError
	require.True(t, errors.As(err, &p))
	// Failed import leaves the board untouched.
	assert.Len(t, c.State().Jobs, 1)
}

func TestExportCSV_projectsFilteredList(t *testing.T) {
	c := newLocalCore(t)

	out := string(c.ExportCSV("", filter.Filters{Tags: []string{"react"}}))

	assert.Contains(t, out, `"Rohit Verma"`)
	assert.Contains(t, out, `"Ananya Iyer"`)
	assert.NotContains(t, out, `"Marcus Lee"`)
}
