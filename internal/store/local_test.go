package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TalentBoard-backend/internal/model"
	"TalentBoard-backend/internal/storage"
)

func newLocal(t *testing.T) (*LocalStore, string) {
	t.Helper()
	dir := t.TempDir()
	return OpenLocal(dir, storage.NewSessionStore()), dir
}

func TestOpenLocal_seedsWhenNoSnapshot(t *testing.T) {
	s, _ := newLocal(t)

	state, err := s.LoadAll(context.Background())
	require.NoError(t, err)

	require.Len(t, state.Jobs, 1)
	assert.Equal(t, "Frontend Engineer", state.Jobs[0].Title)
	assert.Len(t, state.Jobs[0].Candidates, 3)
}

func TestOpenLocal_seedsWhenSnapshotUnreadable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotFile), []byte("{broken"), 0o644))

	s := OpenLocal(dir, storage.NewSessionStore())

	state, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, state.Jobs, 1)
	assert.Equal(t, "Frontend Engineer", state.Jobs[0].Title)
}

func TestLocalStore_mutationsSurviveReopen(t *testing.T) {
	s, dir := newLocal(t)
	ctx := context.Background()

	job, err := s.CreateJob(ctx, model.EditableJobInfo{Title: "Backend Engineer"}, nil)
	require.NoError(t, err)

	cand, err := s.CreateCandidate(ctx, job.ID, model.EditableCandidateInfo{
		Name:  "Sofia Marin",
		Stage: model.StageSourced,
	}, nil)
	require.NoError(t, err)

	stage := model.StageInterviewFirst
	require.NoError(t, s.UpdateCandidate(ctx, job.ID, cand.ID, model.CandidatePatch{Stage: &stage}))

	reopened := OpenLocal(dir, storage.NewSessionStore())
	state, err := reopened.LoadAll(ctx)
	require.NoError(t, err)

	got := state.FindJob(job.ID)
	require.NotNil(t, got)
	require.Len(t, got.Candidates, 1)
	assert.Equal(t, "Sofia Marin", got.Candidates[0].Name)
	assert.Equal(t, model.StageInterviewFirst, got.Candidates[0].Stage)
}

func TestLocalStore_deleteJobCascades(t *testing.T) {
	s, _ := newLocal(t)
	ctx := context.Background()

	job, err := s.CreateJob(ctx, model.EditableJobInfo{Title: "Backend Engineer"}, nil)
	require.NoError(t, err)
	_, err = s.CreateCandidate(ctx, job.ID, model.EditableCandidateInfo{Name: "Sofia Marin", Stage: model.StageSourced}, nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteJob(ctx, job.ID))

	state, err := s.LoadAll(ctx)
	require.NoError(t, err)
	assert.Nil(t, state.FindJob(job.ID))
}

func TestLocalStore_missingTargetsReturnNotFound(t *testing.T) {
	s, _ := newLocal(t)
	ctx := context.Background()
	ghost := uuid.New()

	assert.ErrorIs(t, s.UpdateJob(ctx, ghost, model.JobPatch{}), ErrNotFound)
	assert.ErrorIs(t, s.DeleteJob(ctx, ghost), ErrNotFound)
	assert.ErrorIs(t, s.UpdateCandidate(ctx, ghost, ghost, model.CandidatePatch{}), ErrNotFound)
	assert.ErrorIs(t, s.DeleteCandidate(ctx, ghost, ghost), ErrNotFound)
	_, err := s.CreateCandidate(ctx, ghost, model.EditableCandidateInfo{Name: "X"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_attachmentsAreSessionScoped(t *testing.T) {
	attachments := storage.NewSessionStore()
	s := OpenLocal(t.TempDir(), attachments)
	ctx := context.Background()

	ref, err := s.UploadAttachment(ctx, CategoryResume, Upload{Name: "John_Doe.pdf", Data: []byte("%PDF")})
	require.NoError(t, err)

	assert.Equal(t, "John_Doe.pdf", ref.Name)
	assert.True(t, strings.HasPrefix(ref.URL, "local://"))

	data, ok := attachments.Get(ref.URL)
	require.True(t, ok)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestLocalStore_createCandidateNormalizesNilTags(t *testing.T) {
	s, _ := newLocal(t)
	job, err := s.CreateJob(context.Background(), model.EditableJobInfo{Title: "Backend Engineer"}, nil)
	require.NoError(t, err)

	cand, err := s.CreateCandidate(context.Background(), job.ID, model.EditableCandidateInfo{Name: "Sofia Marin"}, nil)
	require.NoError(t, err)

	assert.NotNil(t, cand.Tags)
	assert.Empty(t, cand.Tags)
}

func TestLocalStore_replaceAllSwapsState(t *testing.T) {
	s, dir := newLocal(t)

	s.ReplaceAll(model.ATSState{Jobs: []model.Job{}})

	state, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Jobs)

	reopened := OpenLocal(dir, storage.NewSessionStore())
	state, err = reopened.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Jobs)
}
