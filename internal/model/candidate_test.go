package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatePatch_applyLeavesNilFieldsUntouched(t *testing.T) {
	email := "rohit.verma@example.com"
	score := 72
	c := Candidate{
		ID: uuid.New(),
		EditableCandidateInfo: EditableCandidateInfo{
			Name:  "Rohit Verma",
			Email: &email,
			Tags:  pq.StringArray{"react"},
			Score: &score,
			Stage: StageSourced,
		},
	}

	stage := StageInterviewFirst
	tags := []string{"react", "typescript"}
	CandidatePatch{Stage: &stage, Tags: &tags}.ApplyTo(&c)

	assert.Equal(t, StageInterviewFirst, c.Stage)
	assert.Equal(t, pq.StringArray{"react", "typescript"}, c.Tags)
	assert.Equal(t, "Rohit Verma", c.Name)
	require.NotNil(t, c.Email)
	assert.Equal(t, email, *c.Email)
	require.NotNil(t, c.Score)
	assert.Equal(t, 72, *c.Score)
}

func TestCandidateClone_isDeep(t *testing.T) {
	notes := "solid systems background"
	c := Candidate{
		ID: uuid.New(),
		EditableCandidateInfo: EditableCandidateInfo{
			Name:  "Ananya Iyer",
			Tags:  pq.StringArray{"react", "css"},
			Notes: &notes,
			Stage: StageInterviewFirst,
		},
		Resume: &FileReference{Name: "ananya.pdf", URL: "local://resume/ananya.pdf"},
	}

	clone := c.Clone()
	clone.Tags[0] = "vue"
	*clone.Notes = "changed"
	clone.Resume.URL = "changed"

	assert.Equal(t, "react", c.Tags[0])
	assert.Equal(t, "solid systems background", *c.Notes)
	assert.Equal(t, "local://resume/ananya.pdf", c.Resume.URL)
}

func TestJobPatch_applyAndFindCandidate(t *testing.T) {
	jobID := uuid.New()
	cand := Candidate{
		ID:                    uuid.New(),
		JobID:                 jobID,
		EditableCandidateInfo: EditableCandidateInfo{Name: "Marcus Lee", Stage: StageInterviewSecond},
	}
	job := Job{
		ID:              jobID,
		EditableJobInfo: EditableJobInfo{Title: "Frontend Engineer"},
		Candidates:      []Candidate{cand},
	}

	dept := "Engineering"
	JobPatch{Department: &dept}.ApplyTo(&job)
	assert.Equal(t, "Frontend Engineer", job.Title)
	require.NotNil(t, job.Department)
	assert.Equal(t, "Engineering", *job.Department)

	require.NotNil(t, job.FindCandidate(cand.ID))
	assert.Nil(t, job.FindCandidate(uuid.New()))
}
