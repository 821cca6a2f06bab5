package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MigrateAble lists every gorm model the remote schema carries.
var MigrateAble = []any{&Job{}, &Candidate{}}

// ATSState is the full board snapshot: every job plus the current selection.
// If jobs is non-empty the selection always resolves to one of them; if jobs
// is empty the selection is null. The canonical store enforces this.
type ATSState struct {
	Jobs          []Job      `json:"jobs"`
	SelectedJobID *uuid.UUID `json:"selectedJobId"`
}

// FindJob returns a pointer into the state's job list, or nil.
func (s *ATSState) FindJob(id uuid.UUID) *Job {
	for i := range s.Jobs {
		if s.Jobs[i].ID == id {
			return &s.Jobs[i]
		}
	}
	return nil
}

// Clone returns a deep copy safe to hand to readers.
func (s ATSState) Clone() ATSState {
	out := ATSState{Jobs: make([]Job, len(s.Jobs))}
	for i, j := range s.Jobs {
		out.Jobs[i] = j.Clone()
	}
	if s.SelectedJobID != nil {
		v := *s.SelectedJobID
		out.SelectedJobID = &v
	}
	return out
}

// SeedState builds the demo board used when no local snapshot exists or the
// stored one cannot be parsed: one job with three candidates spread over the
// first three pipeline stages.
func SeedState() ATSState {
	now := time.Now()
	jobID := uuid.New()
	loc := "Remote (IST)"
	dept := "Engineering"
	email1, email2, email3 := "rohit.verma@example.com", "ananya.iyer@example.com", "marcus.lee@example.com"
	score2 := 72

	job := Job{
		ID: jobID,
		EditableJobInfo: EditableJobInfo{
			Title:      "Frontend Engineer",
			Department: &dept,
			Location:   &loc,
		},
		CreatedAt: now,
		Candidates: []Candidate{
			{
				ID:    uuid.New(),
				JobID: jobID,
				EditableCandidateInfo: EditableCandidateInfo{
					Name:  "Rohit Verma",
					Email: &email1,
					Tags:  pq.StringArray{"react", "typescript"},
					Stage: StageSourced,
				},
				AppliedAt: now.AddDate(0, 0, -7),
			},
			{
				ID:    uuid.New(),
				JobID: jobID,
				EditableCandidateInfo: EditableCandidateInfo{
					Name:  "Ananya Iyer",
					Email: &email2,
					Tags:  pq.StringArray{"react", "css"},
					Score: &score2,
					Stage: StageInterviewFirst,
				},
				AppliedAt: now.AddDate(0, 0, -5),
			},
			{
				ID:    uuid.New(),
				JobID: jobID,
				EditableCandidateInfo: EditableCandidateInfo{
					Name:  "Marcus Lee",
					Email: &email3,
					Tags:  pq.StringArray{"javascript", "node"},
					Stage: StageInterviewSecond,
				},
				AppliedAt: now.AddDate(0, 0, -3),
			},
		},
	}

	selected := jobID
	return ATSState{Jobs: []Job{job}, SelectedJobID: &selected}
}
