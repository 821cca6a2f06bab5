package model

import (
	"time"

	"github.com/google/uuid"
)

// Job is gorm model for a hiring pipeline and the JSON shape used by the
// local snapshot. Candidates are owned exclusively by their job; deleting a
// job cascades to them.
type Job struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;<-:create" json:"id"`

	EditableJobInfo

	CreatedAt  time.Time      `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP" json:"createdAt"`
	JD         *FileReference `gorm:"embedded;embeddedPrefix:jd_" json:"jd,omitempty"`
	Candidates []Candidate    `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"candidates"`
}

// EditableJobInfo groups the caller-settable job fields.
type EditableJobInfo struct {
	Title      string  `gorm:"type:text;not null" json:"title"`
	Department *string `gorm:"type:text" json:"department,omitempty"`
	Location   *string `gorm:"type:text" json:"location,omitempty"`
}

// JobPatch carries a partial job update. Nil fields are left untouched.
type JobPatch struct {
	Title      *string        `json:"title,omitempty"`
	Department *string        `json:"department,omitempty"`
	Location   *string        `json:"location,omitempty"`
	JD         *FileReference `json:"jd,omitempty"`
}

// ApplyTo merges the patch into a job record.
func (p JobPatch) ApplyTo(j *Job) {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Department != nil {
		j.Department = p.Department
	}
	if p.Location != nil {
		j.Location = p.Location
	}
	if p.JD != nil {
		j.JD = p.JD
	}
}

// FindCandidate returns a pointer into the job's candidate list, or nil.
func (j *Job) FindCandidate(id uuid.UUID) *Candidate {
	for i := range j.Candidates {
		if j.Candidates[i].ID == id {
			return &j.Candidates[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the job and its candidates.
func (j Job) Clone() Job {
	out := j
	if j.Department != nil {
		v := *j.Department
		out.Department = &v
	}
	if j.Location != nil {
		v := *j.Location
		out.Location = &v
	}
	if j.JD != nil {
		v := *j.JD
		out.JD = &v
	}
	out.Candidates = make([]Candidate, len(j.Candidates))
	for i, c := range j.Candidates {
		out.Candidates[i] = c.Clone()
	}
	return out
}
