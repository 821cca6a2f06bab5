package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Candidate is a single applicant inside a job's pipeline. A candidate
// belongs to exactly one job; ownership is by containment.
type Candidate struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;<-:create" json:"id"`
	JobID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"-"`

	EditableCandidateInfo

	Resume    *FileReference `gorm:"embedded;embeddedPrefix:resume_" json:"resume,omitempty"`
	AppliedAt time.Time      `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP" json:"appliedAt"`
}

// EditableCandidateInfo groups the fields a caller may set on create or
// partial update. Tags are stored case-sensitively; matching against them is
// case-insensitive.
type EditableCandidateInfo struct {
	Name  string         `gorm:"type:text;not null" json:"name"`
	Email *string        `gorm:"type:text" json:"email,omitempty"`
	Phone *string        `gorm:"type:text" json:"phone,omitempty"`
	Tags  pq.StringArray `gorm:"type:text[];default:'{}'" json:"tags"`
	Score *int           `gorm:"type:int" json:"score,omitempty"`
	Notes *string        `gorm:"type:text" json:"notes,omitempty"`
	Stage Stage          `gorm:"type:text;not null;default:'Sourced'" json:"stage"`
}

// CandidatePatch carries a partial candidate update. Nil fields are left
// untouched.
type CandidatePatch struct {
	Name   *string        `json:"name,omitempty"`
	Email  *string        `json:"email,omitempty"`
	Phone  *string        `json:"phone,omitempty"`
	Tags   *[]string      `json:"tags,omitempty"`
	Score  *int           `json:"score,omitempty"`
	Notes  *string        `json:"notes,omitempty"`
	Stage  *Stage         `json:"stage,omitempty"`
	Resume *FileReference `json:"resume,omitempty"`
}

// ApplyTo merges the patch into a candidate record.
func (p CandidatePatch) ApplyTo(c *Candidate) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = p.Email
	}
	if p.Phone != nil {
		c.Phone = p.Phone
	}
	if p.Tags != nil {
		c.Tags = pq.StringArray(*p.Tags)
	}
	if p.Score != nil {
		c.Score = p.Score
	}
	if p.Notes != nil {
		c.Notes = p.Notes
	}
	if p.Stage != nil {
		c.Stage = *p.Stage
	}
	if p.Resume != nil {
		c.Resume = p.Resume
	}
}

// Clone returns a deep copy of the candidate.
func (c Candidate) Clone() Candidate {
	out := c
	out.Tags = append(pq.StringArray(nil), c.Tags...)
	if c.Email != nil {
		v := *c.Email
		out.Email = &v
	}
	if c.Phone != nil {
		v := *c.Phone
		out.Phone = &v
	}
	if c.Score != nil {
		v := *c.Score
		out.Score = &v
	}
	if c.Notes != nil {
		v := *c.Notes
		out.Notes = &v
	}
	if c.Resume != nil {
		v := *c.Resume
		out.Resume = &v
	}
	return out
}
