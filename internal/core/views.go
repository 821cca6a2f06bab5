package core

import (
	"TalentBoard-backend/internal/filter"
	"TalentBoard-backend/internal/intake"
	"TalentBoard-backend/internal/model"
	"TalentBoard-backend/internal/pipeline"
)

// BoardView is the derived, display-ready shape of the selected job:
// filtered candidates grouped per stage plus WIP advisories. Recomputed from
// the canonical snapshot on every call.
type BoardView struct {
	Job        *model.Job                        `json:"job"`
	Columns    map[model.Stage][]model.Candidate `json:"columns"`
	Order      []model.Stage                     `json:"order"`
	Filtered   int                               `json:"filtered"`
	Total      int                               `json:"total"`
	Advisories []pipeline.Advisory               `json:"advisories"`
}

// Board derives the grouped view of the selected job under the given query
// and filters. With no job selected the columns are empty rather than nil so
// an empty board renders instead of erroring.
func (c *Core) Board(query string, f filter.Filters) BoardView {
	view := BoardView{
		Columns: filter.GroupByStage(nil),
		Order:   model.StageOrder,
	}

	job, ok := c.store.SelectedJob()
	if !ok {
		return view
	}

	filtered := filter.Apply(job.Candidates, query, f)
	view.Job = &job
	view.Columns = filter.GroupByStage(filtered)
	view.Filtered = len(filtered)
	view.Total = len(job.Candidates)
	view.Advisories = c.transitions.Evaluate(view.Columns)
	return view
}

// FilteredCandidates returns the flat filtered list of the selected job,
// feeding the CSV projection.
func (c *Core) FilteredCandidates(query string, f filter.Filters) []model.Candidate {
	job, ok := c.store.SelectedJob()
	if !ok {
		return nil
	}
	return filter.Apply(job.Candidates, query, f)
}

// ExportCSV projects the currently filtered candidate list of the selected
// job.
func (c *Core) ExportCSV(query string, f filter.Filters) []byte {
	return intake.ExportCSV(c.FilteredCandidates(query, f))
}

// ExportJSON serializes the full canonical state for backup.
func (c *Core) ExportJSON() ([]byte, error) {
	return intake.ExportJSON(c.store.Snapshot())
}
