// Package filter derives the displayed candidate list from the canonical
// model. Everything here is pure: same inputs, same output, no mutation of
// the records passed in.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"TalentBoard-backend/internal/model"
)

// Filters is the structured part of a view: conjunctive tags, optional score
// bounds and an applied-date window.
type Filters struct {
	Tags        []string   `json:"tags,omitempty"`
	ScoreMin    *int       `json:"scoreMin,omitempty"`
	ScoreMax    *int       `json:"scoreMax,omitempty"`
	AppliedFrom *time.Time `json:"appliedFrom,omitempty"`
	AppliedTo   *time.Time `json:"appliedTo,omitempty"`
}

// dateTolerance pads both ends of the applied-date window to absorb timezone
// boundary effects at whole-day input granularity.
const dateTolerance = 24 * time.Hour

// Apply runs the full pipeline: fuzzy text search, tag filter, score range,
// date range. An empty query is the identity, not "exclude all"; original
// order is preserved except where search ranking reorders matches.
func Apply(candidates []model.Candidate, query string, f Filters) []model.Candidate {
	out := searchRank(candidates, query)

	if len(f.Tags) > 0 {
		kept := out[:0]
		for _, c := range out {
			if hasAllTags(c, f.Tags) {
				kept = append(kept, c)
			}
		}
		out = kept
	}

	if f.ScoreMin != nil || f.ScoreMax != nil {
		kept := out[:0]
		for _, c := range out {
			// A candidate without a score fails any bound that is set.
			if c.Score == nil {
				continue
			}
			if f.ScoreMin != nil && *c.Score < *f.ScoreMin {
				continue
			}
			if f.ScoreMax != nil && *c.Score > *f.ScoreMax {
				continue
			}
			kept = append(kept, c)
		}
		out = kept
	}

	if f.AppliedFrom != nil || f.AppliedTo != nil {
		kept := out[:0]
		for _, c := range out {
			if f.AppliedFrom != nil && c.AppliedAt.Before(f.AppliedFrom.Add(-dateTolerance)) {
				continue
			}
			if f.AppliedTo != nil && c.AppliedAt.After(f.AppliedTo.Add(dateTolerance)) {
				continue
			}
			kept = append(kept, c)
		}
		out = kept
	}

	return out
}

// searchRank fuzzy-matches the query against name, email, tags and notes and
// orders matches by quality. The empty query short-circuits to a plain copy.
func searchRank(candidates []model.Candidate, query string) []model.Candidate {
	if query == "" {
		return append([]model.Candidate(nil), candidates...)
	}

	type ranked struct {
		cand model.Candidate
		rank int
	}
	var matches []ranked
	for _, c := range candidates {
		if r, ok := bestRank(c, query); ok {
			matches = append(matches, ranked{cand: c, rank: r})
		}
	}
	// Stable sort keeps original order among equally ranked matches.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].rank < matches[j].rank
	})

	out := make([]model.Candidate, len(matches))
	for i, m := range matches {
		out[i] = m.cand
	}
	return out
}

// bestRank returns the lowest (best) fuzzy rank across the searchable
// fields, or false when nothing matches.
func bestRank(c model.Candidate, query string) (int, bool) {
	best, found := 0, false
	consider := func(field string) {
		if field == "" {
			return
		}
		r := fuzzy.RankMatchNormalizedFold(query, field)
		if r < 0 {
			return
		}
		if !found || r < best {
			best, found = r, true
		}
	}

	consider(c.Name)
	if c.Email != nil {
		consider(*c.Email)
	}
	for _, t := range c.Tags {
		consider(t)
	}
	if c.Notes != nil {
		consider(*c.Notes)
	}
	return best, found
}

// hasAllTags checks the conjunctive, case-insensitive tag filter: every
// requested tag must be present on the candidate.
func hasAllTags(c model.Candidate, wanted []string) bool {
	for _, w := range wanted {
		ok := false
		for _, t := range c.Tags {
			if strings.EqualFold(t, w) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// GroupByStage partitions the filtered list into the six stage buckets,
// preserving relative order. Out-of-set stage values land under Sourced; the
// stored records are never rewritten.
func GroupByStage(candidates []model.Candidate) map[model.Stage][]model.Candidate {
	grouped := make(map[model.Stage][]model.Candidate, len(model.StageOrder))
	for _, st := range model.StageOrder {
		grouped[st] = []model.Candidate{}
	}
	for _, c := range candidates {
		st := model.NormalizeStage(c.Stage)
		grouped[st] = append(grouped[st], c)
	}
	return grouped
}
