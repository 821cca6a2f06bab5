package intake

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"TalentBoard-backend/internal/model"
	"TalentBoard-backend/internal/store"
)

// ExportJSON serializes the full board state for backup. The output is the
// same document shape the local snapshot uses, so import is a strict
// round-trip.
func ExportJSON(state model.ATSState) ([]byte, error) {
	return json.Marshal(state)
}

// ImportJSON parses a backup document. A failure leaves the caller's state
// untouched by construction: nothing is returned to apply.
func ImportJSON(data []byte) (model.ATSState, error) {
	var state model.ATSState
	if err := json.Unmarshal(data, &state); err != nil {
		return model.ATSState{}, &store.ParseError{Err: err}
	}
	if state.Jobs == nil {
		state.Jobs = []model.Job{}
	}
	return state, nil
}

// csvHeader is the fixed column order of the CSV projection.
var csvHeader = []string{"id", "name", "email", "phone", "tags", "score", "stage", "appliedAt"}

// ExportCSV projects the currently filtered candidate list. Every field is
// quoted, with internal quotes doubled; tags are pipe-joined.
// encoding/csv only quotes on demand, so the rows are written by hand.
func ExportCSV(candidates []model.Candidate) []byte {
	var buf bytes.Buffer
	writeRow(&buf, csvHeader)

	for _, c := range candidates {
		row := []string{
			c.ID.String(),
			c.Name,
			strOrEmpty(c.Email),
			strOrEmpty(c.Phone),
			joinTags(c.Tags),
			scoreField(c.Score),
			string(c.Stage),
			c.AppliedAt.Format("2006-01-02"),
		}
		writeRow(&buf, row)
	}
	return buf.Bytes()
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(doubleQuotes(f))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}

func doubleQuotes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			out = append(out, '"', '"')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

func joinTags(tags []string) string {
	return strings.Join(tags, "|")
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func scoreField(score *int) string {
	if score == nil {
		return ""
	}
	return strconv.Itoa(*score)
}
