// Package model defines the persisted hiring pipeline records shared by both
// persistence variants and every derived view.
package model

// Stage is one of the six pipeline columns a candidate can occupy.
//
//	Sourced -> Interview:First -> Interview:Second -> Interview:Final -> Hired
//	                                                                  \-> Rejected
//
// The diagram shows the nominal progression; transitions are any-to-any.
// Hired and Rejected are terminal for WIP accounting only and never block a
// move back out of them.
type Stage string

// The closed stage enumeration. These literals are stored verbatim, so they
// double as wire and column values.
const (
	StageSourced         Stage = "Sourced"
	StageInterviewFirst  Stage = "Interview:First"
	StageInterviewSecond Stage = "Interview:Second"
	StageInterviewFinal  Stage = "Interview:Final"
	StageHired           Stage = "Hired"
	StageRejected        Stage = "Rejected"
)

// StageOrder lists every stage in board column order.
var StageOrder = []Stage{
	StageSourced,
	StageInterviewFirst,
	StageInterviewSecond,
	StageInterviewFinal,
	StageHired,
	StageRejected,
}

// ParseStage resolves a raw string against the enumeration.
func ParseStage(s string) (Stage, bool) {
	for _, st := range StageOrder {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// NormalizeStage maps any out-of-set value to Sourced. Stored records are
// never rewritten on read; normalization happens where a stage is consumed.
func NormalizeStage(s Stage) Stage {
	if _, ok := ParseStage(string(s)); ok {
		return s
	}
	return StageSourced
}

// Terminal reports whether the stage ends the pipeline. Terminal stages carry
// no WIP cap.
func (s Stage) Terminal() bool {
	return s == StageHired || s == StageRejected
}
