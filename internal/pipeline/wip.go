package pipeline

import (
	"os"
	"strconv"
	"strings"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"TalentBoard-backend/internal/model"
)

// Advisory flags a stage whose candidate count exceeds its soft cap. It is
// display guidance only and never blocks or reverts a transition.
type Advisory struct {
	Stage model.Stage `json:"stage"`
	Count int         `json:"count"`
	Limit int         `json:"limit"`
}

// DefaultWIPLimits returns the built-in soft caps. Terminal stages carry
// none. Overrides come from WIP_LIMITS, e.g.
// "Sourced=20,Interview:First=10".
func DefaultWIPLimits() map[model.Stage]int {
	limits := map[model.Stage]int{
		model.StageSourced:         15,
		model.StageInterviewFirst:  8,
		model.StageInterviewSecond: 5,
		model.StageInterviewFinal:  3,
	}

	raw := os.Getenv("WIP_LIMITS")
	if raw == "" {
		return limits
	}
	for _, pair := range strings.Split(raw, ",") {
		name, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		st, ok := model.ParseStage(name)
		if !ok || st.Terminal() {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil || n <= 0 {
			continue
		}
		limits[st] = n
	}
	return limits
}

// Evaluate reports every stage over its configured cap in the grouped view.
func (c *Controller) Evaluate(grouped map[model.Stage][]model.Candidate) []Advisory {
	var advisories []Advisory
	for _, st := range model.StageOrder {
		limit, ok := c.limits[st]
		if !ok {
			continue
		}
		if count := len(grouped[st]); count > limit {
			advisories = append(advisories, Advisory{Stage: st, Count: count, Limit: limit})
		}
	}
	return advisories
}
