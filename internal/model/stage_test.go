package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStage(t *testing.T) {
	st, ok := ParseStage("Interview:Final")
	assert.True(t, ok)
	assert.Equal(t, StageInterviewFinal, st)

	_, ok = ParseStage("Phone Screen")
	assert.False(t, ok)
}

func TestNormalizeStage_unknownFallsBackToSourced(t *testing.T) {
	assert.Equal(t, StageSourced, NormalizeStage(Stage("On Hold")))
	assert.Equal(t, StageSourced, NormalizeStage(Stage("")))
	assert.Equal(t, StageHired, NormalizeStage(StageHired))
}

func TestStageTerminal(t *testing.T) {
	assert.True(t, StageHired.Terminal())
	assert.True(t, StageRejected.Terminal())
	assert.False(t, StageSourced.Terminal())
	assert.False(t, StageInterviewSecond.Terminal())
}

func TestStageOrderCoversEnumeration(t *testing.T) {
	assert.Len(t, StageOrder, 6)
	for _, st := range StageOrder {
		_, ok := ParseStage(string(st))
		assert.True(t, ok)
	}
}
