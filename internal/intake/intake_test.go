package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFromFilename(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"John_Doe_2.pdf", "John Doe"},
		{"jane-smith.docx", "jane smith"},
		{"Priya.Sharma.Resume.pdf", "Priya Sharma Resume"},
		{"/tmp/uploads/Marcus_Lee.pdf", "Marcus Lee"},
		// Digit-only stem cleans to nothing, so the base name as
		// uploaded stands in.
		{"2024_05_01.pdf", "2024_05_01.pdf"},
		{"...", "..."},
		{"", PlaceholderName},
		{"/", PlaceholderName},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NameFromFilename(tc.filename), "filename %q", tc.filename)
	}
}
