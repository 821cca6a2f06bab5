package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_putAndGet(t *testing.T) {
	s := NewSessionStore()

	ref := s.Put("resume", "John_Doe.pdf", []byte("%PDF"))

	assert.Equal(t, "John_Doe.pdf", ref.Name)
	require.True(t, strings.HasPrefix(ref.URL, "local://resume/"))

	data, ok := s.Get(ref.URL)
	require.True(t, ok)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestSessionStore_getRejectsForeignSchemes(t *testing.T) {
	s := NewSessionStore()
	s.Put("resume", "a.pdf", []byte("x"))

	_, ok := s.Get("https://storage.googleapis.com/bucket/resume/a.pdf")
	assert.False(t, ok)

	_, ok = s.Get("local://resume/unknown.pdf")
	assert.False(t, ok)
}

func TestSessionStore_putCopiesData(t *testing.T) {
	s := NewSessionStore()
	buf := []byte("original")

	ref := s.Put("resume", "a.pdf", buf)
	buf[0] = 'X'

	data, ok := s.Get(ref.URL)
	require.True(t, ok)
	assert.Equal(t, []byte("original"), data)
}
