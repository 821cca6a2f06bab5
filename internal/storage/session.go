package storage

import (
	"strings"
	"sync"

	"TalentBoard-backend/internal/model"
)

// localScheme prefixes handles minted by the session store. They are valid
// only for the lifetime of the process.
const localScheme = "local://"

// SessionStore keeps uploaded attachment bytes in memory and hands out
// transient handles for them. The local persistence variant uses it in place
// of a real object store.
type SessionStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{objects: make(map[string][]byte)}
}

// Put stores data and returns a reference whose URL resolves via Get for the
// current session only.
func (s *SessionStore) Put(category, name string, data []byte) model.FileReference {
	key := ObjectKey(category, name)

	s.mu.Lock()
	s.objects[key] = append([]byte(nil), data...)
	s.mu.Unlock()

	return model.FileReference{Name: name, URL: localScheme + key}
}

// Get resolves a handle minted by Put.
func (s *SessionStore) Get(url string) ([]byte, bool) {
	key, ok := strings.CutPrefix(url, localScheme)
	if !ok {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}
