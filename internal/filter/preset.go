package filter

import "sync"

// Preset is a named, saved combination of search query and structured
// filters. Applying one replaces the live query/filter state wholesale.
type Preset struct {
	Name    string  `json:"name"`
	Query   string  `json:"query"`
	Filters Filters `json:"filters"`
}

// PresetStore keeps view presets for the session. Saving under an existing
// name overwrites it.
type PresetStore struct {
	mu      sync.Mutex
	presets []Preset
}

// NewPresetStore returns an empty store.
func NewPresetStore() *PresetStore {
	return &PresetStore{}
}

// Save inserts or replaces a preset by name.
func (s *PresetStore) Save(p Preset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.presets {
		if s.presets[i].Name == p.Name {
			s.presets[i] = p
			return
		}
	}
	s.presets = append(s.presets, p)
}

// Get returns the preset with the given name.
func (s *PresetStore) Get(name string) (Preset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// List returns all presets in save order.
func (s *PresetStore) List() []Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Preset(nil), s.presets...)
}

// Delete removes a preset by name, reporting whether it existed.
func (s *PresetStore) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.presets {
		if p.Name == name {
			s.presets = append(s.presets[:i], s.presets[i+1:]...)
			return true
		}
	}
	return false
}
