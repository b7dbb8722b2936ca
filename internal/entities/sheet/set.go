package sheet

import (
	"encoding/json"
	"sort"
)

// StringSet is the set abstraction backing the proficiency and expertise
// fields. It serializes as a JSON array (sorted, for stable output) and
// deserializes from an array, so stored documents carry arrays while the
// in-memory representation keeps set semantics.
type StringSet map[string]struct{}

// NewStringSet builds a set from the given keys.
func NewStringSet(keys ...string) StringSet {
	s := make(StringSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s StringSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add inserts a key.
func (s StringSet) Add(key string) {
	s[key] = struct{}{}
}

// Remove deletes a key.
func (s StringSet) Remove(key string) {
	delete(s, key)
}

// Toggle adds the key if absent and removes it if present.
func (s StringSet) Toggle(key string) {
	if s.Has(key) {
		s.Remove(key)
		return
	}
	s.Add(key)
}

// Clone returns an independent copy.
func (s StringSet) Clone() StringSet {
	out := make(StringSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Values returns the members sorted ascending.
func (s StringSet) Values() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON renders the set as a sorted array.
func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON reconstitutes the set from an array. A JSON null yields
// an empty set rather than a nil map.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*s = NewStringSet(keys...)
	return nil
}
