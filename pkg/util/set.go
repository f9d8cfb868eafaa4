package util

import (
	"cmp"
	"encoding/json"
	"maps"
	"slices"
)

// Set is a generic set implementation for ordered values. It marshals to a
// sorted JSON array so that insertion order never leaks into the wire format
type Set[K cmp.Ordered] map[K]struct{}

// SetOf creates a new set containing the given elements
func SetOf[K cmp.Ordered](elements ...K) Set[K] {
	s := make(Set[K], len(elements))
	for _, elem := range elements {
		s[elem] = struct{}{}
	}
	return s
}

// Add adds an element to the set
func (s Set[K]) Add(key K) {
	s[key] = struct{}{}
}

// Remove removes an element from the set
func (s Set[K]) Remove(key K) {
	delete(s, key)
}

// Contains returns true if the element exists in the set
func (s Set[K]) Contains(key K) bool {
	_, exists := s[key]
	return exists
}

// Len returns the number of elements in the set
func (s Set[K]) Len() int {
	return len(s)
}

// IsEmpty returns true if the set is empty
func (s Set[K]) IsEmpty() bool {
	return len(s) == 0
}

// Clone returns a shallow copy of the set. A nil set clones to an empty one
func (s Set[K]) Clone() Set[K] {
	if s == nil {
		return Set[K]{}
	}
	return maps.Clone(s)
}

// Toggle returns a copy of the set with key added if it was absent, or
// removed if it was present. The receiver is left untouched
func (s Set[K]) Toggle(key K) Set[K] {
	res := s.Clone()
	if res.Contains(key) {
		res.Remove(key)
	} else {
		res.Add(key)
	}
	return res
}

// Sorted returns the elements of the set in ascending order
func (s Set[K]) Sorted() []K {
	return slices.Sorted(maps.Keys(s))
}

// MarshalJSON encodes the set as a sorted array
func (s Set[K]) MarshalJSON() ([]byte, error) {
	res := s.Sorted()
	if res == nil {
		res = []K{}
	}
	return json.Marshal(res)
}

// UnmarshalJSON decodes a JSON array into the set, dropping duplicates
func (s *Set[K]) UnmarshalJSON(data []byte) error {
	var elems []K
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	*s = SetOf(elems...)
	return nil
}
