package qcplot

import (
	"sort"
	"strings"
)

// StringSet is a set of string values.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

func (s StringSet) String() string {
	return "[" + strings.Join(s.Elements(), " ") + "]"
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Remove removes all elements of t from s. (Set difference)
func (s StringSet) Remove(t StringSet) {
	for x := range t {
		delete(s, x)
	}
}

// Elements returns the sorted elements of s.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
