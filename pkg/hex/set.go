package hex

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set is an unordered collection of coordinates.
type Set map[Coord]struct{}

// NewSet creates a set holding the given coordinates.
func NewSet(coords ...Coord) Set {
	s := make(Set, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

// Collect creates a set from a sequence.
func Collect(seq iter.Seq[Coord]) Set {
	s := make(Set)
	s.UnionWith(seq)
	return s
}

// Add inserts c.
func (s Set) Add(c Coord) {
	s[c] = struct{}{}
}

// Remove deletes c.
func (s Set) Remove(c Coord) {
	delete(s, c)
}

// Contains reports whether c is a member.
func (s Set) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Clear removes every member.
func (s Set) Clear() {
	clear(s)
}

// UnionWith adds every coordinate of seq.
func (s Set) UnionWith(seq iter.Seq[Coord]) {
	for c := range seq {
		s[c] = struct{}{}
	}
}

// All yields the members in no particular order.
func (s Set) All() iter.Seq[Coord] {
	return maps.Keys(s)
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	maps.Copy(c, s)
	return c
}

// Equal reports whether both sets hold the same coordinates.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Sorted returns the members ordered by row, then column.
func (s Set) Sorted() []Coord {
	return slices.SortedFunc(maps.Keys(s), Compare)
}

// Compare orders coordinates by R, then Q.
func Compare(a, b Coord) int {
	if c := cmp.Compare(a.R, b.R); c != 0 {
		return c
	}
	return cmp.Compare(a.Q, b.Q)
}
