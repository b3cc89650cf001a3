// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package analysis

import "sort"

// PartSet is an unordered set of part identities. Master and layout sets
// hold canonical absolute paths; image sets hold bare filenames, since all
// media lives in one flat folder and relationships reference it by name.
type PartSet map[string]struct{}

// NewPartSet creates a set holding the given members.
func NewPartSet(members ...string) PartSet {
	s := make(PartSet, len(members))
	for _, m := range members {
		s.Add(m)
	}
	return s
}

// Add inserts a member. Adding an existing member is a no-op, which is what
// makes the closure merge idempotent.
func (s PartSet) Add(member string) {
	s[member] = struct{}{}
}

// Has reports membership.
func (s PartSet) Has(member string) bool {
	_, ok := s[member]
	return ok
}

// Len returns the number of members.
func (s PartSet) Len() int {
	return len(s)
}

// Diff returns the members of s that are not in other.
func (s PartSet) Diff(other PartSet) PartSet {
	out := make(PartSet)
	for m := range s {
		if !other.Has(m) {
			out.Add(m)
		}
	}
	return out
}

// Sorted returns the members in lexical order. Raw map iteration order is
// not stable, so every ordered output derived from a set goes through here.
func (s PartSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
