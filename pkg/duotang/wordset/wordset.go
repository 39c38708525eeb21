package wordset

import (
	"sort"
	"strings"
)

// Set is a case-insensitive membership set of word tokens.
// All entries are normalized to lowercase on the way in, so lookups
// behave identically regardless of the caller's casing.
type Set struct {
	words map[string]struct{}
}

// New creates a set from the given words.
func New(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// FromSlice creates a set from a slice of words.
func FromSlice(words []string) *Set {
	return New(words...)
}

// Add inserts a word into the set.
func (s *Set) Add(word string) {
	word = strings.TrimSpace(strings.ToLower(word))
	if word == "" {
		return
	}
	s.words[word] = struct{}{}
}

// Remove deletes a word from the set.
func (s *Set) Remove(word string) {
	delete(s.words, strings.ToLower(word))
}

// Contains reports whether the word is in the set.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// All returns the words in sorted order.
func (s *Set) All() []string {
	if s == nil {
		return nil
	}
	result := make([]string, 0, len(s.words))
	for w := range s.words {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}

// Union returns a new set containing the words of both sets.
func (s *Set) Union(other *Set) *Set {
	out := New()
	if s != nil {
		for w := range s.words {
			out.words[w] = struct{}{}
		}
	}
	if other != nil {
		for w := range other.words {
			out.words[w] = struct{}{}
		}
	}
	return out
}

// Intersects reports whether any member of names is in the set.
// Used for ancestor-category membership tests where the first hit decides.
func (s *Set) Intersects(names []string) bool {
	if s == nil {
		return false
	}
	for _, n := range names {
		if _, ok := s.words[strings.ToLower(n)]; ok {
			return true
		}
	}
	return false
}
