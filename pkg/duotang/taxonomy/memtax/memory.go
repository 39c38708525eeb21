package memtax

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/OrbitCoCo/DuoTang/pkg/duotang/taxonomy"
)

// Store is an in-memory implementation of taxonomy.Taxonomy, used in tests
// and for small hand-built corpora.
type Store struct {
	mu     sync.RWMutex
	senses map[string][]taxonomy.Sense // key: word + "|" + pos
	words  map[string]struct{}         // noun lemmas
}

// New creates an empty in-memory taxonomy.
func New() *Store {
	return &Store{
		senses: make(map[string][]taxonomy.Sense),
		words:  make(map[string]struct{}),
	}
}

// AddSense registers a sense for the given word and part of speech.
// Senses are returned in insertion order, matching the primary-sense-first
// convention of real lexical databases.
func (s *Store) AddSense(word string, pos taxonomy.PartOfSpeech, sense taxonomy.Sense) {
	s.mu.Lock()
	defer s.mu.Unlock()

	word = strings.ToLower(word)
	k := key(word, pos)
	s.senses[k] = append(s.senses[k], copySense(sense))
	if pos == taxonomy.Noun {
		s.words[word] = struct{}{}
	}
}

// Senses implements taxonomy.Taxonomy.
func (s *Store) Senses(ctx context.Context, word string, pos taxonomy.PartOfSpeech) ([]taxonomy.Sense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.senses[key(strings.ToLower(word), pos)]
	if len(stored) == 0 {
		return nil, nil
	}

	out := make([]taxonomy.Sense, len(stored))
	for i, sense := range stored {
		out[i] = copySense(sense)
	}
	return out, nil
}

// Words implements taxonomy.VocabularySource.
func (s *Store) Words(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}

func key(word string, pos taxonomy.PartOfSpeech) string {
	return word + "|" + string(pos)
}

func copySense(s taxonomy.Sense) taxonomy.Sense {
	out := s
	out.Hypernyms = append([]string(nil), s.Hypernyms...)
	return out
}
