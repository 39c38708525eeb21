package taxonomy

import "context"

// PartOfSpeech selects which section of the lexical database to query.
type PartOfSpeech string

// Parts of speech recognized by the taxonomy. Only nouns matter for
// vocabulary curation, but the lookup key is explicit so a backend can
// store a full database without ambiguity.
const (
	Noun      PartOfSpeech = "n"
	Verb      PartOfSpeech = "v"
	Adjective PartOfSpeech = "a"
	Adverb    PartOfSpeech = "r"
)

// Sense is one meaning of a word in the lexical taxonomy.
type Sense struct {
	// ID is the stable synset identifier, e.g. "dog.n.01".
	ID string

	// Definition is the human-readable gloss for this sense.
	Definition string

	// Hypernyms is the union of category names on every ancestor path
	// from this sense to a taxonomy root ("dog" -> canine, carnivore,
	// mammal, animal, organism, physical entity, ...).
	Hypernyms []string

	// IsInstance marks senses that denote one uniquely named individual
	// (a proper-noun-only sense) rather than a class of things.
	IsInstance bool
}

// Taxonomy is a read-only oracle over a lexical database.
//
// Implementations never mutate the underlying data. A backend that cannot
// reach its data store fails every query with internalerr.ErrDataUnavailable;
// callers are expected to treat that as fatal at startup rather than retry
// per word. A word that is simply unknown yields an empty sense slice and
// a nil error.
type Taxonomy interface {
	// Senses returns every sense of word for the given part of speech,
	// in the database's native order. The returned slice is owned by the
	// caller; calling Senses again restarts the enumeration.
	Senses(ctx context.Context, word string, pos PartOfSpeech) ([]Sense, error)
}

// VocabularySource is implemented by backends that can enumerate their
// entire single-word noun vocabulary, for list generation.
type VocabularySource interface {
	Taxonomy

	// Words returns every distinct single-word noun lemma in the
	// database, lowercased, in unspecified order.
	Words(ctx context.Context) ([]string, error)
}
