package classify

import (
	"context"
	"strings"

	"github.com/OrbitCoCo/DuoTang/pkg/duotang/taxonomy"
)

// TaxonomyClassifier decides concreteness from a word's taxonomy entry.
// A word is Concrete if ANY of its noun senses is a plain physical object;
// polysemous words keep their place in the vocabulary as long as one
// common meaning is depictable. Profanity is out of scope here — this
// classifier only ever answers Concrete or Abstract.
type TaxonomyClassifier struct {
	tax taxonomy.Taxonomy
}

// NewTaxonomyClassifier creates a classifier over the given taxonomy.
func NewTaxonomyClassifier(tax taxonomy.Taxonomy) *TaxonomyClassifier {
	return &TaxonomyClassifier{tax: tax}
}

// Classify returns Concrete or Abstract for the given word. Senses are
// examined in the taxonomy's native order and the first qualifying sense
// wins; reordering the checks changes verdicts for words that match more
// than one rule, so the sequence below is fixed.
//
// An unknown word (no noun senses) is Abstract: absent information, the
// conservative answer is to exclude.
func (c *TaxonomyClassifier) Classify(ctx context.Context, word string) (Verdict, error) {
	senses, err := c.tax.Senses(ctx, word, taxonomy.Noun)
	if err != nil {
		return Abstract, err
	}
	if len(senses) == 0 {
		return Abstract, nil
	}

	for _, sense := range senses {
		if c.senseIsConcrete(word, sense) {
			return Concrete, nil
		}
	}
	return Abstract, nil
}

func (c *TaxonomyClassifier) senseIsConcrete(word string, sense taxonomy.Sense) bool {
	// Must reach a physical root and must not reach an abstract one.
	if !concreteRoots.Intersects(sense.Hypernyms) {
		return false
	}
	if abstractRoots.Intersects(sense.Hypernyms) {
		return false
	}

	definition := strings.ToLower(sense.Definition)

	// A mis-rooted sense whose gloss talks about a concept, act, or
	// process is still an abstraction.
	if containsAny(definition, abstractMarkers) {
		return false
	}

	// Too narrow for a guessing vocabulary: drugs, chemistry, physics,
	// extinct species, trademarked goods.
	if containsAny(definition, technicalMarkers) {
		return false
	}

	// Long formal nominalizations about reproduction/duplication slip
	// past the root check; drop those specifically.
	if len(word) > 8 && hasAnySuffix(word, formalSuffixes) &&
		containsAny(definition, reproductionMarkers) {
		return false
	}

	return true
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func hasAnySuffix(word string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}
