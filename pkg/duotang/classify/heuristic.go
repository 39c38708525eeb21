package classify

import "strings"

// minSuffixCheckLen guards the suffix rule: short words hit the listed
// endings too often by coincidence ("city", "duty"), so only words longer
// than seven characters are pattern-matched.
const minSuffixCheckLen = 8

// HeuristicClassifier classifies a word from curated sets alone, with no
// taxonomy. It is the cleanup strategy for an already-generated list:
// cheap, offline, and deliberately aggressive about excluding abstractions.
type HeuristicClassifier struct {
	sets *CuratedSets
}

// NewHeuristicClassifier creates a classifier over the given curated sets.
// Pass DefaultCuratedSets() for the built-in vocabulary.
func NewHeuristicClassifier(sets *CuratedSets) *HeuristicClassifier {
	if sets == nil {
		sets = DefaultCuratedSets()
	}
	return &HeuristicClassifier{sets: sets}
}

// Classify returns Profane, Abstract, or Keep. Checks run in a fixed
// order and the first match wins: a word in both the profanity set and an
// abstract set reports as Profane because that check runs first.
func (c *HeuristicClassifier) Classify(word string) Verdict {
	lower := strings.ToLower(word)

	if c.sets.Profanity.Contains(lower) {
		return Profane
	}

	if c.sets.AbstractWords.Contains(lower) {
		return Abstract
	}

	if c.sets.AbstractKeywords.Contains(lower) {
		return Abstract
	}

	if len(word) >= minSuffixCheckLen && c.hasAbstractSuffix(lower) {
		return Abstract
	}

	return Keep
}

// hasAbstractSuffix reports whether the word ends with a nominalizing
// suffix and is not in the exception whitelist. The whitelist overrides
// the suffix rule entirely: "station" stays concrete no matter its ending.
func (c *HeuristicClassifier) hasAbstractSuffix(lower string) bool {
	for _, suffix := range c.sets.Suffixes {
		if strings.HasSuffix(lower, suffix) {
			if c.sets.SuffixExceptions.Contains(lower) {
				return false
			}
			return true
		}
	}
	return false
}
