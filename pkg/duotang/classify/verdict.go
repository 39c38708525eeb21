package classify

// Verdict is the outcome of classifying a single word. Every word maps to
// exactly one verdict per classifier invocation, and classification is a
// pure function of (word, taxonomy snapshot, curated sets) — re-running it
// against unchanged inputs always yields the same verdict.
type Verdict string

const (
	// Concrete marks a word with at least one sense denoting a physical,
	// depictable object. Produced by the taxonomy-based classifier.
	Concrete Verdict = "concrete"

	// Keep marks a word that passed every heuristic exclusion check.
	Keep Verdict = "keep"

	// Abstract marks a word whose senses all denote abstractions,
	// emotions, processes, roles, or other non-depictable concepts.
	Abstract Verdict = "abstract"

	// Profane marks a word in the curated offensive-term set.
	Profane Verdict = "profane"

	// Invalid marks a token that failed the word-validity filter before
	// any classifier ran.
	Invalid Verdict = "invalid"
)

// Kept reports whether the verdict places the word in the curated output
// list. Everything else goes to the removed list, annotated with the
// verdict that caused removal.
func (v Verdict) Kept() bool {
	return v == Concrete || v == Keep
}

func (v Verdict) String() string {
	return string(v)
}
