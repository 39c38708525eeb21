package classify

import (
	"context"
	"unicode"

	"github.com/OrbitCoCo/DuoTang/pkg/duotang/taxonomy"
)

// Validator is the pre-filter that decides whether a token is a plausible
// common noun before any classifier runs. The taxonomy is optional: without
// one, only the lexical checks apply.
type Validator struct {
	tax taxonomy.Taxonomy
}

// NewValidator creates a validator. tax may be nil, in which case the
// exclusively-named-instance check is skipped.
func NewValidator(tax taxonomy.Taxonomy) *Validator {
	return &Validator{tax: tax}
}

// Valid reports whether the token may enter classification. A token
// qualifies iff it is entirely alphabetic, starts with a lowercase letter,
// and is not used exclusively as a proper name in the taxonomy. A word
// with at least one common-noun sense passes even if it also names a
// specific individual.
//
// The only error source is the taxonomy lookup; lexical rejections are
// not errors.
func (v *Validator) Valid(ctx context.Context, word string) (bool, error) {
	if !isAlphabetic(word) {
		return false, nil
	}

	first := []rune(word)[0]
	if !unicode.IsLower(first) {
		return false, nil
	}

	if v.tax == nil {
		return true, nil
	}

	senses, err := v.tax.Senses(ctx, word, taxonomy.Noun)
	if err != nil {
		return false, err
	}
	if len(senses) == 0 {
		return true, nil
	}

	for _, sense := range senses {
		if !sense.IsInstance {
			return true, nil
		}
	}
	return false, nil
}

func isAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
