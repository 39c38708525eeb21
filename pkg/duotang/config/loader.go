package config

import (
	"fmt"

	"github.com/OrbitCoCo/DuoTang/pkg/duotang/classify"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/wordset"
)

// Loader turns configuration files into classifier components.
type Loader struct {
	// SetsPath points to a curated-set override YAML file. Empty means
	// use the built-in defaults unchanged.
	SetsPath string
}

// Load builds the curated sets, applying file overrides section by
// section on top of the defaults.
func (l *Loader) Load() (*classify.CuratedSets, error) {
	sets := classify.DefaultCuratedSets()
	if l.SetsPath == "" {
		return sets, nil
	}

	overrides, err := LoadSets(l.SetsPath)
	if err != nil {
		return nil, fmt.Errorf("load curated sets: %w", err)
	}

	if len(overrides.Profanity) > 0 {
		sets.Profanity = wordset.FromSlice(overrides.Profanity)
	}
	if len(overrides.AbstractWords) > 0 {
		sets.AbstractWords = wordset.FromSlice(overrides.AbstractWords)
	}
	if len(overrides.AbstractKeywords) > 0 {
		sets.AbstractKeywords = wordset.FromSlice(overrides.AbstractKeywords)
	}
	if len(overrides.Suffixes) > 0 {
		sets.Suffixes = append([]string(nil), overrides.Suffixes...)
	}
	if len(overrides.SuffixExceptions) > 0 {
		sets.SuffixExceptions = wordset.FromSlice(overrides.SuffixExceptions)
	}

	return sets, nil
}
