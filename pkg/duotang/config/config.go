package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Sets represents a curated-set override file. Any section left empty
// falls back to the built-in defaults, so a file can override just the
// profanity list without restating everything else.
type Sets struct {
	Profanity        []string `yaml:"profanity"`
	AbstractWords    []string `yaml:"abstract_words"`
	AbstractKeywords []string `yaml:"abstract_keywords"`
	Suffixes         []string `yaml:"suffixes"`
	SuffixExceptions []string `yaml:"suffix_exceptions"`
}

// LoadSets loads curated-set overrides from a YAML file.
func LoadSets(path string) (*Sets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sets Sets
	if err := yaml.Unmarshal(data, &sets); err != nil {
		return nil, err
	}

	return &sets, nil
}
