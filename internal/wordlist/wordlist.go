// Package wordlist reads and writes the word-list file formats used by
// the curation tools: plain text (one word per line), JSON arrays, and
// the words.js module consumed by the guessing-game frontend.
package wordlist

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var wordListPattern = regexp.MustCompile(`(?s)const WORD_LIST = (\[.*?\]);`)

// ReadText reads a plain-text word list, one word per line. Blank lines
// and #-comments are skipped.
func ReadText(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, nil
}

// WriteText writes a word list as plain text, one word per line.
func WriteText(path string, words []string) error {
	return os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0644)
}

// ReadJSON reads a JSON array of words.
func ReadJSON(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return words, nil
}

// WriteJSON writes a word list as an indented JSON array, the format the
// review files use.
func WriteJSON(path string, words []string) error {
	if words == nil {
		words = []string{}
	}
	data, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadJS extracts the WORD_LIST array from a words.js frontend module.
func ReadJS(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	match := wordListPattern.FindSubmatch(data)
	if match == nil {
		return nil, fmt.Errorf("no WORD_LIST array in %s", path)
	}

	var words []string
	if err := json.Unmarshal(match[1], &words); err != nil {
		return nil, fmt.Errorf("parse WORD_LIST in %s: %w", path, err)
	}
	return words, nil
}

// WriteJS writes a words.js module containing the word list and its
// lookup set.
func WriteJS(path string, words []string) error {
	arr, err := jsonArray(words)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "const WORD_LIST = %s;\n", arr)
	b.WriteString("const WORD_SET = new Set(WORD_LIST);\n")
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// WriteJSWithExpanded writes a words.js module carrying both the filtered
// list and the original expanded list, with a toggle between them. This is
// the format the frontend ships with after a cleanup run.
func WriteJSWithExpanded(path string, filtered, expanded []string) error {
	filteredArr, err := jsonArray(filtered)
	if err != nil {
		return err
	}
	expandedArr, err := jsonArray(expanded)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("// Comprehensive list of English nouns\n\n")
	fmt.Fprintf(&b, "// Filtered list (concrete nouns only, ~%d words)\n", len(filtered))
	fmt.Fprintf(&b, "const WORD_LIST = %s;\n\n", filteredArr)
	fmt.Fprintf(&b, "// Original expanded list (~%d words)\n", len(expanded))
	fmt.Fprintf(&b, "const WORD_LIST_EXPANDED = %s;\n\n", expandedArr)
	b.WriteString(`// Convert arrays to sets for faster lookups
const WORD_SET = new Set(WORD_LIST);
const WORD_SET_EXPANDED = new Set(WORD_LIST_EXPANDED);

// Default to filtered list, but allow switching
let currentWordList = WORD_LIST;
let currentWordSet = WORD_SET;

function useExpandedWordList(useExpanded) {
    if (useExpanded) {
        currentWordList = WORD_LIST_EXPANDED;
        currentWordSet = WORD_SET_EXPANDED;
    } else {
        currentWordList = WORD_LIST;
        currentWordSet = WORD_SET;
    }
}
`)
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func jsonArray(words []string) ([]byte, error) {
	if words == nil {
		words = []string{}
	}
	return json.MarshalIndent(words, "", "  ")
}
