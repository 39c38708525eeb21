// Command filter-words cleans an already-generated word list with the
// heuristic lexical classifier: profanity, known abstract nouns, abstract
// keyword stems, and suffix patterns. It writes the kept and removed lists
// for review plus an updated words.js for the frontend.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/OrbitCoCo/DuoTang/internal/wordlist"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/config"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/report"
)

func main() {
	var (
		inPath      = flag.String("in", "words.js", "input word list (.js, .json, or .txt)")
		outPath     = flag.String("out", "filtered_words.json", "output path for kept words")
		removedPath = flag.String("removed", "removed_words.json", "output path for removed words")
		jsPath      = flag.String("js", "words_new.js", "output path for the frontend module (empty to skip)")
		reportPath  = flag.String("report", "", "output path for the run report JSON (empty to skip)")
		setsPath    = flag.String("sets", "", "curated-set override YAML (empty for built-in defaults)")
		workers     = flag.Int("workers", 1, "classification workers")
	)
	flag.Parse()

	words, err := readList(*inPath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *inPath, err)
	}
	log.Printf("Loaded %d words from %s", len(words), *inPath)

	loader := config.Loader{SetsPath: *setsPath}
	sets, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load curated sets: %v", err)
	}

	curator := duotang.New(duotang.Options{
		Sets:    sets,
		Workers: *workers,
		Progress: func(done, total int) {
			log.Printf("Processed %d/%d words...", done, total)
		},
	})

	start := time.Now()
	part, err := curator.FilterList(context.Background(), words)
	if err != nil {
		log.Fatalf("Filtering failed: %v", err)
	}

	rep := report.New().Build("heuristic", part, start)
	log.Printf("Run %s: kept %d, removed %d of %d words", rep.ID, rep.Kept, rep.Removed, rep.Total)
	for verdict, n := range rep.RemovedBy {
		log.Printf("  removed as %s: %d", verdict, n)
	}
	if len(rep.RemovedSample) > 0 {
		log.Printf("Sample of removed words: %s", strings.Join(rep.RemovedSample, ", "))
	}

	if err := wordlist.WriteJSON(*outPath, part.Kept); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}
	log.Printf("Saved kept words to %s", *outPath)

	removed := make([]string, len(part.Removed))
	for i, rem := range part.Removed {
		removed[i] = rem.Word
	}
	if err := wordlist.WriteJSON(*removedPath, removed); err != nil {
		log.Fatalf("Failed to write %s: %v", *removedPath, err)
	}
	log.Printf("Saved removed words to %s", *removedPath)

	if *jsPath != "" {
		if err := wordlist.WriteJSWithExpanded(*jsPath, part.Kept, words); err != nil {
			log.Fatalf("Failed to write %s: %v", *jsPath, err)
		}
		log.Printf("Generated %s with both filtered and expanded lists", *jsPath)
	}

	if *reportPath != "" {
		if err := writeReport(*reportPath, rep); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		log.Printf("Saved run report to %s", *reportPath)
	}
}

func readList(path string) ([]string, error) {
	switch filepath.Ext(path) {
	case ".js":
		return wordlist.ReadJS(path)
	case ".json":
		return wordlist.ReadJSON(path)
	default:
		return wordlist.ReadText(path)
	}
}

func writeReport(path string, rep report.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
