// Command generate-nouns builds a concrete-noun vocabulary from a local
// lexical database: every single-word noun within the length bounds is
// validity-filtered and run through the taxonomy-based concreteness
// classifier, and the survivors are written out for the frontend.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/OrbitCoCo/DuoTang/internal/wordlist"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/internalerr"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/taxonomy/sqlite"
)

func main() {
	var (
		dbPath  = flag.String("db", "wordnet.db", "path to the lexical SQLite database")
		minLen  = flag.Int("min", 2, "minimum word length")
		maxLen  = flag.Int("max", 10, "maximum word length")
		jsPath  = flag.String("out", "words.js", "output path for the frontend module")
		txtPath = flag.String("txt", "nouns_list.txt", "output path for the plain-text review list")
		workers = flag.Int("workers", 4, "classification workers")
		retries = flag.Int("retries", 3, "database open attempts before giving up")
	)
	flag.Parse()

	ctx := context.Background()

	log.Printf("Opening lexical database %s...", *dbPath)
	tax, err := sqlite.Open(ctx, *dbPath, sqlite.RetryConfig{
		Attempts: *retries,
		Delay:    500 * time.Millisecond,
	})
	if err != nil {
		if errors.Is(err, internalerr.ErrDataUnavailable) {
			log.Fatalf("Lexical database unavailable: %v", err)
		}
		log.Fatalf("Failed to open database: %v", err)
	}
	defer tax.Close()

	curator := duotang.New(duotang.Options{
		Taxonomy: tax,
		Workers:  *workers,
		Progress: func(done, total int) {
			log.Printf("Processed %d/%d words...", done, total)
		},
	})

	log.Println("Generating concrete noun list...")
	nouns, err := curator.GenerateNouns(ctx, duotang.GenerateOptions{
		MinLength: *minLen,
		MaxLength: *maxLen,
	})
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	log.Printf("Found %d concrete nouns", len(nouns))
	if len(nouns) > 0 {
		sample := nouns
		if len(sample) > 20 {
			sample = sample[:20]
		}
		log.Printf("Sample nouns: %s", strings.Join(sample, ", "))
	}

	if err := wordlist.WriteJS(*jsPath, nouns); err != nil {
		log.Fatalf("Failed to write %s: %v", *jsPath, err)
	}
	log.Printf("Saved %d words to %s", len(nouns), *jsPath)

	if err := wordlist.WriteText(*txtPath, nouns); err != nil {
		log.Fatalf("Failed to write %s: %v", *txtPath, err)
	}
	log.Printf("Saved word list to %s for review", *txtPath)
}
