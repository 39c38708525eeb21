// Command import-wordnet loads a JSONL sense dump into the local SQLite
// lexical database used by generate-nouns. Each input line describes one
// sense of one word:
//
//	{"word":"dog","pos":"n","sense_id":"dog.n.01","rank":0,
//	 "definition":"a domesticated carnivorous mammal",
//	 "is_instance":false,
//	 "hypernyms":["canine.n.02","animal.n.01","physical_entity.n.01"]}
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/OrbitCoCo/DuoTang/pkg/duotang/taxonomy"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/taxonomy/sqlite"
)

// senseLine is the JSONL import format.
type senseLine struct {
	Word       string   `json:"word"`
	POS        string   `json:"pos"`
	SenseID    string   `json:"sense_id"`
	Rank       int      `json:"rank"`
	Definition string   `json:"definition"`
	IsInstance bool     `json:"is_instance"`
	Hypernyms  []string `json:"hypernyms"`
}

func main() {
	var (
		dbPath = flag.String("db", "wordnet.db", "path to the lexical SQLite database")
		inPath = flag.String("in", "senses.jsonl", "JSONL sense dump to import")
	)
	flag.Parse()

	ctx := context.Background()

	in, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *inPath, err)
	}
	defer in.Close()

	store, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	imported, skipped := 0, 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var s senseLine
		if err := json.Unmarshal(line, &s); err != nil {
			log.Printf("Skipping malformed line: %v", err)
			skipped++
			continue
		}
		if s.POS == "" {
			s.POS = string(taxonomy.Noun)
		}

		sense := taxonomy.Sense{
			ID:         s.SenseID,
			Definition: s.Definition,
			Hypernyms:  s.Hypernyms,
			IsInstance: s.IsInstance,
		}
		if err := store.UpsertSense(ctx, s.Word, taxonomy.PartOfSpeech(s.POS), s.Rank, sense); err != nil {
			log.Printf("Skipping %s (%s): %v", s.Word, s.SenseID, err)
			skipped++
			continue
		}

		imported++
		if imported%5000 == 0 {
			log.Printf("Imported %d senses...", imported)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Read failed: %v", err)
	}

	log.Printf("Done: imported %d senses, skipped %d", imported, skipped)
}
