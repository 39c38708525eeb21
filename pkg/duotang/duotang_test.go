package duotang

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/OrbitCoCo/DuoTang/pkg/duotang/classify"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/internalerr"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/taxonomy"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/taxonomy/memtax"
)

func TestFilterListPartition(t *testing.T) {
	curator := New(Options{})

	input := []string{"elephant", "ability", "fucking", "Paris", "7up", "station", "chair"}
	part, err := curator.FilterList(context.Background(), input)
	if err != nil {
		t.Fatalf("FilterList failed: %v", err)
	}

	wantKept := []string{"elephant", "station", "chair"}
	if !reflect.DeepEqual(part.Kept, wantKept) {
		t.Errorf("Kept = %v, want %v", part.Kept, wantKept)
	}

	wantRemoved := []Removal{
		{Word: "ability", Verdict: classify.Abstract},
		{Word: "fucking", Verdict: classify.Profane},
		{Word: "Paris", Verdict: classify.Invalid},
		{Word: "7up", Verdict: classify.Invalid},
	}
	if !reflect.DeepEqual(part.Removed, wantRemoved) {
		t.Errorf("Removed = %v, want %v", part.Removed, wantRemoved)
	}

	// Disjointness and losslessness: kept + removed = input as multisets,
	// order preserved within each sequence.
	if len(part.Kept)+len(part.Removed) != len(input) {
		t.Errorf("partition lost words: %d + %d != %d",
			len(part.Kept), len(part.Removed), len(input))
	}
}

func TestFilterListEmptyInput(t *testing.T) {
	curator := New(Options{})

	part, err := curator.FilterList(context.Background(), nil)
	if err != nil {
		t.Fatalf("FilterList failed: %v", err)
	}
	if len(part.Kept) != 0 || len(part.Removed) != 0 {
		t.Errorf("partition of empty input should be empty, got %v", part)
	}
}

func TestFilterListParallelMatchesSerial(t *testing.T) {
	words := []string{
		"elephant", "ability", "fucking", "application", "station",
		"chair", "concept", "friendship", "hammer", "garden",
		"Paris", "7up", "randomness", "kitten", "city",
	}

	serial := New(Options{Workers: 1})
	parallel := New(Options{Workers: 4})

	wantPart, err := serial.FilterList(context.Background(), words)
	if err != nil {
		t.Fatalf("serial FilterList failed: %v", err)
	}
	gotPart, err := parallel.FilterList(context.Background(), words)
	if err != nil {
		t.Fatalf("parallel FilterList failed: %v", err)
	}

	if !reflect.DeepEqual(gotPart, wantPart) {
		t.Errorf("parallel partition differs from serial:\ngot  %v\nwant %v", gotPart, wantPart)
	}
}

func TestClassifyConcretenessRequiresTaxonomy(t *testing.T) {
	curator := New(Options{})

	_, err := curator.ClassifyConcreteness(context.Background(), []string{"chair"})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig without a taxonomy, got %v", err)
	}
}

func TestClassifyConcreteness(t *testing.T) {
	tax := memtax.New()
	tax.AddSense("hammer", taxonomy.Noun, taxonomy.Sense{
		ID:         "hammer.n.02",
		Definition: "a hand tool with a heavy rigid head",
		Hypernyms:  []string{"artifact.n.01", "physical_entity.n.01"},
	})
	tax.AddSense("idea", taxonomy.Noun, taxonomy.Sense{
		ID:         "idea.n.01",
		Definition: "the content of cognition",
		Hypernyms:  []string{"abstraction.n.06", "psychological_feature.n.01"},
	})

	curator := New(Options{Taxonomy: tax})
	part, err := curator.ClassifyConcreteness(context.Background(), []string{"hammer", "idea", "unknownword"})
	if err != nil {
		t.Fatalf("ClassifyConcreteness failed: %v", err)
	}

	if !reflect.DeepEqual(part.Kept, []string{"hammer"}) {
		t.Errorf("Kept = %v, want [hammer]", part.Kept)
	}
	wantRemoved := []Removal{
		{Word: "idea", Verdict: classify.Abstract},
		{Word: "unknownword", Verdict: classify.Abstract},
	}
	if !reflect.DeepEqual(part.Removed, wantRemoved) {
		t.Errorf("Removed = %v, want %v", part.Removed, wantRemoved)
	}
}

func TestGenerateNouns(t *testing.T) {
	tax := memtax.New()
	concrete := []string{"artifact.n.01", "whole.n.02", "physical_entity.n.01"}

	tax.AddSense("chair", taxonomy.Noun, taxonomy.Sense{
		ID:         "chair.n.01",
		Definition: "a seat for one person, with a support for the back",
		Hypernyms:  concrete,
	})
	tax.AddSense("anger", taxonomy.Noun, taxonomy.Sense{
		ID:         "anger.n.01",
		Definition: "a strong emotion",
		Hypernyms:  []string{"abstraction.n.06", "psychological_feature.n.01"},
	})
	// Too long for the default bounds.
	tax.AddSense("candlesticks", taxonomy.Noun, taxonomy.Sense{
		ID:         "candlestick.n.01",
		Definition: "a holder with sockets for candles",
		Hypernyms:  concrete,
	})
	// Too short.
	tax.AddSense("a", taxonomy.Noun, taxonomy.Sense{
		ID:         "a.n.01",
		Definition: "a metric unit of length",
		Hypernyms:  concrete,
	})

	curator := New(Options{Taxonomy: tax})
	nouns, err := curator.GenerateNouns(context.Background(), GenerateOptions{})
	if err != nil {
		t.Fatalf("GenerateNouns failed: %v", err)
	}

	if !reflect.DeepEqual(nouns, []string{"chair"}) {
		t.Errorf("GenerateNouns = %v, want [chair]", nouns)
	}
}

func TestGenerateNounsRequiresVocabularySource(t *testing.T) {
	curator := New(Options{Taxonomy: senseOnlyTaxonomy{}})

	_, err := curator.GenerateNouns(context.Background(), GenerateOptions{})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig without vocabulary enumeration, got %v", err)
	}
}

// senseOnlyTaxonomy implements taxonomy.Taxonomy but not VocabularySource.
type senseOnlyTaxonomy struct{}

func (senseOnlyTaxonomy) Senses(ctx context.Context, word string, pos taxonomy.PartOfSpeech) ([]taxonomy.Sense, error) {
	return nil, nil
}

func TestFilterListPropagatesTaxonomyError(t *testing.T) {
	curator := New(Options{Taxonomy: failingTaxonomy{}, Workers: 4})

	_, err := curator.FilterList(context.Background(), []string{"chair", "table", "lamp"})
	if !errors.Is(err, internalerr.ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}
}

type failingTaxonomy struct{}

func (failingTaxonomy) Senses(ctx context.Context, word string, pos taxonomy.PartOfSpeech) ([]taxonomy.Sense, error) {
	return nil, internalerr.ErrDataUnavailable
}
