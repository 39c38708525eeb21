package memtax

import (
	"context"
	"reflect"
	"testing"

	"github.com/OrbitCoCo/DuoTang/pkg/duotang/taxonomy"
)

func TestSensesInsertionOrder(t *testing.T) {
	s := New()
	s.AddSense("bank", taxonomy.Noun, taxonomy.Sense{ID: "bank.n.01"})
	s.AddSense("bank", taxonomy.Noun, taxonomy.Sense{ID: "bank.n.02"})

	senses, err := s.Senses(context.Background(), "bank", taxonomy.Noun)
	if err != nil {
		t.Fatalf("Senses failed: %v", err)
	}
	if len(senses) != 2 || senses[0].ID != "bank.n.01" || senses[1].ID != "bank.n.02" {
		t.Errorf("senses out of insertion order: %v", senses)
	}
}

func TestSensesUnknownWord(t *testing.T) {
	s := New()

	senses, err := s.Senses(context.Background(), "missing", taxonomy.Noun)
	if err != nil {
		t.Fatalf("Senses failed: %v", err)
	}
	if len(senses) != 0 {
		t.Errorf("expected no senses, got %v", senses)
	}
}

func TestSensesPartOfSpeechIsolation(t *testing.T) {
	s := New()
	s.AddSense("run", taxonomy.Verb, taxonomy.Sense{ID: "run.v.01"})

	senses, err := s.Senses(context.Background(), "run", taxonomy.Noun)
	if err != nil {
		t.Fatalf("Senses failed: %v", err)
	}
	if len(senses) != 0 {
		t.Errorf("noun lookup should not see verb senses, got %v", senses)
	}
}

func TestSensesReturnsCopies(t *testing.T) {
	s := New()
	s.AddSense("dog", taxonomy.Noun, taxonomy.Sense{
		ID:        "dog.n.01",
		Hypernyms: []string{"canine.n.02"},
	})

	first, _ := s.Senses(context.Background(), "dog", taxonomy.Noun)
	first[0].Hypernyms[0] = "mutated"

	second, _ := s.Senses(context.Background(), "dog", taxonomy.Noun)
	if second[0].Hypernyms[0] != "canine.n.02" {
		t.Error("callers must not be able to mutate stored senses")
	}
}

func TestWords(t *testing.T) {
	s := New()
	s.AddSense("zebra", taxonomy.Noun, taxonomy.Sense{ID: "zebra.n.01"})
	s.AddSense("apple", taxonomy.Noun, taxonomy.Sense{ID: "apple.n.01"})
	s.AddSense("run", taxonomy.Verb, taxonomy.Sense{ID: "run.v.01"})

	words, err := s.Words(context.Background())
	if err != nil {
		t.Fatalf("Words failed: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"apple", "zebra"}) {
		t.Errorf("Words = %v, want [apple zebra]", words)
	}
}
