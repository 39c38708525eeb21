package report

import (
	"testing"
	"time"

	"github.com/OrbitCoCo/DuoTang/pkg/duotang"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/classify"
)

func TestBuildCounts(t *testing.T) {
	part := duotang.Partition{
		Kept: []string{"chair", "lamp"},
		Removed: []duotang.Removal{
			{Word: "ability", Verdict: classify.Abstract},
			{Word: "fucking", Verdict: classify.Profane},
			{Word: "7up", Verdict: classify.Invalid},
			{Word: "anger", Verdict: classify.Abstract},
		},
	}

	rep := New().Build("heuristic", part, time.Now())

	if rep.ID == "" {
		t.Error("report should carry an ID")
	}
	if rep.Strategy != "heuristic" {
		t.Errorf("Strategy = %q, want heuristic", rep.Strategy)
	}
	if rep.Total != 6 || rep.Kept != 2 || rep.Removed != 4 {
		t.Errorf("counts = %d/%d/%d, want 6/2/4", rep.Total, rep.Kept, rep.Removed)
	}
	if rep.RemovedBy["abstract"] != 2 || rep.RemovedBy["profane"] != 1 || rep.RemovedBy["invalid"] != 1 {
		t.Errorf("RemovedBy = %v", rep.RemovedBy)
	}
	if len(rep.RemovedSample) != 4 {
		t.Errorf("RemovedSample = %v, want all 4 removed words", rep.RemovedSample)
	}
}

func TestBuildUniqueIDs(t *testing.T) {
	b := New()
	part := duotang.Partition{Kept: []string{"chair"}}

	first := b.Build("heuristic", part, time.Now())
	second := b.Build("heuristic", part, time.Now())
	if first.ID == second.ID {
		t.Error("consecutive reports should have distinct IDs")
	}
}

func TestBuildSampleCap(t *testing.T) {
	part := duotang.Partition{}
	for i := 0; i < sampleSize*2; i++ {
		part.Removed = append(part.Removed, duotang.Removal{Word: "w", Verdict: classify.Abstract})
	}

	rep := New().Build("heuristic", part, time.Now())
	if len(rep.RemovedSample) != sampleSize {
		t.Errorf("sample size = %d, want %d", len(rep.RemovedSample), sampleSize)
	}
}
