package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/OrbitCoCo/DuoTang/pkg/duotang"
)

// sampleSize caps how many removed words a report carries for review.
const sampleSize = 50

// Builder constructs curation run reports with unique, sortable IDs.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new report builder.
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Report summarizes one curation run for review files and logs.
type Report struct {
	ID            string         `json:"id"`
	Strategy      string         `json:"strategy"`
	StartedAt     time.Time      `json:"started_at"`
	Duration      string         `json:"duration"`
	Total         int            `json:"total"`
	Kept          int            `json:"kept"`
	Removed       int            `json:"removed"`
	RemovedBy     map[string]int `json:"removed_by_verdict"`
	RemovedSample []string       `json:"removed_sample"`
}

// Build creates a report from a finished partition.
func (b *Builder) Build(strategy string, part duotang.Partition, startedAt time.Time) Report {
	r := Report{
		ID:        ulid.MustNew(ulid.Now(), b.entropy).String(),
		Strategy:  strategy,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt).Round(time.Millisecond).String(),
		Total:     len(part.Kept) + len(part.Removed),
		Kept:      len(part.Kept),
		Removed:   len(part.Removed),
		RemovedBy: make(map[string]int),
	}

	for _, rem := range part.Removed {
		r.RemovedBy[rem.Verdict.String()]++
		if len(r.RemovedSample) < sampleSize {
			r.RemovedSample = append(r.RemovedSample, rem.Word)
		}
	}

	return r
}
