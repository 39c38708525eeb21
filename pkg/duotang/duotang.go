package duotang

import (
	"context"
	"sort"
	"sync"

	"github.com/OrbitCoCo/DuoTang/pkg/duotang/classify"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/internalerr"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/taxonomy"
)

// Curator is the main vocabulary curation facade. It runs one of two
// independent strategies over word lists: the taxonomy-based classifier
// (generation from a full lexical database) or the heuristic classifier
// (offline cleanup of an existing list). The two never run together on
// one word; they are alternative pipelines over different inputs.
type Curator struct {
	tax       taxonomy.Taxonomy
	validator *classify.Validator
	heuristic *classify.HeuristicClassifier
	taxCls    *classify.TaxonomyClassifier
	workers   int
	progress  func(done, total int)
}

// Options configures a Curator instance.
type Options struct {
	// Taxonomy backs the taxonomy-based pipeline and the
	// named-instance validity check. Optional: without it, only the
	// heuristic pipeline is available and validity is lexical-only.
	Taxonomy taxonomy.Taxonomy

	// Sets overrides the curated sets for the heuristic classifier.
	// Nil selects the built-in defaults.
	Sets *classify.CuratedSets

	// Workers sets the classification fan-out width. Values <= 1 run
	// serially. Output order is preserved either way.
	Workers int

	// Progress, if set, is called periodically during batch runs with
	// the number of words classified so far and the total. With Workers
	// above 1 it may be called from multiple goroutines.
	Progress func(done, total int)
}

// New creates a Curator with the given dependencies.
func New(opts Options) *Curator {
	c := &Curator{
		tax:       opts.Taxonomy,
		validator: classify.NewValidator(opts.Taxonomy),
		heuristic: classify.NewHeuristicClassifier(opts.Sets),
		workers:   opts.Workers,
		progress:  opts.Progress,
	}
	if opts.Taxonomy != nil {
		c.taxCls = classify.NewTaxonomyClassifier(opts.Taxonomy)
	}
	return c
}

// Removal records a word removed from the vocabulary together with the
// verdict that caused its removal.
type Removal struct {
	Word    string
	Verdict classify.Verdict
}

// Partition is the result of curating a word list. Kept and Removed are
// disjoint, lossless, and each preserves the relative order of the source
// list: kept ∪ removed = input as multisets.
type Partition struct {
	Kept    []string
	Removed []Removal
}

// FilterList runs the heuristic pipeline over an ordered word list and
// partitions it. Tokens that fail the validity filter are counted as
// removed with verdict Invalid rather than classified.
func (c *Curator) FilterList(ctx context.Context, words []string) (Partition, error) {
	verdicts, err := c.classifyAll(ctx, words, c.classifyHeuristic)
	if err != nil {
		return Partition{}, err
	}
	return partition(words, verdicts), nil
}

// ClassifyConcreteness runs the taxonomy-based pipeline over an ordered
// word list and partitions it. Requires a taxonomy.
func (c *Curator) ClassifyConcreteness(ctx context.Context, words []string) (Partition, error) {
	if c.taxCls == nil {
		return Partition{}, internalerr.ErrInvalidConfig
	}
	verdicts, err := c.classifyAll(ctx, words, c.classifyTaxonomy)
	if err != nil {
		return Partition{}, err
	}
	return partition(words, verdicts), nil
}

// GenerateOptions bounds vocabulary generation.
type GenerateOptions struct {
	MinLength int // default 2
	MaxLength int // default 10
}

// GenerateNouns enumerates the taxonomy's noun vocabulary, keeps the
// single words within the length bounds, and classifies each with the
// taxonomy-based pipeline. The result is the sorted concrete vocabulary.
func (c *Curator) GenerateNouns(ctx context.Context, opts GenerateOptions) ([]string, error) {
	if c.taxCls == nil {
		return nil, internalerr.ErrInvalidConfig
	}
	source, ok := c.tax.(taxonomy.VocabularySource)
	if !ok {
		return nil, internalerr.ErrInvalidConfig
	}

	if opts.MinLength <= 0 {
		opts.MinLength = 2
	}
	if opts.MaxLength <= 0 {
		opts.MaxLength = 10
	}

	all, err := source.Words(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, len(all))
	for _, w := range all {
		if len(w) < opts.MinLength || len(w) > opts.MaxLength {
			continue
		}
		candidates = append(candidates, w)
	}
	sort.Strings(candidates)

	part, err := c.ClassifyConcreteness(ctx, candidates)
	if err != nil {
		return nil, err
	}
	return part.Kept, nil
}

// classifyHeuristic is the per-word heuristic strategy: validity filter
// first, then the curated-set checks.
func (c *Curator) classifyHeuristic(ctx context.Context, word string) (classify.Verdict, error) {
	ok, err := c.validator.Valid(ctx, word)
	if err != nil {
		return classify.Invalid, err
	}
	if !ok {
		return classify.Invalid, nil
	}
	return c.heuristic.Classify(word), nil
}

// classifyTaxonomy is the per-word taxonomy strategy: validity filter
// first, then the ancestor-root checks.
func (c *Curator) classifyTaxonomy(ctx context.Context, word string) (classify.Verdict, error) {
	ok, err := c.validator.Valid(ctx, word)
	if err != nil {
		return classify.Invalid, err
	}
	if !ok {
		return classify.Invalid, nil
	}
	return c.taxCls.Classify(ctx, word)
}

// progressInterval is how many classified words pass between progress
// callbacks during a batch run.
const progressInterval = 500

// classifyAll fans the word list out across the configured workers,
// collecting verdicts into slots indexed by original position. Each word
// is classified independently against read-only state, so no locking is
// needed beyond the job feed itself. The first error cancels the run.
func (c *Curator) classifyAll(ctx context.Context, words []string, fn func(context.Context, string) (classify.Verdict, error)) ([]classify.Verdict, error) {
	verdicts := make([]classify.Verdict, len(words))

	if c.workers <= 1 {
		for i, w := range words {
			v, err := fn(ctx, w)
			if err != nil {
				return nil, err
			}
			verdicts[i] = v
			c.reportProgress(i+1, len(words))
		}
		return verdicts, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
		mu       sync.Mutex
		done     int
	)

	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				v, err := fn(runCtx, words[i])
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancel()
					})
					return
				}
				verdicts[i] = v

				mu.Lock()
				done++
				n := done
				mu.Unlock()
				c.reportProgress(n, len(words))
			}
		}()
	}

feed:
	for i := range words {
		select {
		case jobs <- i:
		case <-runCtx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return verdicts, nil
}

func (c *Curator) reportProgress(done, total int) {
	if c.progress == nil {
		return
	}
	if done%progressInterval == 0 || done == total {
		c.progress(done, total)
	}
}

// partition folds per-word verdicts into ordered kept/removed sequences.
func partition(words []string, verdicts []classify.Verdict) Partition {
	part := Partition{
		Kept:    make([]string, 0, len(words)),
		Removed: make([]Removal, 0),
	}
	for i, w := range words {
		if verdicts[i].Kept() {
			part.Kept = append(part.Kept, w)
		} else {
			part.Removed = append(part.Removed, Removal{Word: w, Verdict: verdicts[i]})
		}
	}
	return part
}
