package discovery

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
)

const (
	// DefaultThreshold is the minimum relevance for a discovered link.
	DefaultThreshold = 0.3
	// DefaultMaxLinks caps how many discovered links are returned.
	DefaultMaxLinks = 5

	// parallelCutoff is the corpus size above which scoring fans out to
	// the worker pool. Small corpora score faster inline.
	parallelCutoff = 64
)

// ScoredNote pairs a candidate note with its relevance to an expense.
type ScoredNote struct {
	Note  Note
	Score float64
}

// Discoverer scores note corpora against expense-derived term sets.
type Discoverer struct {
	threshold float64
	maxLinks  int
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Discoverer.
type Option func(*Discoverer) error

// WithThreshold sets the minimum relevance score for a discovered link.
func WithThreshold(threshold float64) Option {
	return func(d *Discoverer) error {
		d.threshold = threshold
		return nil
	}
}

// WithMaxLinks caps the number of discovered links returned.
func WithMaxLinks(max int) Option {
	return func(d *Discoverer) error {
		if max < 1 {
			max = 1
		}
		d.maxLinks = max
		return nil
	}
}

// WithPoolSize sets the worker pool size for batch scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(d *Discoverer) error {
		if size < 1 {
			size = 1
		}
		if d.pool != nil {
			d.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		d.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Discoverer) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDiscoverer creates a discoverer with default threshold and link cap.
func NewDiscoverer(opts ...Option) (*Discoverer, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	d := &Discoverer{
		threshold: DefaultThreshold,
		maxLinks:  DefaultMaxLinks,
		pool:      pool,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			d.Release()
			return nil, err
		}
	}
	return d, nil
}

// Release frees the worker pool. The discoverer must not be used after.
func (d *Discoverer) Release() {
	if d.pool != nil {
		d.pool.Release()
	}
}

// DiscoverRelated scores every candidate note against the expense's
// derived term set and returns those above the threshold, strongest
// first, capped at the configured maximum. Scoring is pure, so large
// corpora are scored on the worker pool; ordering is identical to the
// sequential path.
func (d *Discoverer) DiscoverRelated(ctx context.Context, description, category string, notes []Note) []ScoredNote {
	terms := SearchTerms(description, category)
	if len(terms) == 0 || len(notes) == 0 {
		return nil
	}

	d.logger.Debug("starting discovery",
		"description", description, "terms", terms, "candidates", len(notes))

	scores := make([]float64, len(notes))
	if len(notes) >= parallelCutoff {
		d.scoreParallel(ctx, notes, terms, category, scores)
	} else {
		for i, note := range notes {
			scores[i] = Relevance(note, terms, category)
		}
	}

	scored := make([]ScoredNote, 0, len(notes))
	for i, note := range notes {
		if scores[i] >= d.threshold {
			scored = append(scored, ScoredNote{Note: note, Score: scores[i]})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > d.maxLinks {
		scored = scored[:d.maxLinks]
	}

	d.logger.Debug("discovery complete", "related", len(scored))
	if len(scored) == 0 {
		return nil
	}
	return scored
}

func (d *Discoverer) scoreParallel(ctx context.Context, notes []Note, terms []string, category string, scores []float64) {
	var wg sync.WaitGroup
	for i := range notes {
		if ctx.Err() != nil {
			break
		}
		i := i
		wg.Add(1)
		if err := d.pool.Submit(func() {
			defer wg.Done()
			scores[i] = Relevance(notes[i], terms, category)
		}); err != nil {
			// Pool rejected the task (released or overloaded); score inline.
			scores[i] = Relevance(notes[i], terms, category)
			wg.Done()
		}
	}
	wg.Wait()
}
