// Package batch generates entities over seed ranges, sequentially, lazily
// or across workers, and exports them as JSON or CSV.
//
// Every seed gets its own generator, so the output for a seed range is the
// same whichever entry point produced it.
package batch

import (
	"context"
	"iter"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/condax/entity"
	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/logger"
	"github.com/teranos/condax/version"
)

// Run describes one batch for export
type Run struct {
	ID        string    `json:"id"`
	Generator string    `json:"generator"`
	Version   string    `json:"version"`
	StartSeed int64     `json:"start_seed"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRun creates run metadata with a fresh ID
func NewRun(start int64, count int) Run {
	return Run{
		ID:        uuid.NewString(),
		Generator: version.Name,
		Version:   version.Get().SemverString(),
		StartSeed: start,
		Count:     count,
		CreatedAt: time.Now().UTC(),
	}
}

func checkCount(count int) error {
	if count < 0 {
		return errors.NewInvalidInputError("batch count must not be negative, got %d", count)
	}
	return nil
}

// Generate returns the entities for seeds start .. start+count-1 in order
func Generate(start int64, count int) ([]entity.Entity, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	out := make([]entity.Entity, 0, count)
	for i := 0; i < count; i++ {
		e, err := entity.Generate(start + int64(i))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Stream yields the entities for seeds start .. start+count-1 one at a time.
// It stops early when ctx is cancelled, yielding ctx.Err() once.
func Stream(ctx context.Context, start int64, count int) iter.Seq2[entity.Entity, error] {
	return func(yield func(entity.Entity, error) bool) {
		if err := checkCount(count); err != nil {
			yield(entity.Entity{}, err)
			return
		}
		for i := 0; i < count; i++ {
			if err := ctx.Err(); err != nil {
				yield(entity.Entity{}, err)
				return
			}
			e, err := entity.Generate(start + int64(i))
			if !yield(e, err) || err != nil {
				return
			}
		}
	}
}

// Parallel generates the same entities as Generate, splitting the seed range
// into contiguous chunks, one per worker. workers <= 0 means GOMAXPROCS.
func Parallel(ctx context.Context, start int64, count, workers int) ([]entity.Entity, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > count {
		workers = count
	}

	log := logger.LoggerFromContext(ctx).Named("batch")
	started := time.Now()
	out := make([]entity.Entity, count)

	g, ctx := errgroup.WithContext(ctx)
	for w, r := range Split(count, workers) {
		g.Go(func() error {
			log.Debugw("Worker started",
				"worker", w,
				logger.FieldSeed, start+int64(r.From),
				logger.FieldCount, r.To-r.From)
			for i := r.From; i < r.To; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				e, err := entity.Generate(start + int64(i))
				if err != nil {
					return err
				}
				out[i] = e
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "parallel batch")
	}

	log.Infow("Batch generated",
		logger.FieldBatchSize, count,
		logger.FieldWorkers, workers,
		logger.FieldDurationMS, time.Since(started).Milliseconds())
	return out, nil
}

// Range is a half-open index range [From, To)
type Range struct {
	From, To int
}

// Split divides count items into at most parts contiguous ranges whose sizes
// differ by at most one
func Split(count, parts int) []Range {
	if count <= 0 || parts <= 0 {
		return nil
	}
	if parts > count {
		parts = count
	}

	ranges := make([]Range, 0, parts)
	size, extra := count/parts, count%parts
	from := 0
	for p := 0; p < parts; p++ {
		n := size
		if p < extra {
			n++
		}
		ranges = append(ranges, Range{From: from, To: from + n})
		from += n
	}
	return ranges
}

// Filter returns the entities for which keep reports true
func Filter(entities []entity.Entity, keep func(entity.Entity) bool) []entity.Entity {
	var out []entity.Entity
	for _, e := range entities {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
