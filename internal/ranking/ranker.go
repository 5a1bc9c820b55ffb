// Package ranking compares several candidate outputs against one reference
// concurrently and orders them by similarity.
package ranking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aleister1102/goldencopy/internal/common"
	"github.com/aleister1102/goldencopy/internal/config"
	"github.com/aleister1102/goldencopy/internal/differ"
	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Comparer scores one candidate output against the reference.
type Comparer interface {
	Compare(reference, candidate string) *models.Comparison
}

// Ranker runs one comparison per candidate, bounded by MaxConcurrency
type Ranker struct {
	comparer Comparer
	config   config.RankerConfig
	logger   zerolog.Logger
}

// NewRanker creates a new Ranker. A non-positive concurrency limit runs
// comparisons one at a time.
func NewRanker(comparer Comparer, cfg config.RankerConfig, logger zerolog.Logger) *Ranker {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 1
	}
	return &Ranker{
		comparer: comparer,
		config:   cfg,
		logger:   logger.With().Str("component", "Ranker").Logger(),
	}
}

type outcome struct {
	comparison *models.Comparison
	overlap    float64
	err        error
}

// Rank compares every candidate with reference and returns one result per
// candidate. Comparisons that time out or panic are kept as failed results.
// The returned error is the context's error when ctx ended before all
// comparisons finished.
//
// A timed-out comparison is reported immediately but is not interrupted: its
// goroutine keeps its CPU and diff tables, which grow with the product of the
// two token counts, until Compare returns. Callers ranking large inputs
// should bound input size as well as time.
func (r *Ranker) Rank(ctx context.Context, reference string, candidates []models.Candidate) ([]models.RankedResult, error) {
	results := make([]models.RankedResult, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.MaxConcurrency)

	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			results[i] = r.compareOne(gCtx, reference, candidate)
			return nil
		})
	}
	_ = g.Wait()

	SortResults(results)

	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
	}
	r.logger.Info().
		Int("candidates", len(candidates)).
		Int("failed", failed).
		Msg("Ranking complete")

	return results, ctx.Err()
}

// compareOne runs a single comparison under the configured timeout
func (r *Ranker) compareOne(ctx context.Context, reference string, candidate models.Candidate) models.RankedResult {
	start := time.Now()
	result := models.RankedResult{Candidate: candidate.Name}

	if timeout := r.config.ComparisonTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- outcome{err: common.NewComparisonError(candidate.Name, fmt.Sprint(rec), common.ErrComparisonPanicked)}
			}
		}()
		cmp := r.comparer.Compare(reference, candidate.Output)
		done <- outcome{
			comparison: cmp,
			overlap:    differ.SemanticOverlap(reference, candidate.Output),
		}
	}()

	var out outcome
	select {
	case out = <-done:
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			out.err = common.NewComparisonError(candidate.Name, "deadline exceeded", common.ErrTimeout)
		} else {
			out.err = common.NewComparisonError(candidate.Name, "cancelled", ctx.Err())
		}
	}

	if out.err == nil && out.comparison == nil {
		out.err = common.NewComparisonError(candidate.Name, "no comparison produced", nil)
	}

	result.Duration = time.Since(start)
	if out.err != nil {
		r.logger.Warn().Err(out.err).Str("candidate", candidate.Name).Str("cause", common.GetRootCause(out.err).Error()).Msg("Comparison failed")
		result.Error = out.err.Error()
		return result
	}

	result.Comparison = out.comparison
	result.SemanticOverlap = out.overlap
	r.logger.Debug().
		Str("candidate", candidate.Name).
		Str("mode", string(out.comparison.Mode)).
		Float64("similarity", out.comparison.Similarity).
		Dur("duration", result.Duration).
		Msg("Comparison done")
	return result
}

// SortResults orders results by similarity, then semantic overlap, then
// candidate name, with failed results last, and assigns ranks starting at
// 1. Failed results keep rank 0.
func SortResults(results []models.RankedResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Failed() != b.Failed() {
			return !a.Failed()
		}
		if !a.Failed() {
			if a.Comparison.Similarity != b.Comparison.Similarity {
				return a.Comparison.Similarity > b.Comparison.Similarity
			}
			if a.SemanticOverlap != b.SemanticOverlap {
				return a.SemanticOverlap > b.SemanticOverlap
			}
		}
		return a.Candidate < b.Candidate
	})

	for i := range results {
		if results[i].Failed() {
			results[i].Rank = 0
			continue
		}
		results[i].Rank = i + 1
	}
}
