package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvsearch/statespace"
)

// Package-level tracer and meter for search runs.
var (
	tracer = otel.Tracer("lvsearch.search")
	meter  = otel.Meter("lvsearch.search")
)

// Metrics for search runs.
var (
	searchLatency metric.Float64Histogram
	searchTotal   metric.Int64Counter
	searchVisited metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchLatency, err = meter.Float64Histogram(
			"lvsearch_search_duration_seconds",
			metric.WithDescription("Duration of search runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchTotal, err = meter.Int64Counter(
			"lvsearch_search_runs_total",
			metric.WithDescription("Total number of search runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchVisited, err = meter.Int64Histogram(
			"lvsearch_search_visited_states",
			metric.WithDescription("Number of states expanded per search run"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSearchMetrics records metrics for a finished run.
func recordSearchMetrics(ctx context.Context, alg Algorithm, duration time.Duration, visited int, found, failed bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("algorithm", string(alg)),
		attribute.Bool("found", found),
		attribute.Bool("error", failed),
	)

	searchLatency.Record(ctx, duration.Seconds(), attrs)
	searchTotal.Add(ctx, 1, attrs)
	if !failed {
		searchVisited.Record(ctx, int64(visited), metric.WithAttributes(attribute.String("algorithm", string(alg))))
	}
}

// startSearchSpan creates a span for a search run.
func startSearchSpan(ctx context.Context, alg Algorithm, states, transitions int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "search."+string(alg),
		trace.WithAttributes(
			attribute.String("search.algorithm", string(alg)),
			attribute.Int("search.space_states", states),
			attribute.Int("search.space_transitions", transitions),
		),
	)
}

// setSearchSpanResult sets the result attributes on a search span.
func setSearchSpanResult(span trace.Span, found bool, visited, pathLen int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(
		attribute.Bool("search.found", found),
		attribute.Int("search.visited", visited),
		attribute.Int("search.path_length", pathLen),
	)
}

// observe validates the common inputs, applies opts and wraps fn with a
// span, metrics and a summary log record.
func observe[S comparable](alg Algorithm, sp *statespace.Space[S], opts []Option, fn func(Options) (*Result[S], error)) (*Result[S], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	o.Logger = o.Logger.With(slog.String("algorithm", string(alg)))

	ctx, span := startSearchSpan(o.Ctx, alg, sp.NumStates(), sp.NumTransitions())
	defer span.End()

	start := time.Now()
	res, err := fn(o)
	elapsed := time.Since(start)

	var (
		found   bool
		visited int
		pathLen int
	)
	if res != nil {
		found, visited, pathLen = res.Found, res.Visited, res.Len()
	}
	recordSearchMetrics(ctx, alg, elapsed, visited, found, err != nil)
	setSearchSpanResult(span, found, visited, pathLen, err)

	if err != nil {
		o.Logger.Debug("search failed", slog.Any("error", err))
		return nil, err
	}
	o.Logger.Debug("search finished",
		slog.Bool("found", found),
		slog.Int("visited", visited),
		slog.Int("path_length", pathLen),
		slog.Duration("elapsed", elapsed),
	)

	return res, nil
}
