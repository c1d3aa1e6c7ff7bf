package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/lvsearch/search"
)

func TestSearch_Telemetry(t *testing.T) {
	ctx := context.Background()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	t.Cleanup(func() {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
	})

	_, err := search.BreadthFirst(diamond(t), search.WithContext(ctx))
	require.NoError(t, err)
	_, err = search.DepthLimited(diamond(t), -1, search.WithContext(ctx))
	require.ErrorIs(t, err, search.ErrBadDepthBound)

	var ok, failed sdktrace.ReadOnlySpan
	for _, s := range rec.Ended() {
		switch s.Name() {
		case "search.bfs":
			ok = s
		case "search.ldfs":
			failed = s
		}
	}
	require.NotNil(t, ok)
	require.NotNil(t, failed)

	attrs := attribute.NewSet(ok.Attributes()...)
	found, _ := attrs.Value("search.found")
	assert.True(t, found.AsBool())
	visited, _ := attrs.Value("search.visited")
	assert.Equal(t, int64(3), visited.AsInt64())
	states, _ := attrs.Value("search.space_states")
	assert.Equal(t, int64(3), states.AsInt64()) // D has no outgoing transitions
	assert.Equal(t, codes.Error, failed.Status().Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	assert.True(t, names["lvsearch_search_runs_total"])
	assert.True(t, names["lvsearch_search_duration_seconds"])
	assert.True(t, names["lvsearch_search_visited_states"])
}
