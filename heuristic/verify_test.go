package heuristic_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/statespace"
)

// chain is A→B(2), B→C(3) with goal C.
func chain(t *testing.T) *statespace.Space[string] {
	t.Helper()
	sp := statespace.New("A", "C")
	require.NoError(t, sp.AddTransition("A", "B", 2))
	require.NoError(t, sp.AddTransition("B", "C", 3))

	return sp
}

func TestFromTable(t *testing.T) {
	h := heuristic.FromTable(map[string]float64{"A": 1.5})

	v, err := h("A")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	_, err = h("Z")
	assert.ErrorIs(t, err, heuristic.ErrMissingValue)
	assert.Contains(t, err.Error(), "Z")

	v, err = heuristic.Table[string]{"B": 2}.Func()("B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestCheckOptimism_ChainExample(t *testing.T) {
	sp := chain(t)
	h := heuristic.FromTable(map[string]float64{"A": 6, "B": 4, "C": 0})

	res, err := heuristic.CheckOptimism(h, sp.Graph, sp.Goals())
	require.NoError(t, err)
	assert.False(t, res.Optimistic)
	assert.Equal(t, []heuristic.OptimismViolation[string]{
		{State: "A", Estimate: 6, Optimal: 5, Route: []string{"A", "B", "C"}},
		{State: "B", Estimate: 4, Optimal: 3, Route: []string{"B", "C"}},
	}, res.Violations)
	assert.Equal(t, 2, res.Checked) // C has no outgoing transitions
}

func TestCheckOptimism_ExactIsOptimistic(t *testing.T) {
	sp := chain(t)
	h := heuristic.FromTable(map[string]float64{"A": 5, "B": 3, "C": 0})

	res, err := heuristic.CheckOptimism(h, sp.Graph, sp.Goals())
	require.NoError(t, err)
	assert.True(t, res.Optimistic)
	assert.Empty(t, res.Violations)
}

func TestCheckOptimism_UnreachableNeverFlagged(t *testing.T) {
	sp := chain(t)
	require.NoError(t, sp.AddTransition("X", "Y", 1)) // no route to C
	h := heuristic.FromTable(map[string]float64{"A": 0, "B": 0, "C": 0, "X": 1e12, "Y": 0})

	res, err := heuristic.CheckOptimism(h, sp.Graph, sp.Goals())
	require.NoError(t, err)
	assert.True(t, res.Optimistic)
	assert.Equal(t, 3, res.Checked)
}

func TestCheckOptimism_RouteFollowsCheapestPath(t *testing.T) {
	// S→A→G costs 2, S→G costs 10; only S is overestimated
	sp := statespace.New("S", "G")
	require.NoError(t, sp.AddTransition("S", "G", 10))
	require.NoError(t, sp.AddTransition("S", "A", 1))
	require.NoError(t, sp.AddTransition("A", "G", 1))
	require.NoError(t, sp.AddTransition("G", "Far", 50))
	h := heuristic.FromTable(map[string]float64{"S": 3, "A": 1, "G": 0})

	res, err := heuristic.CheckOptimism(h, sp.Graph, sp.Goals())
	require.NoError(t, err)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, []string{"S", "A", "G"}, res.Violations[0].Route)
	assert.Equal(t, 2.0, res.Violations[0].Optimal)
	assert.Equal(t, 3, res.Checked)
}

func TestCheckOptimism_NoGoals(t *testing.T) {
	sp := chain(t)

	res, err := heuristic.CheckOptimism(heuristic.Zero[string](), sp.Graph, nil)
	require.NoError(t, err)
	assert.True(t, res.Optimistic)
}

func TestCheckConsistency_Violation(t *testing.T) {
	g := statespace.NewGraph[string]()
	require.NoError(t, g.AddTransition("A", "B", 2))
	h := heuristic.FromTable(map[string]float64{"A": 5, "B": 2})

	res, err := heuristic.CheckConsistency(h, g)
	require.NoError(t, err)
	assert.False(t, res.Consistent)
	assert.Equal(t, []heuristic.ConsistencyViolation[string]{
		{From: "A", To: "B", FromEstimate: 5, ToEstimate: 2, Cost: 2},
	}, res.Violations)
	assert.Equal(t, 1, res.Checked)
}

func TestCheckConsistency_OptimisticButInconsistent(t *testing.T) {
	// h(B)=3 > h(A)+1, yet every estimate is below h*
	sp := statespace.New("S", "G")
	require.NoError(t, sp.AddTransition("S", "A", 4))
	require.NoError(t, sp.AddTransition("S", "B", 1))
	require.NoError(t, sp.AddTransition("B", "A", 1))
	require.NoError(t, sp.AddTransition("A", "G", 5))
	h := heuristic.FromTable(map[string]float64{"S": 0, "A": 0, "B": 3, "G": 0})

	rep, err := heuristic.Check(h, sp)
	require.NoError(t, err)
	assert.True(t, rep.Optimism.Optimistic)
	assert.False(t, rep.Consistency.Consistent)
	require.Len(t, rep.Consistency.Violations, 1)
	assert.Equal(t, "B", rep.Consistency.Violations[0].From)
	assert.Equal(t, 4, rep.Consistency.Checked)
}

func TestCheck_ZeroIsAlwaysFine(t *testing.T) {
	rep, err := heuristic.Check(heuristic.Zero[string](), chain(t))
	require.NoError(t, err)
	assert.True(t, rep.Optimism.Optimistic)
	assert.True(t, rep.Consistency.Consistent)
}

func TestCheck_Errors(t *testing.T) {
	sp := chain(t)

	_, err := heuristic.CheckOptimism[string](nil, sp.Graph, sp.Goals())
	assert.ErrorIs(t, err, heuristic.ErrNilHeuristic)
	_, err = heuristic.CheckConsistency(heuristic.Zero[string](), nil)
	assert.ErrorIs(t, err, heuristic.ErrNilGraph)
	_, err = heuristic.Check[string](heuristic.Zero[string](), nil)
	assert.ErrorIs(t, err, heuristic.ErrNilGraph)

	partial := heuristic.FromTable(map[string]float64{"A": 0})
	_, err = heuristic.CheckOptimism(partial, sp.Graph, sp.Goals())
	assert.ErrorIs(t, err, heuristic.ErrMissingValue)
	_, err = heuristic.CheckConsistency(partial, sp.Graph)
	assert.ErrorIs(t, err, heuristic.ErrMissingValue)

	boom := errors.New("boom")
	_, err = heuristic.Check(func(string) (float64, error) { return math.NaN(), boom }, sp)
	assert.ErrorIs(t, err, boom)
}
