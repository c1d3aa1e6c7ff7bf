package loader_test

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/loader"
	"github.com/katalvlaran/lvsearch/statespace"
)

func testdataPath(name string) string {
	_, f, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(f), "testdata", name)
}

var diamondEdges = []statespace.Edge[string]{
	{From: "A", To: "B", Cost: 1},
	{From: "A", To: "C", Cost: 4},
	{From: "B", To: "D", Cost: 1},
	{From: "C", To: "D", Cost: 1},
}

func TestLoadSpace(t *testing.T) {
	for _, name := range []string{"diamond.txt", "diamond.yaml"} {
		t.Run(name, func(t *testing.T) {
			sp, err := loader.LoadSpace(testdataPath(name))
			require.NoError(t, err)

			assert.Equal(t, "A", sp.Start())
			assert.Equal(t, []string{"D"}, sp.Goals())
			assert.Equal(t, []string{"A", "B", "C"}, sp.States())
			if diff := cmp.Diff(diamondEdges, sp.Edges()); diff != "" {
				t.Errorf("edges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadHeuristic(t *testing.T) {
	want := map[string]float64{"A": 2, "B": 1, "C": 1, "D": 0}
	for _, name := range []string{"diamond_h.txt", "diamond_h.yaml"} {
		t.Run(name, func(t *testing.T) {
			tab, err := loader.LoadHeuristic(testdataPath(name))
			require.NoError(t, err)
			if diff := cmp.Diff(want, map[string]float64(tab)); diff != "" {
				t.Errorf("table mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadGrid(t *testing.T) {
	want := [][]int{{1, 1, 1, 1}, {0, 0, 0, 1}, {1, 1, 1, 1}}
	for _, name := range []string{"terrain.txt", "terrain.yaml"} {
		g, err := loader.LoadGrid(testdataPath(name))
		require.NoError(t, err, name)
		if diff := cmp.Diff(want, g); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := loader.LoadSpace(testdataPath("nope.txt"))
	assert.Error(t, err)
}

func TestParseSpace_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		f    loader.Format
		err  error
		line string
	}{
		{"Empty", "# only a comment\n", loader.Text, loader.ErrMissingStart, ""},
		{"NoGoals", "A\n", loader.Text, loader.ErrMissingGoals, ""},
		{"NoColon", "A\nD\nA B,1\n", loader.Text, loader.ErrSyntax, "line 3"},
		{"NoCost", "A\nD\nA: B\n", loader.Text, loader.ErrSyntax, "line 3"},
		{"BadCost", "A\nD\n\nA: B,x\n", loader.Text, loader.ErrSyntax, "line 4"},
		{"NegativeCost", "A\nD\nA: B,-1\n", loader.Text, statespace.ErrBadCost, "line 3"},
		{"YAMLNoStart", "goals: [D]\n", loader.YAML, loader.ErrMissingStart, ""},
		{"YAMLNoGoals", "start: A\n", loader.YAML, loader.ErrMissingGoals, ""},
		{"YAMLBadTransitions", "start: A\ngoals: [D]\ntransitions: [1]\n", loader.YAML, loader.ErrSyntax, "line 3"},
		{"YAMLNoTarget", "start: A\ngoals: [D]\ntransitions:\n  A: [{cost: 1}]\n", loader.YAML, loader.ErrSyntax, ""},
		{"YAMLMalformed", "start: [\n", loader.YAML, loader.ErrSyntax, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.ParseSpace([]byte(tc.data), tc.f)
			require.ErrorIs(t, err, tc.err)
			if tc.line != "" {
				assert.Contains(t, err.Error(), tc.line)
			}
		})
	}
}

func TestParseSpace_StartIsGoalAndEmptyRow(t *testing.T) {
	sp, err := loader.ParseSpace([]byte("S\nS T\nS:\nT: S,0\n"), loader.Text)
	require.NoError(t, err)
	assert.True(t, sp.IsGoal("S"))
	assert.True(t, sp.HasState("S"))
	assert.Empty(t, sp.Successors("S"))
	assert.Equal(t, 1, sp.NumTransitions())
}

func TestParseHeuristic_Errors(t *testing.T) {
	for _, data := range []string{"A 1\n", "A: one\n", "A: 1 2\n"} {
		_, err := loader.ParseHeuristic([]byte(data), loader.Text)
		assert.ErrorIs(t, err, loader.ErrSyntax, data)
	}
	_, err := loader.ParseHeuristic([]byte("other: 1\n"), loader.YAML)
	assert.ErrorIs(t, err, loader.ErrSyntax)
}

func TestParseGrid_Errors(t *testing.T) {
	_, err := loader.ParseGrid([]byte("1 2\n3 x\n"), loader.Text)
	require.ErrorIs(t, err, loader.ErrSyntax)
	assert.True(t, strings.Contains(err.Error(), "line 2"))
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, loader.YAML, loader.FormatOf("a/b.YML"))
	assert.Equal(t, loader.YAML, loader.FormatOf("space.json"))
	assert.Equal(t, loader.Text, loader.FormatOf("space.txt"))
	assert.Equal(t, loader.Text, loader.FormatOf("space"))
}
