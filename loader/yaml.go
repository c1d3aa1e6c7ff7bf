package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/statespace"
)

// spaceDoc is the YAML state space document. Transitions is kept as a raw
// mapping node so that states are inserted in document order.
type spaceDoc struct {
	Start       string    `yaml:"start"`
	Goals       []string  `yaml:"goals"`
	Transitions yaml.Node `yaml:"transitions"`
}

type transitionDoc struct {
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

type heuristicDoc struct {
	Heuristic map[string]float64 `yaml:"heuristic"`
}

type gridDoc struct {
	Grid [][]int `yaml:"grid"`
}

func parseYAMLSpace(data []byte) (*statespace.Space[string], error) {
	var doc spaceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if doc.Start == "" {
		return nil, ErrMissingStart
	}
	if len(doc.Goals) == 0 {
		return nil, ErrMissingGoals
	}

	sp := statespace.New(doc.Start, doc.Goals...)
	tr := &doc.Transitions
	if tr.Kind == 0 {
		return sp, nil // no transitions key
	}
	if tr.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: transitions must be a mapping", ErrSyntax, tr.Line)
	}
	for i := 0; i+1 < len(tr.Content); i += 2 {
		key, val := tr.Content[i], tr.Content[i+1]
		var edges []transitionDoc
		if err := val.Decode(&edges); err != nil {
			return nil, fmt.Errorf("%w: line %d: transitions of %q: %v", ErrSyntax, val.Line, key.Value, err)
		}
		sp.AddState(key.Value)
		for _, e := range edges {
			if e.To == "" {
				return nil, fmt.Errorf("%w: line %d: transition of %q without target", ErrSyntax, val.Line, key.Value)
			}
			if err := sp.AddTransition(key.Value, e.To, e.Cost); err != nil {
				return nil, fmt.Errorf("line %d: %w", val.Line, err)
			}
		}
	}

	return sp, nil
}

func parseYAMLHeuristic(data []byte) (heuristic.Table[string], error) {
	var doc heuristicDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if doc.Heuristic == nil {
		return nil, fmt.Errorf("%w: missing heuristic mapping", ErrSyntax)
	}

	return heuristic.Table[string](doc.Heuristic), nil
}

func parseYAMLGrid(data []byte) ([][]int, error) {
	var doc gridDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return doc.Grid, nil
}
