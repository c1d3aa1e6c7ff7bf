package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/statespace"
)

// scanLines calls fn for every non-blank, non-comment line with its 1-based
// line number and trimmed content.
func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}

	return sc.Err()
}

// splitKey splits "state: rest" at the colon ending the first field.
func splitKey(n int, line string) (string, []string, error) {
	fields := strings.Fields(line)
	key, ok := strings.CutSuffix(fields[0], ":")
	if !ok || key == "" {
		return "", nil, fmt.Errorf("%w: line %d: expected \"state:\", got %q", ErrSyntax, n, fields[0])
	}

	return key, fields[1:], nil
}

func parseTextSpace(r io.Reader) (*statespace.Space[string], error) {
	var (
		sp    *statespace.Space[string]
		start string
	)
	err := scanLines(r, func(n int, line string) error {
		switch {
		case start == "":
			start = line
			return nil
		case sp == nil:
			sp = statespace.New(start, strings.Fields(line)...)
			return nil
		}

		from, targets, err := splitKey(n, line)
		if err != nil {
			return err
		}
		sp.AddState(from)
		for _, tc := range targets {
			to, cost, ok := strings.Cut(tc, ",")
			if !ok || to == "" {
				return fmt.Errorf("%w: line %d: expected to,cost, got %q", ErrSyntax, n, tc)
			}
			c, err := strconv.ParseFloat(strings.TrimSpace(cost), 64)
			if err != nil {
				return fmt.Errorf("%w: line %d: cost %q: %v", ErrSyntax, n, cost, err)
			}
			if err := sp.AddTransition(from, strings.TrimSpace(to), c); err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if start == "" {
		return nil, ErrMissingStart
	}
	if sp == nil || len(sp.Goals()) == 0 {
		return nil, ErrMissingGoals
	}

	return sp, nil
}

func parseTextHeuristic(r io.Reader) (heuristic.Table[string], error) {
	t := make(heuristic.Table[string])
	err := scanLines(r, func(n int, line string) error {
		state, rest, err := splitKey(n, line)
		if err != nil {
			return err
		}
		if len(rest) != 1 {
			return fmt.Errorf("%w: line %d: expected one value for %q", ErrSyntax, n, state)
		}
		v, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: value %q: %v", ErrSyntax, n, rest[0], err)
		}
		t[state] = v

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func parseTextGrid(r io.Reader) ([][]int, error) {
	var grid [][]int
	err := scanLines(r, func(n int, line string) error {
		fields := strings.FieldsFunc(line, func(c rune) bool { return c == ',' || c == ' ' || c == '\t' })
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return fmt.Errorf("%w: line %d: cell %q: %v", ErrSyntax, n, f, err)
			}
			row[i] = v
		}
		grid = append(grid, row)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return grid, nil
}
