// Package report renders search results and heuristic checks as tables.
// It only consumes the public result types; nothing here affects a search.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// MaxListedViolations is the largest violation list printed in full;
// longer lists are reduced to their count.
const MaxListedViolations = 10

// pathWidth wraps long paths in result tables.
const pathWidth = 80

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("report: unknown output format")

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode resolves "ascii" or "markdown" (also "md").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "ascii", "text":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return ASCII, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Printer writes tables to w in one Mode.
type Printer struct {
	w    io.Writer
	mode Mode
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, m Mode) *Printer {
	return &Printer{w: w, mode: m}
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	if p.mode == ASCII {
		t.SetStyle(table.StyleLight)
	}
	t.Style().Format.Header = text.FormatDefault

	return t
}

// render prints title on its own line, never wrapped, then t.
func (p *Printer) render(title string, t table.Writer) error {
	if err := p.Line("%s", title); err != nil {
		return err
	}
	var out string
	switch p.mode {
	case Markdown:
		out = t.RenderMarkdown()
	default:
		out = t.Render()
	}
	_, err := fmt.Fprintln(p.w, out)

	return err
}

// Line writes one formatted line outside any table.
func (p *Printer) Line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

func rightAligned(cols ...int) []table.ColumnConfig {
	out := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		out[i] = table.ColumnConfig{Number: c, Align: text.AlignRight}
	}

	return out
}

func formatCost(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}

	return fmt.Sprintf("%g", v)
}

func formatPath[S comparable](path []S) string {
	if len(path) == 0 {
		return "-"
	}
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = fmt.Sprint(s)
	}

	return strings.Join(parts, " => ")
}

func formatStates[S comparable](states []S) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = fmt.Sprintf("%v", s)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
