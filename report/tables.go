package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/statespace"
)

// Space prints the start state, goals and size of sp.
func Space[S comparable](p *Printer, sp *statespace.Space[S]) error {
	t := p.newTable()
	t.AppendRows([]table.Row{
		{"Start state", fmt.Sprint(sp.Start())},
		{"Goal state(s)", formatStates(sp.Goals())},
		{"States", sp.NumStates()},
		{"Transitions", sp.NumTransitions()},
	})

	return p.render("State space", t)
}

// Result prints one search outcome.
func Result[S comparable](p *Printer, res *search.Result[S]) error {
	t := p.newTable()
	found := "no"
	if res.Found {
		found = "yes"
	}
	cost := "-"
	if len(res.Path) > 0 {
		cost = formatCost(res.Cost)
	}
	t.AppendRows([]table.Row{
		{"Found", found},
		{"States visited", res.Visited},
		{"Path length", res.Len()},
		{"Total cost", cost},
		{"Path", formatPath(res.Path)},
	})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: pathWidth}})

	return p.render(res.Algorithm.Title(), t)
}

// Comparison prints several outcomes on the same space side by side.
func Comparison[S comparable](p *Printer, results []*search.Result[S]) error {
	t := p.newTable()
	t.AppendHeader(table.Row{"Algorithm", "Found", "Visited", "Length", "Cost", "Cost-ordered"})
	for _, r := range results {
		cost := "-"
		if len(r.Path) > 0 {
			cost = formatCost(r.Cost)
		}
		t.AppendRow(table.Row{r.Algorithm, r.Found, r.Visited, r.Len(), cost, r.CostTracked})
	}
	t.SetColumnConfigs(rightAligned(3, 4, 5))

	return p.render("Comparison", t)
}

// Optimism prints the outcome of heuristic.CheckOptimism.
func Optimism[S comparable](p *Printer, r *heuristic.OptimismResult[S]) error {
	verdict := "Heuristic is optimistic."
	if !r.Optimistic {
		verdict = "Heuristic is not optimistic."
	}
	if len(r.Violations) == 0 {
		return p.Line("%s (%d states checked)", verdict, r.Checked)
	}
	if len(r.Violations) > MaxListedViolations {
		return p.Line("%s %d violations, omitting output.", verdict, len(r.Violations))
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"State", "h(s)", "h*(s)", "Cheapest route"})
	for _, v := range r.Violations {
		t.AppendRow(table.Row{fmt.Sprint(v.State), formatCost(v.Estimate), formatCost(v.Optimal), formatPath(v.Route)})
	}
	t.SetColumnConfigs(rightAligned(2, 3))

	return p.render(verdict, t)
}

// Consistency prints the outcome of heuristic.CheckConsistency.
func Consistency[S comparable](p *Printer, r *heuristic.ConsistencyResult[S]) error {
	verdict := "Heuristic is consistent."
	if !r.Consistent {
		verdict = "Heuristic is not consistent."
	}
	if len(r.Violations) == 0 {
		return p.Line("%s (%d transitions checked)", verdict, r.Checked)
	}
	if len(r.Violations) > MaxListedViolations {
		return p.Line("%s %d violations, omitting output.", verdict, len(r.Violations))
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"From", "To", "h(from)", "h(to)", "Cost"})
	for _, v := range r.Violations {
		t.AppendRow(table.Row{fmt.Sprint(v.From), fmt.Sprint(v.To), formatCost(v.FromEstimate), formatCost(v.ToEstimate), formatCost(v.Cost)})
	}
	t.SetColumnConfigs(rightAligned(3, 4, 5))

	return p.render(verdict, t)
}

// Check prints both parts of a heuristic.Report.
func Check[S comparable](p *Printer, rep *heuristic.Report[S]) error {
	if err := Optimism(p, rep.Optimism); err != nil {
		return err
	}

	return Consistency(p, rep.Consistency)
}
