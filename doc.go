// Package lvsearch is a toolkit for exploring state spaces: uninformed and
// informed search strategies over an explicit transition graph, plus checks
// that tell whether a heuristic can be trusted.
//
// What is in the box?
//
//	statespace/   Graph (directed, weighted transitions) and Space (start + goals)
//	frontier/     Stack, Queue and Priority (insertion-order tie-break) frontiers
//	search/       bfs, dfs, ucs, ldfs, ids, gbfs, hcs and astar over a Space
//	dijkstra/     exact cost-to-go from a set of sources
//	heuristic/    heuristic tables plus optimism and consistency checks
//	gridgraph/    terrain grids as spaces, with Manhattan/Octile heuristics
//	puzzle/       the 8-puzzle as a space, with the Manhattan heuristic
//	loader/       text and YAML readers for spaces, heuristics and grids
//	report/       ASCII and Markdown tables for results and checks
//	cmd/lvsearch  the command-line front end
//
// Quick start:
//
//	sp := statespace.New("A", "D")
//	_ = sp.AddTransition("A", "B", 1)
//	_ = sp.AddTransition("B", "D", 1)
//	res, _ := search.AStar(sp, heuristic.Zero[string]())
//	fmt.Println(res.Path, res.Cost) // [A B D] 2
//
// Every strategy reports "no path" as Result.Found == false rather than as an
// error. States are any comparable type; costs are non-negative float64.
package lvsearch
