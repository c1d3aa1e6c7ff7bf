// lvsearch runs state-space search strategies and heuristic checks.
//
// Usage:
//
//	lvsearch search  <space> -a <alg> [-d depth] [-e heuristic|l1] [-c]
//	lvsearch check   <space> -e <heuristic|l1>
//	lvsearch compare <space> [-e heuristic|l1] [-d depth]
//	lvsearch info    <space>
//	lvsearch grid    <grid> --from x,y --to x,y -a <alg> [--conn 8]
//	lvsearch puzzle  <board> [--goal board] -a <alg> [--radius n]
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newApp().execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
