package search

// Node is one entry of a search tree: a state reached through Parent.
// Depth is 0 iff Parent is nil, otherwise Parent.Depth+1.
// Many nodes may share an ancestor; the chain is released once the result
// path has been copied out.
type Node[S comparable] struct {
	State     S
	Depth     int
	Parent    *Node[S]
	Cost      float64 // g: summed transition cost from the root
	Heuristic float64 // h: estimate attached when the node was generated
}

// Root returns a depth-0 node for s.
func Root[S comparable](s S) *Node[S] {
	return &Node[S]{State: s}
}

// Child returns the node reached from n through a transition to s with cost c.
func (n *Node[S]) Child(s S, c float64) *Node[S] {
	return &Node[S]{State: s, Depth: n.Depth + 1, Parent: n, Cost: n.Cost + c}
}

// Priority returns f = Cost + Heuristic.
func (n *Node[S]) Priority() float64 { return n.Cost + n.Heuristic }

// Path returns the states from the root to n, both included.
// The result has length Depth+1. Complexity: O(Depth).
func (n *Node[S]) Path() []S {
	out := make([]S, n.Depth+1)
	for cur, i := n, n.Depth; cur != nil; cur, i = cur.Parent, i-1 {
		out[i] = cur.State
	}

	return out
}
