// SPDX-License-Identifier: MIT
// Package: acnet/network
//
// walk.go - read-only traversal helpers.

package network

// Walk visits n and its descendants depth-first in pre-order, calling fn
// with each node and its depth (n itself is depth 0). When fn returns false
// the children of that node are skipped. A nil n is a no-op.
// Complexity: O(total descendants).
func Walk(n Node, fn func(n Node, depth int) bool) {
	if n == nil || fn == nil {
		return
	}
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	if nw, ok := n.(Network); ok {
		for _, child := range nw.Children() {
			walk(child, depth+1, fn)
		}
	}
}

// Stats summarises the shape of a tree.
type Stats struct {
	Leaves   int // component count
	Networks int // composite count, including the root when it is one
	Depth    int // deepest level reached; a lone leaf has depth 0
}

// Summarize walks n and returns its Stats.
func Summarize(n Node) Stats {
	var s Stats
	Walk(n, func(v Node, depth int) bool {
		if v.Kind().IsNetwork() {
			s.Networks++
		} else {
			s.Leaves++
		}
		if depth > s.Depth {
			s.Depth = depth
		}
		return true
	})

	return s
}
