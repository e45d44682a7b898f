// SPDX-License-Identifier: MIT
// Package: acnet/network
//
// collection.go - the ordered inventory of top-level nodes.
//
// Indexing is 1-based throughout, matching the numbering printed by List.

package network

import (
	"fmt"
	"sync"
)

// Collection is an ordered, append-only list of owned top-level nodes.
// It is safe for concurrent use; the nodes it returns are not locked.
type Collection struct {
	mu    sync.RWMutex
	nodes []Node
}

// NewCollection returns a Collection owning nodes in order; nil entries
// are dropped.
func NewCollection(nodes ...Node) *Collection {
	c := &Collection{nodes: make([]Node, 0, len(nodes))}
	for _, n := range nodes {
		if n != nil {
			c.nodes = append(c.nodes, n)
		}
	}

	return c
}

// Append adds n at the end, taking ownership.
func (c *Collection) Append(n Node) error {
	if n == nil {
		return fmt.Errorf("Append: %w", ErrNilNode)
	}
	c.mu.Lock()
	c.nodes = append(c.nodes, n)
	c.mu.Unlock()

	return nil
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.nodes)
}

// At returns the entry at 1-based index i. The node is the owned original,
// not a copy; use SelectAndClone to obtain independent nodes.
func (c *Collection) At(i int) (Node, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i < 1 || i > len(c.nodes) {
		return nil, fmt.Errorf("At(%d): size %d: %w", i, len(c.nodes), ErrIndexOutOfRange)
	}

	return c.nodes[i-1], nil
}

// Nodes returns the entries in order, in a fresh slice.
func (c *Collection) Nodes() []Node {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Node, len(c.nodes))
	copy(out, c.nodes)

	return out
}

// SelectAndClone returns deep clones of the entries at the given 1-based
// indices, in request order. Repeats yield independent clones.
//
// All or nothing: if any index is outside [1, Len], no clone is produced
// and ErrIndexOutOfRange is returned.
//
// Complexity: O(k + Σ size of selected subtrees) for k indices.
func (c *Collection) SelectAndClone(indices ...int) ([]Node, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, i := range indices {
		if i < 1 || i > len(c.nodes) {
			return nil, fmt.Errorf("SelectAndClone(%d): size %d: %w", i, len(c.nodes), ErrIndexOutOfRange)
		}
	}
	out := make([]Node, len(indices))
	for k, i := range indices {
		out[k] = c.nodes[i-1].Clone()
	}

	return out, nil
}

// Clone returns a new Collection holding deep copies of every entry.
func (c *Collection) Clone() *Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := &Collection{nodes: make([]Node, len(c.nodes))}
	for i, n := range c.nodes {
		out.nodes[i] = n.Clone()
	}

	return out
}
