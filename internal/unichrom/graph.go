// Package unichrom reconstructs a chromosome from the set of overlapping
// fragments it was uniquely split into. Fragments are joined into a sequence
// graph (one node per fragment, an edge per gluable overlap) and the
// chromosome is read off the Hamiltonian path from the graph's root to its
// terminal node.
package unichrom

// node is a single fragment within a sequence graph. It carries both the
// node and edge bookkeeping for its fragment.
type node struct {
	// seq is the fragment this node represents. Set at creation, never mutated.
	seq string

	// parents are the nodes whose fragments this node's fragment is overlaid onto
	parents map[*node]bool

	// children maps an overlaying node to the index in this node's fragment
	// at which the child's fragment is overlaid
	children map[*node]int
}

// overlapFor returns the overlap index stored on the edge to the child.
// The second return is false if the passed node is not a child of this one.
func (n *node) overlapFor(child *node) (int, bool) {
	index, ok := n.children[child]
	return index, ok
}

// graph is a sequence graph: a mapping from each fragment to its node.
// Every node reachable from a node in the graph is itself in the graph.
type graph map[string]*node

// add ensures a node exists for the fragment and returns it.
// Adding a fragment already in the graph is a no-op.
func (g graph) add(seq string) *node {
	if n, ok := g[seq]; ok {
		return n
	}

	n := &node{
		seq:      seq,
		parents:  make(map[*node]bool),
		children: make(map[*node]int),
	}
	g[seq] = n
	return n
}

// addOverlap records a parent -> child edge carrying the overlap index.
// Both endpoints' adjacency records are updated together, so an edge is
// always visible from both of its nodes. Nodes missing from the graph are
// created; a duplicate edge is a no-op.
func (g graph) addOverlap(parent, child string, index int) {
	p := g.add(parent)
	c := g.add(child)

	if _, ok := p.children[c]; ok {
		return
	}

	p.children[c] = index
	c.parents[p] = true
}

// root returns the single node with no parents. The second return is false
// if no node, or more than one, qualifies.
func (g graph) root() (*node, bool) {
	return g.oneWayNode(func(n *node) int { return len(n.parents) })
}

// terminal returns the single node with no children. The second return is
// false if no node, or more than one, qualifies.
func (g graph) terminal() (*node, bool) {
	return g.oneWayNode(func(n *node) int { return len(n.children) })
}

// oneWayNode finds the single node whose degree, per the passed count, is
// zero. Used for both the root (in-degree) and the terminal (out-degree).
func (g graph) oneWayNode(degree func(*node) int) (*node, bool) {
	var found *node
	for _, n := range g {
		if degree(n) != 0 {
			continue
		}
		if found != nil {
			return nil, false // ambiguous
		}
		found = n
	}

	if found == nil {
		return nil, false
	}
	return found, true
}

// buildGraph creates a sequence graph over the fragment set: a node per
// fragment and a directed edge for every ordered pair of fragments where
// the second can be glued onto the first. The second return is false for
// an empty fragment set.
func buildGraph(fragments []string) (graph, bool) {
	if len(fragments) == 0 {
		return nil, false
	}

	g := make(graph, len(fragments))
	for i, base := range fragments {
		g.add(base)

		for j, toOverlay := range fragments {
			if i == j {
				continue
			}

			if index, ok := overlapIndex(base, toOverlay); ok {
				g.addOverlap(base, toOverlay, index)
			}
		}
	}

	return g, true
}
