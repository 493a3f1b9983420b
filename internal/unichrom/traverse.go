package unichrom

// traverse is for finding the Hamiltonian path through a sequence graph:
// the path from the root that visits every node exactly once, following
// parent -> child edges only. The problem is NP-complete in general but the
// graphs here are guaranteed sparse (fragments glue uniquely), so the
// exhaustive search stays tractable and rarely backtracks in practice.

// frame is one node on the search stack along with the iteration state
// over its children.
type frame struct {
	n        *node
	children []*node
	next     int
}

// hamiltonianPath searches the graph for a path from the root that visits
// every node exactly once. The search is depth-first with backtracking and
// runs on an explicit stack so memory is bounded by the fragment count
// rather than goroutine stack depth.
//
// A branch is only accepted at a node with no children, and only when the
// path covers the whole graph. The second return is false if no such path
// exists.
func (g graph) hamiltonianPath(root *node) ([]*node, bool) {
	if root == nil {
		return nil, false
	}

	visited := make(map[*node]bool, len(g))
	path := make([]*node, 0, len(g))
	stack := make([]frame, 0, len(g))

	// enter marks the node and pushes a frame for its children
	enter := func(n *node) {
		visited[n] = true
		path = append(path, n)

		children := make([]*node, 0, len(n.children))
		for c := range n.children {
			children = append(children, c)
		}
		stack = append(stack, frame{n: n, children: children})
	}

	enter(root)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// a childless node ends the path. it's only a success when every
		// node was visited on the way down
		if len(top.children) == 0 && len(path) == len(g) {
			return path, true
		}

		// offer the next unvisited child, if any remain
		descended := false
		for top.next < len(top.children) {
			child := top.children[top.next]
			top.next++

			if visited[child] {
				continue // already on the path, would cycle
			}

			enter(child)
			descended = true
			break
		}
		if descended {
			continue
		}

		// no child leads anywhere: unwind this node before giving the
		// previous frame its turn
		visited[top.n] = false
		path = path[:len(path)-1]
		stack = stack[:len(stack)-1]
	}

	return nil, false
}
