package unichrom

import "testing"

func Test_graph_addOverlap(t *testing.T) {
	g := make(graph)
	g.addOverlap("ATTAGACCTG", "AGACCTGCCG", 3)

	parent := g["ATTAGACCTG"]
	child := g["AGACCTGCCG"]
	if parent == nil || child == nil {
		t.Fatal("addOverlap() failed to create nodes for both fragments")
	}

	// the edge is visible from both endpoints
	if index, ok := parent.overlapFor(child); !ok || index != 3 {
		t.Errorf("parent overlapFor(child) = (%v, %v), want (3, true)", index, ok)
	}
	if !child.parents[parent] {
		t.Error("child is missing its parent after addOverlap()")
	}

	// a duplicate edge is a no-op, even with a different index
	g.addOverlap("ATTAGACCTG", "AGACCTGCCG", 7)
	if index, _ := parent.overlapFor(child); index != 3 {
		t.Errorf("duplicate addOverlap() changed the overlap index to %v", index)
	}
	if len(parent.children) != 1 || len(child.parents) != 1 {
		t.Error("duplicate addOverlap() added an edge")
	}
}

func Test_graph_root_terminal(t *testing.T) {
	g := make(graph)
	g.addOverlap("A", "B", 1)
	g.addOverlap("B", "C", 1)

	if root, ok := g.root(); !ok || root.seq != "A" {
		t.Errorf("root() = %v, want the parentless node A", root)
	}
	if term, ok := g.terminal(); !ok || term.seq != "C" {
		t.Errorf("terminal() = %v, want the childless node C", term)
	}

	// an isolated node makes both the root and the terminal ambiguous
	g.add("D")
	if _, ok := g.root(); ok {
		t.Error("root() resolved despite two parentless nodes")
	}
	if _, ok := g.terminal(); ok {
		t.Error("terminal() resolved despite two childless nodes")
	}
}

func Test_buildGraph(t *testing.T) {
	fragments := []string{
		"ATTAGACCTG",
		"CCTGCCGGAA",
		"AGACCTGCCG",
		"GCCGGAATAC",
	}

	g, ok := buildGraph(fragments)
	if !ok {
		t.Fatal("buildGraph() failed on a valid fragment set")
	}
	if len(g) != len(fragments) {
		t.Fatalf("buildGraph() created %d nodes, want %d", len(g), len(fragments))
	}

	// each fragment overlaps the next with 3 characters to spare
	wantEdges := [][2]string{
		{"ATTAGACCTG", "AGACCTGCCG"},
		{"AGACCTGCCG", "CCTGCCGGAA"},
		{"CCTGCCGGAA", "GCCGGAATAC"},
	}
	for _, edge := range wantEdges {
		index, ok := g[edge[0]].overlapFor(g[edge[1]])
		if !ok {
			t.Errorf("buildGraph() missing the edge %s -> %s", edge[0], edge[1])
			continue
		}
		if index != 3 {
			t.Errorf("edge %s -> %s carries index %d, want 3", edge[0], edge[1], index)
		}
	}

	if _, ok := buildGraph(nil); ok {
		t.Error("buildGraph() succeeded on an empty fragment set")
	}
}
