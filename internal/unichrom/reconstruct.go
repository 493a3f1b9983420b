package unichrom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NickHolt/unique-chromosome-solver/config"
	"github.com/NickHolt/unique-chromosome-solver/internal/store"
	"github.com/spf13/cobra"
)

var (
	// ErrNoUniqueEnds is returned when the fragment graph doesn't have
	// exactly one root (no parents) and one terminal node (no children).
	// The fragment set then can't satisfy the unique-assembly guarantee.
	ErrNoUniqueEnds = errors.New("fragments lack a unique first and last fragment")

	// ErrNoPath is returned when no ordering of the fragments glues every
	// one of them into a single chromosome.
	ErrNoPath = errors.New("no gluing order joins every fragment")
)

// Reconstruct joins the fragments back into the single chromosome they were
// split from. The fragments must have been split such that each adjacent
// pair overlaps by more than half its length and only one assembly exists;
// the first path found is returned without checking for others.
//
// Fails with ErrNoUniqueEnds or ErrNoPath when the fragment set doesn't
// meet that guarantee (or is empty).
func Reconstruct(fragments []string) (string, error) {
	g, ok := buildGraph(dedupe(fragments))
	if !ok {
		return "", ErrNoUniqueEnds
	}

	return reconstructFromGraph(g)
}

// reconstructFromGraph checks the graph is well-formed, finds the
// Hamiltonian path through it, and reads the chromosome off the path.
func reconstructFromGraph(g graph) (string, error) {
	root, ok := g.root()
	if !ok {
		return "", ErrNoUniqueEnds
	}
	if _, ok := g.terminal(); !ok {
		return "", ErrNoUniqueEnds
	}

	path, ok := g.hamiltonianPath(root)
	if !ok {
		return "", ErrNoPath
	}

	return joinPath(path), nil
}

// joinPath concatenates the fragments along the path. Every fragment but
// the last contributes its prefix up to the overlap index on the edge
// actually walked; the terminal fragment is appended whole.
func joinPath(path []*node) string {
	var chromosome strings.Builder
	for i := 0; i < len(path)-1; i++ {
		index, _ := path[i].overlapFor(path[i+1])
		chromosome.WriteString(path[i].seq[:index])
	}
	chromosome.WriteString(path[len(path)-1].seq)

	return chromosome.String()
}

// dedupe collapses the fragments to set semantics, keeping first-seen order.
func dedupe(fragments []string) []string {
	seen := make(map[string]bool, len(fragments))

	var set []string
	for _, f := range fragments {
		if seen[f] {
			continue
		}
		seen[f] = true
		set = append(set, f)
	}
	return set
}

// validate reports whether every fragment appears in the chromosome.
// A necessary but not sufficient check on the reconstruction.
func validate(fragments []string, chromosome string) bool {
	for _, f := range fragments {
		if !strings.Contains(chromosome, f) {
			return false
		}
	}
	return true
}

// ReconstructCmd accepts a cobra command, reads the input fragment set,
// reconstructs the chromosome and writes the result
func ReconstructCmd(cmd *cobra.Command, args []string) {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	setName, _ := cmd.Flags().GetString("set")

	fragments, input, err := gatherFragments(in, setName)
	if err != nil {
		stderr.Fatalln(err)
	}

	chromosome, err := Reconstruct(fragments)
	if err != nil {
		stderr.Fatalf("failed to reconstruct %s: %v", input, err)
	}

	if _, err := write(out, input, fragments, chromosome); err != nil {
		stderr.Fatalln(err)
	}
}

// gatherFragments resolves the input fragment set from either a FASTA file
// or a named set in the local library. Also returns the input's name for
// the output report.
func gatherFragments(in, setName string) (fragments []string, input string, err error) {
	switch {
	case setName != "":
		s, err := store.Open(config.New().Library)
		if err != nil {
			return nil, "", err
		}
		defer s.Close()

		fragments, err = s.Set(setName)
		if err != nil {
			return nil, "", err
		}
		return fragments, setName, nil
	case in != "":
		fragments, err = read(in)
		if err != nil {
			return nil, "", err
		}
		return fragments, in, nil
	}

	return nil, "", fmt.Errorf("no input fragments: pass an input file (-i) or a library set name (-s)")
}
