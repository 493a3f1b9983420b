package unichrom

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// read a FASTA file (by its path on the local FS) into a fragment set
func read(path string) (fragments []string, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %s", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %s", err)
	}
	contents := string(dat)

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, "fa") || strings.HasSuffix(lower, "fasta") || strings.HasPrefix(contents, ">") {
		return readFasta(path, contents)
	}

	return nil, fmt.Errorf("failed to parse %s: unrecognized file type", path)
}

// readFasta parses the multifasta contents into the set of fragments
// within. A '>' line starts a new fragment, a ';' line is a comment, and
// every other line accumulates onto the current fragment. Duplicate
// fragments collapse to one: the result has set semantics.
func readFasta(path, contents string) (fragments []string, err error) {
	seen := make(map[string]bool)
	var fragment strings.Builder

	flush := func() {
		if fragment.Len() == 0 {
			return
		}

		seq := fragment.String()
		if !seen[seq] {
			seen[seq] = true
			fragments = append(fragments, seq)
		}
		fragment.Reset()
	}

	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case line == "": // empty line
		case line[0] == ';': // comment
		case line[0] == '>': // fragment delimiter
			flush()
		default:
			fragment.WriteString(line)
		}
	}
	flush()

	// opened and parsed file but found nothing
	if len(fragments) < 1 {
		return nil, fmt.Errorf("failed to parse fragment(s) from %s", path)
	}

	return fragments, nil
}
