package unichrom

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/NickHolt/unique-chromosome-solver/config"
	"github.com/NickHolt/unique-chromosome-solver/internal/store"
	"github.com/spf13/cobra"
)

// openLibrary opens the local fragment library at the configured path
func openLibrary() *store.Store {
	s, err := store.Open(config.New().Library)
	if err != nil {
		stderr.Fatalln(err)
	}
	return s
}

// LibraryAddCmd accepts a cobra command, parses a FASTA file and saves its
// fragment set to the local library under the passed name
func LibraryAddCmd(cmd *cobra.Command, args []string) {
	in, _ := cmd.Flags().GetString("in")
	name, _ := cmd.Flags().GetString("name")

	fragments, err := read(in)
	if err != nil {
		stderr.Fatalln(err)
	}

	s := openLibrary()
	defer s.Close()

	if err := s.AddSet(name, fragments); err != nil {
		stderr.Fatalln(err)
	}
	fmt.Printf("added %s with %d fragments\n", name, len(fragments))
}

// LibraryListCmd accepts a cobra command and logs the fragment sets saved
// in the local library
func LibraryListCmd(cmd *cobra.Command, args []string) {
	s := openLibrary()
	defer s.Close()

	sets, err := s.Sets()
	if err != nil {
		stderr.Fatalln(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "name\tfragments\n")
	for _, set := range sets {
		fmt.Fprintf(w, "%s\t%d\n", set.Name, set.Count)
	}
	w.Flush()
}

// LibraryDeleteCmd accepts a cobra command and removes the named fragment
// set from the local library
func LibraryDeleteCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno fragment set name passed.")
	}
	name := args[0]

	s := openLibrary()
	defer s.Close()

	if err := s.DeleteSet(name); err != nil {
		stderr.Fatalln(err)
	}
	fmt.Printf("deleted %s\n", name)
}
