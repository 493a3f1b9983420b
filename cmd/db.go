package cmd

import (
	"github.com/NickHolt/unique-chromosome-solver/internal/unichrom"
	"github.com/spf13/cobra"
)

// dbCmd groups commands for managing the local library of fragment sets
var dbCmd = &cobra.Command{
	Use:                        "db",
	Short:                      "Manage the local library of fragment sets",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"library"},
	Long: `Manage the local library of fragment sets.

Fragment sets parsed from FASTA files can be saved under a name and
reconstructed later with 'unichrom reconstruct -s <name>'. The library
lives in a SQLite database (see the 'library' setting).`,
}

// dbAddCmd saves a fragment set to the library
var dbAddCmd = &cobra.Command{
	Use:                        "add",
	Short:                      "Save a FASTA file's fragment set to the library",
	Run:                        unichrom.LibraryAddCmd,
	SuggestionsMinimumDistance: 2,
}

// dbListCmd lists the saved fragment sets
var dbListCmd = &cobra.Command{
	Use:                        "list",
	Short:                      "List the fragment sets saved in the library",
	Run:                        unichrom.LibraryListCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"ls"},
}

// dbDeleteCmd removes a saved fragment set
var dbDeleteCmd = &cobra.Command{
	Use:                        "delete [name]",
	Short:                      "Delete a fragment set from the library",
	Run:                        unichrom.LibraryDeleteCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"rm"},
}

// set flags
func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbAddCmd)
	dbCmd.AddCommand(dbListCmd)
	dbCmd.AddCommand(dbDeleteCmd)

	dbAddCmd.Flags().StringP("in", "i", "", "input FASTA file with the fragment set")
	dbAddCmd.Flags().StringP("name", "n", "", "name to save the fragment set under")
	dbAddCmd.MarkFlagRequired("in")
	dbAddCmd.MarkFlagRequired("name")
}
