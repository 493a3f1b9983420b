package cmd

import (
	"github.com/NickHolt/unique-chromosome-solver/internal/unichrom"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reconstructCmd represents the reconstruct command
var reconstructCmd = &cobra.Command{
	Use:                        "reconstruct",
	Short:                      "Reconstruct a chromosome from a FASTA file of fragments",
	Run:                        unichrom.ReconstructCmd,
	SuggestionsMinimumDistance: 3,
	Aliases:                    []string{"rec", "assemble"},
	Long: `Reconstruct a chromosome from the set of fragments it was split into.

The fragments must satisfy the unique-assembly guarantee: every adjacent
pair overlaps by more than half its length and only a single chromosome
can be glued together from the full set. The command fails, rather than
guessing, when the fragments admit zero or several assemblies.

Fragments are read from a multi-FASTA file (-i) or from a set saved in the
local library (-s, see 'unichrom db'). The reconstructed chromosome is
written as JSON to the output file (-o) or to stdout.`,
}

// set flags
func init() {
	rootCmd.AddCommand(reconstructCmd)

	// Flags for specifying the paths to the input file and output file
	reconstructCmd.Flags().StringP("in", "i", "", "input FASTA file with the fragment set")
	reconstructCmd.Flags().StringP("out", "o", "", "output file name <JSON>")
	reconstructCmd.Flags().StringP("set", "s", "", "name of a fragment set in the local library")

	// Bind the parameters to viper
	viper.BindPFlag("in", reconstructCmd.Flags().Lookup("in"))
	viper.BindPFlag("out", reconstructCmd.Flags().Lookup("out"))
	viper.BindPFlag("set", reconstructCmd.Flags().Lookup("set"))
}
