package cmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
)

// termsCmd is for writing a slice of a sequence's terms
var termsCmd = &cobra.Command{
	Use:                        "terms [A-number]",
	Short:                      "Write a slice of a sequence's terms",
	Args:                       cobra.ExactArgs(1),
	RunE:                       termsExec,
	SuggestionsMinimumDistance: 2,
	Example: `  oeis terms A000045 --first 10
  oeis terms A000045 --start 2 --stop 20 --step 3
  oeis terms A000045 --nth 6`,
	Long: `Write terms of a sequence, one per line. Indexes count from zero over the
loaded terms: the entry's page by default, its b-file with --full.

Terms in [start, stop) are written every step terms, unless --first
or --nth is set.`,
}

// set flags
func init() {
	termsCmd.Flags().BoolP("full", "f", false, "load every term from the sequence's b-file")
	termsCmd.Flags().Int("start", 0, "index of the first term")
	termsCmd.Flags().Int("stop", -1, "index after the last term (default all loaded terms)")
	termsCmd.Flags().Int("step", 1, "distance between written terms")
	termsCmd.Flags().IntP("first", "n", -1, "write the first n terms")
	termsCmd.Flags().Int("nth", -1, "write the single term at this index")

	RootCmd.AddCommand(termsCmd)
}

func termsExec(cmd *cobra.Command, args []string) error {
	full, _ := cmd.Flags().GetBool("full")
	start, _ := cmd.Flags().GetInt("start")
	stop, _ := cmd.Flags().GetInt("stop")
	step, _ := cmd.Flags().GetInt("step")

	s, err := fetch(cmd, args[0], full)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("nth") {
		nth, _ := cmd.Flags().GetInt("nth")
		term, err := s.NthTerm(nth)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), term)
		return nil
	}

	var terms []*big.Int
	if cmd.Flags().Changed("first") {
		first, _ := cmd.Flags().GetInt("first")
		terms, err = s.First(first)
	} else {
		if !cmd.Flags().Changed("stop") {
			stop = s.Len()
		}
		terms, err = s.Subsequence(start, stop, step)
	}
	if err != nil {
		return err
	}
	for _, t := range terms {
		fmt.Fprintln(cmd.OutOrStdout(), t)
	}
	return nil
}
