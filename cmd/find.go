package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/jjtimmons/goeis/oeis"
	"github.com/spf13/cobra"
)

// findCmd is for finding a term within a sequence and its neighbors
var findCmd = &cobra.Command{
	Use:                        "find [A-number] [term]",
	Short:                      "Find a term in a sequence",
	Args:                       cobra.ExactArgs(2),
	RunE:                       findExec,
	SuggestionsMinimumDistance: 2,
	Example:                    "  oeis find A000045 1 -n 2",
	Long: `Find where a term occurs in a sequence, and the terms before and after its
first occurrence.

Only the loaded terms are searched: the entry's page by default, its b-file
with --full. A term past the loaded terms is reported as absent.`,
	Aliases: []string{"index"},
}

// set flags
func init() {
	findCmd.Flags().BoolP("full", "f", false, "load every term from the sequence's b-file")
	findCmd.Flags().IntP("instances", "n", 1, "number of occurrences to find")

	RootCmd.AddCommand(findCmd)
}

func findExec(cmd *cobra.Command, args []string) error {
	full, _ := cmd.Flags().GetBool("full")
	instances, _ := cmd.Flags().GetInt("instances")

	item, ok := new(big.Int).SetString(args[1], 10)
	if !ok {
		return fmt.Errorf("failed to parse term: %q is not an integer", args[1])
	}

	s, err := fetch(cmd, args[0], full)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !s.Contains(item) {
		fmt.Fprintf(out, "%s not in the %d loaded terms of %s\n", item, s.Len(), s.ID())
		return nil
	}

	indices := s.Find(item, instances)
	strIndices := make([]string, len(indices))
	for i, index := range indices {
		strIndices[i] = fmt.Sprint(index)
	}
	fmt.Fprintf(out, "indices\t%s\n", strings.Join(strIndices, ","))

	prev, err := s.Prev(item)
	if err := neighbor(out, "prev", prev, err); err != nil {
		return err
	}
	next, err := s.Next(item)
	return neighbor(out, "next", next, err)
}

// neighbor writes a term next to the one found, or "none" if it's at an end
func neighbor(out io.Writer, label string, term *big.Int, err error) error {
	if errors.Is(err, oeis.ErrIndex) {
		fmt.Fprintf(out, "%s\tnone\n", label)
		return nil
	} else if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\t%s\n", label, term)
	return nil
}
