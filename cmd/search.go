package cmd

import (
	"fmt"
	"math/big"
	"strings"
	"text/tabwriter"

	"github.com/jjtimmons/goeis/oeis"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// searchCmd is for finding sequences that contain a list of terms
var searchCmd = &cobra.Command{
	Use:                        "search [term]...",
	Short:                      "Search for sequences containing terms",
	Args:                       cobra.MinimumNArgs(1),
	RunE:                       searchExec,
	SuggestionsMinimumDistance: 2,
	Example: `  oeis search 1 2 3 5 8
  oeis search 1,2,3,5,8 --start 10 --results 25`,
	Long: `Search the OEIS for sequences containing the terms, in order. Terms are
space or comma separated. Matches are written with their A-number, name and URL.`,
	Aliases: []string{"lookup"},
}

// set flags
func init() {
	searchCmd.Flags().Int("start", 0, "number of matches to skip")
	searchCmd.Flags().IntP("results", "r", 10, "maximum number of matches to write")

	viper.BindPFlag("results", searchCmd.Flags().Lookup("results"))

	RootCmd.AddCommand(searchCmd)
}

func searchExec(cmd *cobra.Command, args []string) error {
	start, _ := cmd.Flags().GetInt("start")

	terms, err := parseTerms(args)
	if err != nil {
		return err
	}

	// zero takes the configured default
	seqs, err := oeis.Search(cmd.Context(), newClient(), terms, start, 0)
	if err != nil {
		return err
	}

	if len(seqs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no matches found")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "id\tname\tURL\t\n")
	for _, s := range seqs {
		rec := s.Record()
		fmt.Fprintf(writer, "%s\t%s\t%s\t\n", rec.ID, rec.Name, rec.URL)
	}
	return writer.Flush()
}

// parseTerms reads integers from args, each may hold a comma separated list
func parseTerms(args []string) ([]*big.Int, error) {
	terms := []*big.Int{}
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			term, ok := new(big.Int).SetString(field, 10)
			if !ok {
				return nil, fmt.Errorf("failed to parse term: %q is not an integer", field)
			}
			terms = append(terms, term)
		}
	}

	if len(terms) == 0 {
		return nil, fmt.Errorf("failed to parse terms: none in %v", args)
	}
	return terms, nil
}
