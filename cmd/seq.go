package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// cookieTime is the HTTP cookie date layout, with a four digit year
const cookieTime = "Monday, 02-Jan-2006 15:04:05 MST"

// seqCmd is for fetching a single sequence and writing its record
var seqCmd = &cobra.Command{
	Use:                        "seq [A-number]",
	Short:                      "Fetch a sequence and its metadata",
	Args:                       cobra.ExactArgs(1),
	RunE:                       seqExec,
	SuggestionsMinimumDistance: 2,
	Example:                    "  oeis seq A000045",
	Long: `Fetch a sequence by its A-number and write its name, terms and the
non-empty sections of its entry (formula, comments, example, crossrefs...).

--full replaces the few dozen terms on the entry's page with every term
in its b-file. That's a far larger download.`,
	Aliases: []string{"sequence", "get"},
}

// set flags
func init() {
	seqCmd.Flags().BoolP("full", "f", false, "load every term from the sequence's b-file")
	seqCmd.Flags().BoolP("json", "j", false, "write the record as JSON")

	RootCmd.AddCommand(seqCmd)
}

func seqExec(cmd *cobra.Command, args []string) error {
	full, _ := cmd.Flags().GetBool("full")
	asJSON, _ := cmd.Flags().GetBool("json")

	s, err := fetch(cmd, args[0], full)
	if err != nil {
		return err
	}

	rec := s.Record()
	rec.Terms = s.Terms()
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), rec)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "id\t%s\n", rec.ID)
	fmt.Fprintf(writer, "name\t%s\n", rec.Name)
	fmt.Fprintf(writer, "url\t%s\n", rec.URL)
	fmt.Fprintf(writer, "offset\t%d\n", rec.Offset)
	fmt.Fprintf(writer, "keywords\t%s\n", strings.Join(rec.Keywords, ","))
	if rec.Author != "" {
		fmt.Fprintf(writer, "author\t%s\n", rec.Author)
	}
	if !rec.Created.IsZero() {
		fmt.Fprintf(writer, "created\t%s\n", rec.Created.Format(cookieTime))
	}
	fmt.Fprintf(writer, "terms\t%s\n", joinTerms(rec.Terms, ","))
	writer.Flush()

	sections := []struct{ title, text string }{
		{"Formula", rec.Formula},
		{"Comments", rec.Comments},
		{"Example", rec.Example},
		{"Crossrefs", rec.Crossrefs},
	}
	for _, section := range sections {
		if section.text != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n%s\n", section.title, section.text)
		}
	}
	return nil
}
