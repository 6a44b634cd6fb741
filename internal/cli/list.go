package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vanzue/bbmark/internal/search"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every discovered bookmark",
	Long: `List loads all bookmark files and prints the flattened entries, newest
first. With --json the full records are emitted for scripting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, entries := setup()
		defer func() { _ = log.Sync() }()

		results := search.Filter(entries, "")
		if listJSON {
			return printJSON(results)
		}
		return printTable(results)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "emit entries as JSON")
}

func printJSON(results []search.Result) error {
	entries := make([]any, 0, len(results))
	for _, r := range results {
		entries = append(entries, r.Entry)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func printTable(results []search.Result) error {
	if len(results) == 0 {
		fmt.Println("No browser bookmarks were detected")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range results {
		e := r.Entry
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Title, e.URL, e.SectionLabel(), e.TagLabel())
	}
	return w.Flush()
}
