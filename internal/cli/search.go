package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchJSON  bool
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run one query and print the ranked results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, entries := setup()
		defer func() { _ = log.Sync() }()

		query := strings.Join(args, " ")
		results := cfg.SearchMode().Filter(entries, query)
		if searchLimit > 0 && len(results) > searchLimit {
			results = results[:searchLimit]
		}

		if searchJSON {
			return printJSON(results)
		}
		if len(results) == 0 {
			if len(entries) == 0 {
				fmt.Println("No browser bookmarks were detected")
			} else {
				fmt.Printf("No bookmark matches %q\n", query)
			}
			return nil
		}
		return printTable(results)
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "emit results as JSON")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum number of results (0 = all)")
}
