// Search command sets or clears the view's search term.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Filter rows by name",
	Long: `Search filters the view to rows whose name contains the term,
case-insensitively, and jumps back to the first page. Running search with
no term clears the filter.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := ""
		if len(args) == 1 {
			term = args[0]
		}

		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "search:", err)
			os.Exit(exitSysError)
		}
		defer close()

		sess.SetSearchTerm(term)

		rows := sess.FilteredSorted()
		if term == "" {
			fmt.Printf("Cleared search (%d rows)\n", len(rows))
		} else {
			fmt.Printf("%d rows match %q\n", len(rows), term)
		}
		return nil
	},
}
