// Sort command sets or flips the view's sort column.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort <column>",
	Short: "Sort by a column",
	Long: `Sort orders the view by the given column. Sorting by the column the
view is already sorted on flips the direction; a new column starts
ascending. The choice persists across runs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "sort:", err)
			os.Exit(exitSysError)
		}
		defer close()

		if err := sess.SetSort(args[0]); err != nil {
			fail("sort", err)
		}

		view := sess.View()
		fmt.Printf("Sorting by %s %s\n", view.SortColumn, view.SortOrder)
		return nil
	},
}
