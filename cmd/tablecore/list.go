// List command prints the current page of the derived view.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the current page of rows",
	Long: `List shows rows through the table's current view: the search filter,
sort order and column visibility all apply, and output is limited to the
current page unless --all is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer close()

		if listAll {
			return printRows(sess, sess.FilteredSorted())
		}

		rows, totalPages := sess.Page()
		if err := printRows(sess, rows); err != nil {
			return err
		}
		if !flagJSON {
			view := sess.View()
			fmt.Printf("page %d of %d\n", view.CurrentPage, totalPages)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "print every matching row, ignoring pagination")
}
