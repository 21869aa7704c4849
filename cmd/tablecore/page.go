// Page command moves the view to another page.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page <n>",
	Short: "Go to a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "page: %q is not a number\n", args[0])
			os.Exit(exitUserError)
		}

		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "page:", err)
			os.Exit(exitSysError)
		}
		defer close()

		if err := sess.SetPage(n); err != nil {
			fmt.Fprintln(os.Stderr, "page:", err)
			os.Exit(exitUserError)
		}

		rows, totalPages := sess.Page()
		if err := printRows(sess, rows); err != nil {
			return err
		}
		if !flagJSON {
			fmt.Printf("page %d of %d\n", sess.View().CurrentPage, totalPages)
		}
		return nil
	},
}
