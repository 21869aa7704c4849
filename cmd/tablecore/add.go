// Add command creates a row from col=value arguments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [column=value...]",
	Short: "Add a row",
	Long: `Add opens a draft row, fills the given cells and commits it. The row
only lands in the table when every cell passes validation.

Example:
  tablecore add name="Jane Doe" age=34 isActive=true role=Admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}
		defer close()

		draft, err := sess.BeginAdd()
		if err != nil {
			fail("add", err)
		}

		for _, arg := range args {
			colID, v, err := parseCellArg(sess, arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "add:", err)
				os.Exit(exitUserError)
			}
			if err := sess.UpdateDraft(colID, v); err != nil {
				fail("add", err)
			}
		}

		if err := sess.Commit(); err != nil {
			fail("add", err)
		}

		fmt.Printf("Added row %s\n", draft.ID)
		return nil
	},
}
