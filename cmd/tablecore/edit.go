// Edit command updates cells of an existing row.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <column=value...>",
	Short: "Edit cells of a row",
	Long: `Edit opens the row as a draft, applies the given cell changes and
commits. Untouched cells keep their values; the whole edit is dropped if
any changed cell fails validation.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rowID := args[0]

		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "edit:", err)
			os.Exit(exitSysError)
		}
		defer close()

		if _, err := sess.BeginEdit(rowID); err != nil {
			fail("edit", err)
		}

		for _, arg := range args[1:] {
			colID, v, err := parseCellArg(sess, arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "edit:", err)
				os.Exit(exitUserError)
			}
			if err := sess.UpdateDraft(colID, v); err != nil {
				fail("edit", err)
			}
		}

		if err := sess.Commit(); err != nil {
			fail("edit", err)
		}

		fmt.Printf("Updated row %s\n", rowID)
		return nil
	},
}
