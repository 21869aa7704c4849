// Note command sets or clears a row's note.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage row notes",
}

var noteSetCmd = &cobra.Command{
	Use:   "set <id> <text>",
	Short: "Set a row's note",
	Long: `Set validates the note text and saves it. Notes are limited to 100
characters of plain text and cannot be saved empty; use "note clear" to
remove one.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rowID, text := args[0], args[1]

		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "note set:", err)
			os.Exit(exitSysError)
		}
		defer close()

		if err := sess.SaveNote(rowID, text); err != nil {
			fail("note set", err)
		}

		fmt.Printf("Saved note on row %s\n", rowID)
		return nil
	},
}

var noteClearCmd = &cobra.Command{
	Use:   "clear <id>",
	Short: "Clear a row's note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rowID := args[0]

		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "note clear:", err)
			os.Exit(exitSysError)
		}
		defer close()

		if err := sess.ClearNote(rowID); err != nil {
			fail("note clear", err)
		}

		fmt.Printf("Cleared note on row %s\n", rowID)
		return nil
	},
}

func init() {
	noteCmd.AddCommand(noteSetCmd)
	noteCmd.AddCommand(noteClearCmd)
}
