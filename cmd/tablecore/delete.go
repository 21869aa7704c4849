// Delete command removes a row by id.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a row by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rowID := args[0]

		if !deleteYes && !confirm(fmt.Sprintf("Delete row %s?", rowID)) {
			fmt.Println("Aborted")
			return nil
		}

		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}
		defer close()

		if err := sess.DeleteRow(rowID); err != nil {
			fail("delete", err)
		}

		fmt.Printf("Deleted row %s\n", rowID)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
}

// confirm asks a yes/no question on stdin and returns true on "y" or "yes".
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
