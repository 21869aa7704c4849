// Columns command inspects and toggles column visibility.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Show column definitions and visibility",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "columns:", err)
			os.Exit(exitSysError)
		}
		defer close()

		if flagJSON {
			out, err := json.MarshalIndent(sess.Columns(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal columns: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		view := sess.View()
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tTYPE\tVISIBLE")
		for _, col := range sess.Columns() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", col.ID, col.Title, col.Type, view.IsVisible(col.ID))
		}
		return w.Flush()
	},
}

var columnsToggleCmd = &cobra.Command{
	Use:   "toggle <column>",
	Short: "Toggle a column's visibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "columns toggle:", err)
			os.Exit(exitSysError)
		}
		defer close()

		if err := sess.ToggleColumnVisibility(args[0]); err != nil {
			fail("columns toggle", err)
		}

		if sess.View().IsVisible(args[0]) {
			fmt.Printf("Column %s is now visible\n", args[0])
		} else {
			fmt.Printf("Column %s is now hidden\n", args[0])
		}
		return nil
	},
}

var columnsShowAllCmd = &cobra.Command{
	Use:   "show-all",
	Short: "Make every column visible",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "columns show-all:", err)
			os.Exit(exitSysError)
		}
		defer close()

		sess.ShowAllColumns()
		fmt.Println("All columns visible")
		return nil
	},
}

var columnsHideAllCmd = &cobra.Command{
	Use:   "hide-all",
	Short: "Hide every column",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "columns hide-all:", err)
			os.Exit(exitSysError)
		}
		defer close()

		sess.HideAllColumns()
		fmt.Println("All columns hidden")
		return nil
	},
}

func init() {
	columnsCmd.AddCommand(columnsToggleCmd)
	columnsCmd.AddCommand(columnsShowAllCmd)
	columnsCmd.AddCommand(columnsHideAllCmd)
}
