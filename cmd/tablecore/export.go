// Export command writes the filtered, sorted table to CSV or PDF.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ofekshp/TableCore/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <csv|pdf>",
	Short: "Export the table",
	Long: `Export writes every row matching the current search, in the current
sort order, with the currently visible columns. Pagination does not apply.

Output goes to stdout unless -o names a file.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "pdf"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		if format != "csv" && format != "pdf" {
			fmt.Fprintf(os.Stderr, "export: unknown format %q (valid: csv, pdf)\n", format)
			os.Exit(exitUserError)
		}

		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		defer close()

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				fmt.Fprintln(os.Stderr, "export:", err)
				os.Exit(exitSysError)
			}
			defer f.Close()
			out = f
		}

		cols := visibleColumns(sess)
		rows := sess.FilteredSorted()

		switch format {
		case "csv":
			err = export.CSV(out, cols, rows)
		case "pdf":
			err = export.PDF(out, "Tablecore", cols, rows)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}

		if exportOutput != "" {
			fmt.Printf("Wrote %d rows to %s\n", len(rows), exportOutput)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}
