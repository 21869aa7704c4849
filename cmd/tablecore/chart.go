// Chart command prints aggregate series over the filtered rows.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ofekshp/TableCore/internal/chart"
	"github.com/ofekshp/TableCore/pkg/types"
)

// barScale is the widest bar printed for the largest bucket.
const barScale = 40

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show aggregate charts",
	Long: `Chart renders simple text histograms over the rows matching the
current search: an age distribution in five-year buckets, an
active/inactive split and a per-role tally.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, close, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, "chart:", err)
			os.Exit(exitSysError)
		}
		defer close()

		rows := sess.FilteredSorted()

		series := map[string][]chart.Bucket{}
		for _, col := range sess.Columns() {
			switch col.Type {
			case types.TypeNumber:
				series[col.Title] = chart.AgeHistogram(rows, col.ID)
			case types.TypeBoolean:
				series[col.Title] = chart.ActiveSplit(rows, col.ID)
			case types.TypeSelect:
				series[col.Title] = chart.ValueCounts(rows, col.ID)
			}
		}

		if flagJSON {
			out, err := json.MarshalIndent(series, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal charts: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, col := range sess.Columns() {
			buckets, ok := series[col.Title]
			if !ok {
				continue
			}
			fmt.Printf("%s\n", col.Title)
			printBuckets(buckets)
			fmt.Println()
		}
		return nil
	},
}

func printBuckets(buckets []chart.Bucket) {
	max := 0
	width := 0
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
		if len(b.Label) > width {
			width = len(b.Label)
		}
	}

	for _, b := range buckets {
		bar := 0
		if max > 0 {
			bar = b.Count * barScale / max
		}
		fmt.Printf("  %-*s %4d %s\n", width, b.Label, b.Count, strings.Repeat("#", bar))
	}
}
