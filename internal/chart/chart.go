// Package chart aggregates a table snapshot into the small series a
// dashboard draws: an age histogram, an active/inactive split and a
// per-role tally.
package chart

import (
	"fmt"
	"sort"

	"github.com/ofekshp/TableCore/pkg/types"
)

// bucketSpan groups ages five years at a time, so 30 through 34 share
// the "30-34" bar.
const bucketSpan = 5

// Bucket is one bar of a series.
type Bucket struct {
	Label string
	Count int
}

// AgeHistogram tallies the named number column into fixed-width buckets,
// ordered by bucket start. Rows without a numeric value for the column are
// skipped.
func AgeHistogram(rows []types.Row, columnID string) []Bucket {
	counts := make(map[int]int)
	for _, row := range rows {
		v, ok := row.Cell(columnID)
		if !ok || v.Kind() != types.TypeNumber {
			continue
		}
		start := (int(v.Num()) / bucketSpan) * bucketSpan
		counts[start]++
	}

	starts := make([]int, 0, len(counts))
	for start := range counts {
		starts = append(starts, start)
	}
	sort.Ints(starts)

	buckets := make([]Bucket, 0, len(starts))
	for _, start := range starts {
		buckets = append(buckets, Bucket{
			Label: fmt.Sprintf("%d-%d", start, start+bucketSpan-1),
			Count: counts[start],
		})
	}
	return buckets
}

// ActiveSplit counts the named boolean column into an Active and an
// Inactive bucket, in that order.
func ActiveSplit(rows []types.Row, columnID string) []Bucket {
	var active, inactive int
	for _, row := range rows {
		v, ok := row.Cell(columnID)
		if !ok || v.Kind() != types.TypeBoolean {
			continue
		}
		if v.Bool() {
			active++
		} else {
			inactive++
		}
	}
	return []Bucket{
		{Label: "Active", Count: active},
		{Label: "Inactive", Count: inactive},
	}
}

// ValueCounts tallies the named string or select column per distinct value,
// ordered alphabetically.
func ValueCounts(rows []types.Row, columnID string) []Bucket {
	counts := make(map[string]int)
	for _, row := range rows {
		v, ok := row.Cell(columnID)
		if !ok || v.IsBlank() {
			continue
		}
		if v.Kind() != types.TypeString && v.Kind() != types.TypeSelect {
			continue
		}
		counts[v.Str()]++
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	buckets := make([]Bucket, 0, len(labels))
	for _, label := range labels {
		buckets = append(buckets, Bucket{Label: label, Count: counts[label]})
	}
	return buckets
}
