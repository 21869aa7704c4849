// Package export renders a table snapshot to interchange formats. Callers
// pass the columns they want, in order, and the rows already filtered and
// sorted; pagination never applies to an export.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ofekshp/TableCore/pkg/types"
)

// noteHeader labels the synthetic trailing column carrying each row's note.
const noteHeader = "Note"

// CSV writes one header record followed by one record per row. Cell values
// use their display form, so numbers drop trailing zeros and booleans come
// out as true/false.
func CSV(w io.Writer, columns []types.Column, rows []types.Row) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(columns)+1)
	for _, col := range columns {
		header = append(header, col.Title)
	}
	header = append(header, noteHeader)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	record := make([]string, len(columns)+1)
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row.CellOrZero(col).Display()
		}
		record[len(columns)] = row.Note
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row %s: %w", row.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
