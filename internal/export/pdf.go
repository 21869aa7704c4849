package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/ofekshp/TableCore/pkg/types"
)

// PDF renders the snapshot as a landscape A4 table, one page or more,
// repeating nothing fancier than a shaded header row.
func PDF(w io.Writer, title string, columns []types.Column, rows []types.Row) error {
	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetTitle(title, false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	doc.Ln(2)

	pageWidth, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(columns)+1)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for _, col := range columns {
		doc.CellFormat(colWidth, 8, col.Title, "1", 0, "L", true, 0, "")
	}
	doc.CellFormat(colWidth, 8, noteHeader, "1", 1, "L", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for _, col := range columns {
			doc.CellFormat(colWidth, 7, row.CellOrZero(col).Display(), "1", 0, "L", false, 0, "")
		}
		doc.CellFormat(colWidth, 7, row.Note, "1", 1, "L", false, 0, "")
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}
