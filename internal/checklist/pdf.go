package checklist

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// WritePDF renders days as a printable checklist at path. The core fonts
// only cover Latin-1, so other scripts come out as placeholders.
func WritePDF(path string, days []Day) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("carrot checklist", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Checklist")
	pdf.Ln(12)

	done, total := 0, 0
	for _, d := range days {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, d.Key)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		for _, it := range d.Items {
			status := "[ ]"
			if it.Checked {
				status = "[x]"
				done++
			}
			total++
			pdf.Cell(0, 8, tr(fmt.Sprintf("  %s %s", status, it.Title)))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Completed: %d / %d", done, total))

	return pdf.OutputFileAndClose(path)
}
