package report

import (
	"fmt"
	"io"

	"recargos-bot/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders a one-page pay statement for the calculation.
func WritePDF(w io.Writer, title string, calc domain.LaborCalculation) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(14)

	widths := []float64{40, 50, 25, 35, 35}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(221, 235, 247)
	for i, h := range breakdownHeader {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range calc.Breakdown {
		pdf.CellFormat(widths[0], 7, line.Category.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, tr(line.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, FormatHours(line.Hours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, FormatCOP(line.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, FormatCOP(line.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	rows := [][2]string{
		{"Horas totales", FormatHours(calc.TotalHours)},
		{"Horas extra", FormatHours(calc.OvertimeHours)},
		{"Horas nocturnas", FormatHours(calc.NightShiftHours)},
		{"Pago base", FormatCOP(calc.TotalBasePay)},
		{"Recargos", FormatCOP(calc.TotalExtraPay)},
		{"Total", FormatCOP(calc.TotalPay)},
	}
	for _, r := range rows {
		pdf.Cell(60, 7, tr(r[0]))
		pdf.CellFormat(40, 7, r[1], "", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
