package report

import (
	"fmt"
	"io"

	"recargos-bot/internal/domain"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Recargos"

var breakdownHeader = []string{"Categoría", "Descripción", "Horas", "Valor hora", "Valor"}

// WriteXLSX writes the calculation as a one-sheet workbook: the breakdown
// table followed by the totals.
func WriteXLSX(w io.Writer, title string, calc domain.LaborCalculation) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	set := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheetName, cell, v)
	}

	if err := set(1, 1, title); err != nil {
		return err
	}
	for i, h := range breakdownHeader {
		if err := set(i+1, 3, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetName, "A3", "E3", headerStyle); err != nil {
		return err
	}

	row := 4
	for _, line := range calc.Breakdown {
		values := []any{line.Category.String(), line.Description, line.Hours, money(line.Rate), money(line.Amount)}
		for i, v := range values {
			if err := set(i+1, row, v); err != nil {
				return err
			}
		}
		row++
	}

	row++
	totals := []struct {
		label string
		value any
	}{
		{"Horas totales", calc.TotalHours},
		{"Horas ordinarias", calc.RegularHours},
		{"Horas extra", calc.OvertimeHours},
		{"Horas nocturnas", calc.NightShiftHours},
		{"Horas dominicales", calc.SundayHours},
		{"Horas festivas", calc.HolidayHours},
		{"Pago base", money(calc.TotalBasePay)},
		{"Recargos", money(calc.TotalExtraPay)},
		{"Total", money(calc.TotalPay)},
	}
	for _, t := range totals {
		if err := set(1, row, t.label); err != nil {
			return err
		}
		if err := set(5, row, t.value); err != nil {
			return err
		}
		row++
	}
	if err := f.SetColWidth(sheetName, "A", "B", 22); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
