package report

import (
	"bytes"
	"testing"

	"recargos-bot/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleCalc() domain.LaborCalculation {
	calc := domain.NewLaborCalculation()
	calc.Breakdown = append(calc.Breakdown,
		domain.PayBreakdownLine{
			Category:    domain.CategoryRegular,
			Description: domain.CategoryRegular.Description(),
			Hours:       7,
			Rate:        decimal.NewFromInt(10000),
			Amount:      decimal.NewFromInt(70000),
		},
		domain.PayBreakdownLine{
			Category:    domain.CategoryOvertimeNight,
			Description: domain.CategoryOvertimeNight.Description(),
			Hours:       4,
			Rate:        decimal.NewFromInt(17500),
			Amount:      decimal.NewFromInt(70000),
		},
	)
	calc.TotalHours = 11
	calc.TotalBasePay = decimal.NewFromInt(110000)
	calc.TotalExtraPay = decimal.NewFromInt(30000)
	calc.TotalPay = decimal.NewFromInt(140000)
	return calc
}

func TestFormatCOP(t *testing.T) {
	cases := map[string]string{
		"0":           "$0",
		"999":         "$999",
		"1000":        "$1.000",
		"153500":      "$153.500",
		"16666.6667":  "$16.667",
		"-2500":       "-$2.500",
		"12345678.49": "$12.345.678",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCOP(decimal.RequireFromString(in)), in)
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "8", FormatHours(8))
	assert.Equal(t, "1,5", FormatHours(1.5))
	assert.Equal(t, "1,67", FormatHours(5.0/3))
	assert.Equal(t, "0", FormatHours(0))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "Semana 2024-03-04", sampleCalc()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	cell := func(ref string) string {
		v, err := f.GetCellValue(sheetName, ref)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Semana 2024-03-04", cell("A1"))
	assert.Equal(t, "Categoría", cell("A3"))
	assert.Equal(t, "regular", cell("A4"))
	assert.Equal(t, "overtime_night", cell("A5"))
	assert.Equal(t, "Horas totales", cell("A7"))
	assert.Equal(t, "Total", cell("A15"))
	assert.Equal(t, "140000", cell("E15"))
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "Turno 2024-03-05", sampleCalc()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteEmptyCalculation(t *testing.T) {
	var xlsx, pdf bytes.Buffer
	require.NoError(t, WriteXLSX(&xlsx, "vacío", domain.NewLaborCalculation()))
	require.NoError(t, WritePDF(&pdf, "vacío", domain.NewLaborCalculation()))
	assert.NotZero(t, xlsx.Len())
	assert.NotZero(t, pdf.Len())
}
