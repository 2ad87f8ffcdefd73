package service

import (
	"errors"
	"testing"
	"time"

	"recargos-bot/internal/domain"
	"recargos-bot/pkg/calendar"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}

func shift(t *testing.T, date, start, end string, salary int64) domain.WorkShift {
	t.Helper()
	return domain.WorkShift{
		Date:       mustDate(t, date),
		StartTime:  start,
		EndTime:    end,
		BaseSalary: decimal.NewFromInt(salary),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func assertInvariants(t *testing.T, calc domain.LaborCalculation) {
	t.Helper()
	assert.True(t, calc.TotalBasePay.Add(calc.TotalExtraPay).Equal(calc.TotalPay), "base+extra != total")
	assert.InDelta(t, calc.TotalHours, calc.BreakdownHours(), 1e-9, "breakdown hours must partition the shift")
	assert.True(t, calc.OvertimePay.Equal(calc.TotalExtraPay))
	assert.True(t, calc.NightShiftPay.IsZero())
	assert.True(t, calc.HolidayPay.IsZero())
	assert.True(t, calc.SundayPay.IsZero())
}

// 2024-03-05 is a Tuesday, 2024-03-06 a Wednesday, 2024-03-03 a Sunday.

func TestRegularWeekdayShift(t *testing.T) {
	calc, err := NewPayCalculator(nil).CalculateShiftPay(shift(t, "2024-03-05", "08:00", "16:00", 80000))
	require.NoError(t, err)
	assertInvariants(t, calc)

	require.Len(t, calc.Breakdown, 1)
	line := calc.Breakdown[0]
	assert.Equal(t, domain.CategoryRegular, line.Category)
	assert.Equal(t, 8.0, line.Hours)
	assertDecimal(t, "10000", line.Rate)
	assertDecimal(t, "80000", line.Amount)
	assertDecimal(t, "80000", calc.TotalPay)
	assertDecimal(t, "0", calc.TotalExtraPay)
	assert.Equal(t, 8.0, calc.RegularHours)
	assert.Equal(t, 0.0, calc.OvertimeHours)
	assert.Empty(t, calc.SurchargeByCategory)
}

func TestOvernightWeekdayShift(t *testing.T) {
	calc, err := NewPayCalculator(nil).CalculateShiftPay(shift(t, "2024-03-06", "22:00", "06:00", 80000))
	require.NoError(t, err)
	assertInvariants(t, calc)

	// no day hours: all eight night hours fall inside the regular allotment
	require.Len(t, calc.Breakdown, 1)
	line := calc.Breakdown[0]
	assert.Equal(t, domain.CategoryNight, line.Category)
	assert.Equal(t, 8.0, line.Hours)
	assertDecimal(t, "13500", line.Rate)
	assertDecimal(t, "108000", line.Amount)
	assert.Equal(t, 8.0, calc.NightShiftHours)
	assertDecimal(t, "80000", calc.TotalBasePay)
	assertDecimal(t, "28000", calc.TotalExtraPay)
	assertDecimal(t, "28000", calc.SurchargeByCategory[domain.CategoryNight])
}

func TestLongWeekdayShiftSplitsOvertime(t *testing.T) {
	// 14:00-02:00: 7 day hours, 5 night hours, 12 total.
	calc, err := NewPayCalculator(nil).CalculateShiftPay(shift(t, "2024-03-05", "14:00", "02:00", 80000))
	require.NoError(t, err)
	assertInvariants(t, calc)

	require.Len(t, calc.Breakdown, 3)
	assert.Equal(t, domain.CategoryRegular, calc.Breakdown[0].Category)
	assert.Equal(t, 7.0, calc.Breakdown[0].Hours)
	assert.Equal(t, domain.CategoryNight, calc.Breakdown[1].Category)
	assert.Equal(t, 1.0, calc.Breakdown[1].Hours)
	assertDecimal(t, "13500", calc.Breakdown[1].Rate)
	assert.Equal(t, domain.CategoryOvertimeNight, calc.Breakdown[2].Category)
	assert.Equal(t, 4.0, calc.Breakdown[2].Hours)
	assertDecimal(t, "17500", calc.Breakdown[2].Rate)
	assertDecimal(t, "70000", calc.Breakdown[2].Amount)

	assert.Equal(t, 8.0, calc.RegularHours)
	assert.Equal(t, 4.0, calc.OvertimeHours)
	assertDecimal(t, "120000", calc.TotalBasePay)
	assertDecimal(t, "33500", calc.TotalExtraPay)
	assertDecimal(t, "153500", calc.TotalPay)
}

func TestDayOvertime(t *testing.T) {
	// 06:00-16:00: ten day hours.
	calc, err := NewPayCalculator(nil).CalculateShiftPay(shift(t, "2024-03-05", "06:00", "16:00", 80000))
	require.NoError(t, err)
	assertInvariants(t, calc)

	require.Len(t, calc.Breakdown, 2)
	assert.Equal(t, domain.CategoryRegular, calc.Breakdown[0].Category)
	assert.Equal(t, 8.0, calc.Breakdown[0].Hours)
	assert.Equal(t, domain.CategoryOvertimeDay, calc.Breakdown[1].Category)
	assert.Equal(t, 2.0, calc.Breakdown[1].Hours)
	assertDecimal(t, "12500", calc.Breakdown[1].Rate)
	assertDecimal(t, "25000", calc.Breakdown[1].Amount)
}

func TestSundayShift(t *testing.T) {
	calc, err := NewPayCalculator(nil).CalculateShiftPay(shift(t, "2024-03-03", "08:00", "16:00", 80000))
	require.NoError(t, err)
	assertInvariants(t, calc)

	require.Len(t, calc.Breakdown, 1)
	line := calc.Breakdown[0]
	assert.Equal(t, domain.CategorySundayDay, line.Category)
	assert.Equal(t, 8.0, line.Hours)
	assertDecimal(t, "17500", line.Rate)
	assertDecimal(t, "140000", line.Amount)
	assert.Equal(t, 8.0, calc.SundayHours)
	assert.Equal(t, 0.0, calc.HolidayHours)
}

func TestSundayNightHasNoOvertimeSplit(t *testing.T) {
	// 12:00-02:00 on a Sunday: 9 day hours, 5 night hours, no overtime lines.
	calc, err := NewPayCalculator(nil).CalculateShiftPay(shift(t, "2024-03-03", "12:00", "02:00", 80000))
	require.NoError(t, err)
	assertInvariants(t, calc)

	require.Len(t, calc.Breakdown, 2)
	assert.Equal(t, domain.CategorySundayDay, calc.Breakdown[0].Category)
	assert.Equal(t, 9.0, calc.Breakdown[0].Hours)
	assert.Equal(t, domain.CategorySundayNight, calc.Breakdown[1].Category)
	assert.Equal(t, 5.0, calc.Breakdown[1].Hours)
	assertDecimal(t, "18500", calc.Breakdown[1].Rate)
	assert.Equal(t, 6.0, calc.OvertimeHours)
}

func TestHolidayShift(t *testing.T) {
	calc, err := NewPayCalculator(nil).CalculateShiftPay(shift(t, "2024-01-01", "08:00", "16:00", 80000))
	require.NoError(t, err)
	assertInvariants(t, calc)

	require.Len(t, calc.Breakdown, 1)
	line := calc.Breakdown[0]
	assert.Equal(t, domain.CategoryHolidayDay, line.Category)
	assertDecimal(t, "17500", line.Rate)
	assertDecimal(t, "140000", line.Amount)
	assert.Equal(t, 8.0, calc.HolidayHours)
}

func TestHolidayTakesPrecedenceOverSunday(t *testing.T) {
	// 2023-01-01 was a Sunday.
	cal, err := calendar.NewStaticCalendar(calendar.Holiday{Date: "2023-01-01"})
	require.NoError(t, err)
	sh := shift(t, "2023-01-01", "20:00", "23:00", 80000)
	require.True(t, calendar.IsSunday(sh.Date))

	calc, err := NewPayCalculator(cal).CalculateShiftPay(sh)
	require.NoError(t, err)
	assertInvariants(t, calc)

	require.Len(t, calc.Breakdown, 2)
	assert.Equal(t, domain.CategoryHolidayDay, calc.Breakdown[0].Category)
	assert.Equal(t, 1.0, calc.Breakdown[0].Hours)
	assert.Equal(t, domain.CategoryHolidayNight, calc.Breakdown[1].Category)
	assert.Equal(t, 2.0, calc.Breakdown[1].Hours)
	assertDecimal(t, "21000", calc.Breakdown[1].Rate)
	assert.Equal(t, 3.0, calc.HolidayHours)
	assert.Equal(t, 0.0, calc.SundayHours)
}

func TestInjectedCalendarReplacesDefault(t *testing.T) {
	calc, err := NewPayCalculator(&calendar.StaticCalendar{}).CalculateShiftPay(shift(t, "2024-01-01", "08:00", "16:00", 80000))
	require.NoError(t, err)
	// 2024-01-01 is a Monday and not in the empty calendar.
	require.Len(t, calc.Breakdown, 1)
	assert.Equal(t, domain.CategoryRegular, calc.Breakdown[0].Category)
}

func TestZeroSalaryKeepsHours(t *testing.T) {
	calc, err := NewPayCalculator(nil).CalculateShiftPay(shift(t, "2024-03-05", "18:00", "04:00", 0))
	require.NoError(t, err)
	assertInvariants(t, calc)

	require.NotEmpty(t, calc.Breakdown)
	for _, l := range calc.Breakdown {
		assert.Greater(t, l.Hours, 0.0)
		assert.True(t, l.Amount.IsZero())
		assert.True(t, l.Rate.IsZero())
	}
	assert.Equal(t, 10.0, calc.TotalHours)
	assert.True(t, calc.TotalPay.IsZero())
}

func TestFractionalMinutes(t *testing.T) {
	calc, err := NewPayCalculator(nil).CalculateShiftPay(shift(t, "2024-03-05", "08:20", "10:00", 80000))
	require.NoError(t, err)
	assertInvariants(t, calc)
	assert.InDelta(t, 5.0/3, calc.TotalHours, 1e-9)
	assert.InDelta(t, 16666.67, calc.TotalPay.InexactFloat64(), 0.01)
}

func TestShortDayShiftsProduceOneRegularLine(t *testing.T) {
	calc := NewPayCalculator(nil)
	for _, c := range [][2]string{{"06:00", "14:00"}, {"09:30", "12:45"}, {"13:00", "21:00"}, {"06:00", "06:01"}} {
		res, err := calc.CalculateShiftPay(shift(t, "2024-03-05", c[0], c[1], 96000))
		require.NoError(t, err)
		require.Len(t, res.Breakdown, 1, "%v", c)
		assert.Equal(t, domain.CategoryRegular, res.Breakdown[0].Category)
		assert.Equal(t, res.TotalHours, res.Breakdown[0].Hours)
		assertInvariants(t, res)
	}
}

func TestCalculateShiftPayValidation(t *testing.T) {
	calc := NewPayCalculator(nil)

	_, err := calc.CalculateShiftPay(shift(t, "2024-03-05", "8:00", "16:00", 80000))
	assert.True(t, errors.Is(err, domain.ErrInvalidTimeFormat))
	assert.ErrorIs(t, err, calendar.ErrInvalidTime)

	_, err = calc.CalculateShiftPay(shift(t, "2024-03-05", "08:00", "24:00", 80000))
	assert.ErrorIs(t, err, domain.ErrInvalidTimeFormat)

	_, err = calc.CalculateShiftPay(shift(t, "2024-03-05", "08:00", "16:00", -1))
	assert.ErrorIs(t, err, domain.ErrInvalidSalary)

	_, err = calc.CalculateShiftPay(shift(t, "2024-03-05", "08:00", "08:00", 80000))
	assert.ErrorIs(t, err, domain.ErrZeroLengthShift)

	_, err = calc.CalculateShiftPay(domain.WorkShift{StartTime: "08:00", EndTime: "16:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
