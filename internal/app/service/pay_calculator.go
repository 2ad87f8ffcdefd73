package service

import (
	"recargos-bot/internal/domain"
	"recargos-bot/internal/shared/apperror"
	"recargos-bot/pkg/calendar"

	"github.com/shopspring/decimal"
)

// RegularMinutes is the statutory regular working day.
const RegularMinutes = 8 * 60

var (
	regularHoursPerDay = decimal.NewFromInt(RegularMinutes / 60)
	minutesPerHour     = decimal.NewFromInt(60)
)

// PayCalculator computes the surcharge breakdown of shifts under Colombian
// labor law. It holds no mutable state and is safe for concurrent use.
type PayCalculator struct {
	Holidays calendar.HolidayCalendar
}

// NewPayCalculator uses the built-in calendar when holidays is nil.
func NewPayCalculator(holidays calendar.HolidayCalendar) *PayCalculator {
	if holidays == nil {
		holidays = calendar.DefaultCalendar()
	}
	return &PayCalculator{Holidays: holidays}
}

func (p *PayCalculator) CalculateShiftPay(shift domain.WorkShift) (domain.LaborCalculation, error) {
	if shift.Date.IsZero() {
		return domain.LaborCalculation{}, domain.ErrInvalidDate
	}
	if shift.BaseSalary.IsNegative() {
		return domain.LaborCalculation{}, apperror.Wrapf(domain.ErrInvalidSalary, "got %s", shift.BaseSalary)
	}
	start, end, err := calendar.Span(shift.StartTime, shift.EndTime)
	if err != nil {
		return domain.LaborCalculation{}, apperror.Wrap(domain.ErrInvalidTimeFormat, err)
	}
	if start == end {
		return domain.LaborCalculation{}, apperror.Wrapf(domain.ErrZeroLengthShift, "%s-%s", shift.StartTime, shift.EndTime)
	}

	total := end - start
	night := calendar.NightMinutes(start, end)
	day := total - night

	// The first eight hours are regular, day hours first; the rest is overtime.
	nightAllowance := max(0, RegularMinutes-day)
	overtimeDay := max(0, day-RegularMinutes)
	overtimeNight := max(0, night-nightAllowance)

	hourly := shift.BaseSalary.Div(regularHoursPerDay)

	res := domain.NewLaborCalculation()
	res.TotalHours = toHours(total)
	res.NightShiftHours = toHours(night)
	res.RegularHours = toHours(min(total, RegularMinutes))
	res.OvertimeHours = toHours(max(0, total-RegularMinutes))

	switch {
	case p.isHoliday(shift):
		res.HolidayHours = res.TotalHours
		addLine(&res, domain.CategoryHolidayDay, day, hourly)
		addLine(&res, domain.CategoryHolidayNight, night, hourly)
	case calendar.IsSunday(shift.Date):
		res.SundayHours = res.TotalHours
		addLine(&res, domain.CategorySundayDay, day, hourly)
		addLine(&res, domain.CategorySundayNight, night, hourly)
	default:
		addLine(&res, domain.CategoryRegular, min(day, RegularMinutes), hourly)
		addLine(&res, domain.CategoryNight, min(night, nightAllowance), hourly)
		addLine(&res, domain.CategoryOvertimeDay, overtimeDay, hourly)
		addLine(&res, domain.CategoryOvertimeNight, overtimeNight, hourly)
	}

	res.OvertimePay = res.TotalExtraPay
	res.TotalPay = res.TotalBasePay.Add(res.TotalExtraPay)
	return res, nil
}

func (p *PayCalculator) isHoliday(shift domain.WorkShift) bool {
	return p.Holidays != nil && p.Holidays.IsHoliday(shift.Date)
}

func addLine(res *domain.LaborCalculation, cat domain.Category, minutes int, hourly decimal.Decimal) {
	if minutes <= 0 {
		return
	}
	base := hourly.Mul(decimal.NewFromInt(int64(minutes))).Div(minutesPerHour)
	extra := base.Mul(cat.Surcharge())

	res.Breakdown = append(res.Breakdown, domain.PayBreakdownLine{
		Category:    cat,
		Description: cat.Description(),
		Hours:       toHours(minutes),
		Rate:        hourly.Mul(cat.Multiplier()),
		Amount:      base.Add(extra),
	})
	res.TotalBasePay = res.TotalBasePay.Add(base)
	res.TotalExtraPay = res.TotalExtraPay.Add(extra)
	if cat.Surcharge().IsPositive() {
		res.SurchargeByCategory[cat] = res.SurchargeByCategory[cat].Add(extra)
	}
}

func toHours(minutes int) float64 {
	return float64(minutes) / 60
}
