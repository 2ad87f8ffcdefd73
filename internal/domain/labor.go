package domain

import (
	"github.com/shopspring/decimal"
)

// Category classifies the hours of a shift. The order of the constants is the
// order in which breakdown lines are emitted.
type Category int

const (
	CategoryRegular Category = iota
	CategoryNight
	CategoryOvertimeDay
	CategoryOvertimeNight
	CategorySundayDay
	CategorySundayNight
	CategoryHolidayDay
	CategoryHolidayNight
)

type categoryInfo struct {
	name        string
	description string
	surcharge   decimal.Decimal
}

var categories = [...]categoryInfo{
	CategoryRegular:       {"regular", "Horas ordinarias", decimal.Zero},
	CategoryNight:         {"night", "Recargo nocturno", decimal.RequireFromString("0.35")},
	CategoryOvertimeDay:   {"overtime_day", "Hora extra diurna", decimal.RequireFromString("0.25")},
	CategoryOvertimeNight: {"overtime_night", "Hora extra nocturna", decimal.RequireFromString("0.75")},
	CategorySundayDay:     {"sunday_day", "Dominical diurno", decimal.RequireFromString("0.75")},
	CategorySundayNight:   {"sunday_night", "Dominical nocturno", decimal.RequireFromString("0.85")},
	CategoryHolidayDay:    {"holiday_day", "Festivo diurno", decimal.RequireFromString("0.75")},
	CategoryHolidayNight:  {"holiday_night", "Festivo nocturno", decimal.RequireFromString("1.10")},
}

// Categories returns every category in evaluation order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i := range categories {
		out[i] = Category(i)
	}
	return out
}

func (c Category) Valid() bool {
	return c >= CategoryRegular && int(c) < len(categories)
}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categories[c].name
}

func (c Category) Description() string {
	if !c.Valid() {
		return ""
	}
	return categories[c].description
}

// Surcharge is the fraction added on top of the plain hourly rate.
func (c Category) Surcharge() decimal.Decimal {
	if !c.Valid() {
		return decimal.Zero
	}
	return categories[c].surcharge
}

// Multiplier is 1 + Surcharge.
func (c Category) Multiplier() decimal.Decimal {
	return decimal.NewFromInt(1).Add(c.Surcharge())
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type PayBreakdownLine struct {
	Category    Category
	Description string
	Hours       float64
	Rate        decimal.Decimal // hourly rate with surcharge applied
	Amount      decimal.Decimal
}

// LaborCalculation is the pay result for one shift or a folded set of shifts.
//
// NightShiftPay, HolidayPay and SundayPay are kept for callers that read them
// but are always zero; every surcharge is reported in OvertimePay and
// TotalExtraPay, split per category in SurchargeByCategory.
type LaborCalculation struct {
	RegularHours    float64
	OvertimeHours   float64
	NightShiftHours float64
	HolidayHours    float64
	SundayHours     float64
	TotalHours      float64

	OvertimePay   decimal.Decimal
	NightShiftPay decimal.Decimal
	HolidayPay    decimal.Decimal
	SundayPay     decimal.Decimal
	TotalBasePay  decimal.Decimal
	TotalExtraPay decimal.Decimal
	TotalPay      decimal.Decimal

	SurchargeByCategory map[Category]decimal.Decimal
	Breakdown           []PayBreakdownLine
}

// NewLaborCalculation returns the zero result: all totals zero, empty breakdown.
func NewLaborCalculation() LaborCalculation {
	return LaborCalculation{
		SurchargeByCategory: map[Category]decimal.Decimal{},
		Breakdown:           []PayBreakdownLine{},
	}
}

// Add folds o into c. Numeric fields are summed and o's breakdown is appended
// after c's. Neither operand is modified.
func (c LaborCalculation) Add(o LaborCalculation) LaborCalculation {
	out := LaborCalculation{
		RegularHours:    c.RegularHours + o.RegularHours,
		OvertimeHours:   c.OvertimeHours + o.OvertimeHours,
		NightShiftHours: c.NightShiftHours + o.NightShiftHours,
		HolidayHours:    c.HolidayHours + o.HolidayHours,
		SundayHours:     c.SundayHours + o.SundayHours,
		TotalHours:      c.TotalHours + o.TotalHours,

		OvertimePay:   c.OvertimePay.Add(o.OvertimePay),
		NightShiftPay: c.NightShiftPay.Add(o.NightShiftPay),
		HolidayPay:    c.HolidayPay.Add(o.HolidayPay),
		SundayPay:     c.SundayPay.Add(o.SundayPay),
		TotalBasePay:  c.TotalBasePay.Add(o.TotalBasePay),
		TotalExtraPay: c.TotalExtraPay.Add(o.TotalExtraPay),
		TotalPay:      c.TotalPay.Add(o.TotalPay),

		SurchargeByCategory: make(map[Category]decimal.Decimal, len(c.SurchargeByCategory)+len(o.SurchargeByCategory)),
		Breakdown:           make([]PayBreakdownLine, 0, len(c.Breakdown)+len(o.Breakdown)),
	}
	for k, v := range c.SurchargeByCategory {
		out.SurchargeByCategory[k] = v
	}
	for k, v := range o.SurchargeByCategory {
		out.SurchargeByCategory[k] = out.SurchargeByCategory[k].Add(v)
	}
	out.Breakdown = append(out.Breakdown, c.Breakdown...)
	out.Breakdown = append(out.Breakdown, o.Breakdown...)
	return out
}

// BreakdownHours sums the hours of every breakdown line.
func (c LaborCalculation) BreakdownHours() float64 {
	var h float64
	for _, l := range c.Breakdown {
		h += l.Hours
	}
	return h
}
