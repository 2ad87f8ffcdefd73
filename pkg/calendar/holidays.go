package calendar

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

// HolidayCalendar answers whether a date is a public holiday.
type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
}

type Holiday struct {
	Date string
	Name string
}

// Colombia2024 lists the Colombian public holidays for 2024, moved to Monday
// where Ley Emiliani applies.
var Colombia2024 = []Holiday{
	{"2024-01-01", "Año Nuevo"},
	{"2024-01-08", "Día de los Reyes Magos"},
	{"2024-03-25", "Día de San José"},
	{"2024-03-28", "Jueves Santo"},
	{"2024-03-29", "Viernes Santo"},
	{"2024-05-01", "Día del Trabajo"},
	{"2024-05-13", "Ascensión del Señor"},
	{"2024-06-03", "Corpus Christi"},
	{"2024-06-10", "Sagrado Corazón"},
	{"2024-07-01", "San Pedro y San Pablo"},
	{"2024-07-20", "Día de la Independencia"},
	{"2024-08-07", "Batalla de Boyacá"},
	{"2024-08-19", "La Asunción de la Virgen"},
	{"2024-10-14", "Día de la Raza"},
	{"2024-11-04", "Todos los Santos"},
	{"2024-11-11", "Independencia de Cartagena"},
	{"2024-12-08", "Inmaculada Concepción"},
	{"2024-12-25", "Navidad"},
}

// StaticCalendar is a fixed set of holiday dates. Dates outside the set are
// never holidays. The zero value is an empty calendar; it is not safe for
// concurrent Add.
type StaticCalendar struct {
	dates map[string]struct{}
}

func NewStaticCalendar(holidays ...Holiday) (*StaticCalendar, error) {
	c := &StaticCalendar{dates: make(map[string]struct{}, len(holidays))}
	for _, h := range holidays {
		d, err := ParseDate(h.Date)
		if err != nil {
			return nil, err
		}
		c.Add(d)
	}
	return c, nil
}

// DefaultCalendar returns the built-in Colombian calendar.
func DefaultCalendar() *StaticCalendar {
	c, err := NewStaticCalendar(Colombia2024...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *StaticCalendar) Add(date time.Time) {
	if c.dates == nil {
		c.dates = make(map[string]struct{})
	}
	c.dates[DateKey(date)] = struct{}{}
}

func (c *StaticCalendar) IsHoliday(date time.Time) bool {
	_, ok := c.dates[DateKey(date)]
	return ok
}

func (c *StaticCalendar) Len() int {
	return len(c.dates)
}

// Dates returns the holiday dates in ascending order.
func (c *StaticCalendar) Dates() []string {
	out := make([]string, 0, len(c.dates))
	for d := range c.dates {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// DateKey formats the calendar date of t, ignoring its clock and location offset.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// WeekBounds returns Monday and Sunday of the ISO week containing date.
func WeekBounds(date time.Time) (time.Time, time.Time) {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7
	monday := d.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day of the given month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}
