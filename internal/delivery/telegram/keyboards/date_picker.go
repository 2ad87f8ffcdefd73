package keyboards

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

var monthNames = map[time.Month]string{
	time.January:   "Enero",
	time.February:  "Febrero",
	time.March:     "Marzo",
	time.April:     "Abril",
	time.May:       "Mayo",
	time.June:      "Junio",
	time.July:      "Julio",
	time.August:    "Agosto",
	time.September: "Septiembre",
	time.October:   "Octubre",
	time.November:  "Noviembre",
	time.December:  "Diciembre",
}

func MonthName(m time.Month) string {
	if name, ok := monthNames[m]; ok {
		return name
	}
	return m.String()
}

// BuildDateKeyboard lays out the days of a month, seven per row, with
// buttons to move to the previous and next month. Callback payloads are
// "d-m-y" for cal_day and "m-y" for cal_prev/cal_next; the month may be 0
// or 13 and is normalised by NormalizeMonth.
func BuildDateKeyboard(year, month int) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	days := daysInMonth(year, month)
	var rows []telebot.Row
	week := telebot.Row{}
	for d := 1; d <= days; d++ {
		btn := markup.Data(strconv.Itoa(d), "cal_day", strconv.Itoa(d)+"-"+strconv.Itoa(month)+"-"+strconv.Itoa(year))
		week = append(week, btn)
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		rows = append(rows, week)
	}
	prev := markup.Data("<", "cal_prev", strconv.Itoa(month-1)+"-"+strconv.Itoa(year))
	next := markup.Data(">", "cal_next", strconv.Itoa(month+1)+"-"+strconv.Itoa(year))
	rows = append(rows, telebot.Row{prev, next})
	markup.Inline(rows...)

	title := "Elija la fecha del turno: " + MonthName(time.Month(month)) + " " + strconv.Itoa(year)
	return title, markup
}

// NormalizeMonth wraps month 0 and 13 into the neighbouring year.
func NormalizeMonth(year, month int) (int, int) {
	if month < 1 {
		return year - 1, 12
	}
	if month > 12 {
		return year + 1, 1
	}
	return year, month
}

// ParseDayPayload decodes a cal_day payload.
func ParseDayPayload(payload string) (time.Time, bool) {
	parts := strings.Split(payload, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// ParseMonthPayload decodes a cal_prev/cal_next payload.
func ParseMonthPayload(payload string) (year, month int, ok bool) {
	parts := strings.Split(payload, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	m, err1 := strconv.Atoi(parts[0])
	y, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	y, m = NormalizeMonth(y, m)
	return y, m, true
}

func daysInMonth(year, month int) int {
	t := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}
