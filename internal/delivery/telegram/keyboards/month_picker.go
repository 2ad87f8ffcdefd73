package keyboards

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"
)

const monthsPerRow = 3

var monthShort = [12]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// BuildMonthKeyboard lists the months of year for a monthly summary. The
// current month is marked with a dot.
func BuildMonthKeyboard(year int) (string, *telebot.ReplyMarkup) {
	return buildMonthKeyboard(year, time.Now())
}

func buildMonthKeyboard(year int, now time.Time) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}

	var rows []telebot.Row
	var row telebot.Row
	for i, name := range monthShort {
		month := i + 1
		if year == now.Year() && time.Month(month) == now.Month() {
			name = "• " + name
		}
		row = append(row, markup.Data(name, "pick_month", fmt.Sprintf("%04d-%02d", year, month)))
		if len(row) == monthsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}

	rows = append(rows, markup.Row(
		markup.Data("← "+strconv.Itoa(year-1), "month_prev", strconv.Itoa(year)),
		markup.Data(strconv.Itoa(year+1)+" →", "month_next", strconv.Itoa(year)),
	))
	markup.Inline(rows...)

	return "Elija el mes: " + strconv.Itoa(year), markup
}
