package flows

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"recargos-bot/internal/delivery/telegram/keyboards"
	"recargos-bot/internal/delivery/telegram/middleware"
	"recargos-bot/internal/delivery/telegram/router"
	"recargos-bot/pkg/calendar"

	"gopkg.in/telebot.v3"
)

// MonthSummary computes the monthly aggregate and renders it.
type MonthSummary func(ctx context.Context, chatID int64, year int, month time.Month) (string, error)

// RegisterSalary wires the month picker to a monthly pay summary.
func RegisterSalary(r *router.CallbackRouter, summary MonthSummary) {
	r.Register("salary_other_month", func(c telebot.Context, payload string) error {
		title, markup := keyboards.BuildMonthKeyboard(time.Now().Year())
		return middleware.EditOrSend(c, title, markup)
	})

	r.Register("month_prev", func(c telebot.Context, payload string) error {
		y, _ := strconv.Atoi(payload)
		title, markup := keyboards.BuildMonthKeyboard(y - 1)
		return middleware.EditOrSend(c, title, markup)
	})

	r.Register("month_next", func(c telebot.Context, payload string) error {
		y, _ := strconv.Atoi(payload)
		title, markup := keyboards.BuildMonthKeyboard(y + 1)
		return middleware.EditOrSend(c, title, markup)
	})

	r.Register("pick_month", func(c telebot.Context, payload string) error {
		parts := strings.Split(payload, "-")
		if len(parts) != 2 {
			return nil
		}
		y, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || m < 1 || m > 12 {
			return nil
		}
		msg, err := summary(context.Background(), c.Chat().ID, y, time.Month(m))
		if err != nil {
			return c.Send(err.Error())
		}
		return middleware.EditOrSend(c, msg)
	})
}

// MonthTitle is the heading used for a monthly summary.
func MonthTitle(year int, month time.Month) string {
	from, to := calendar.MonthBounds(year, month)
	return fmt.Sprintf("Resumen de %s %d (%s a %s)",
		keyboards.MonthName(month), year, from.Format("02.01"), to.Format("02.01"))
}
