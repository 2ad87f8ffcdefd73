package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"recargos-bot/internal/app/service"
	"recargos-bot/internal/delivery/telegram/flows"
	"recargos-bot/internal/delivery/telegram/keyboards"
	"recargos-bot/internal/delivery/telegram/middleware"
	"recargos-bot/internal/delivery/telegram/router"
	"recargos-bot/internal/domain"
	"recargos-bot/internal/report"
	"recargos-bot/pkg/calendar"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

const calcTimeout = 10 * time.Second

type Handler struct {
	Bot    *telebot.Bot
	Shifts *service.ShiftServiceImpl
	Log    *zap.Logger

	// Holidays is listed by /festivos. Optional.
	Holidays *calendar.StaticCalendar

	mu           sync.Mutex
	waitingShift map[int64]time.Time // chatID -> shift date
}

var (
	btnAddShift = telebot.Btn{Text: "📅 Registrar turno"}
	btnWeek     = telebot.Btn{Text: "📊 Resumen semanal"}
	btnMonth    = telebot.Btn{Text: "🗓 Resumen mensual"}
	btnExport   = telebot.Btn{Text: "📤 Exportar semana"}
	btnClear    = telebot.Btn{Text: "🧹 Borrar turnos"}
)

func (h *Handler) Register() {
	if h.Log == nil {
		h.Log = zap.NewNop()
	}

	r := router.New(h.Log.Named("callback"))
	r.CalDelegate = h.handleCalendar
	r.Register("addshift_today", func(c telebot.Context, _ string) error {
		return h.askShift(c, today())
	})
	r.Register("addshift_other", func(c telebot.Context, _ string) error {
		now := time.Now()
		title, markup := keyboards.BuildDateKeyboard(now.Year(), int(now.Month()))
		return middleware.EditOrSend(c, title, markup)
	})
	r.Register("clear_confirm", func(c telebot.Context, _ string) error {
		if err := h.Shifts.ClearShifts(c.Chat().ID); err != nil {
			return c.Send("No se pudieron borrar los turnos: " + err.Error())
		}
		return middleware.EditOrSend(c, "Turnos borrados.")
	})
	flows.RegisterSalary(r, h.monthSummary)
	r.Attach(h.Bot)

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/calc", h.handleCalc)
	h.Bot.Handle("/semana", h.handleWeek)
	h.Bot.Handle("/exportar", h.handleExport)
	h.Bot.Handle("/festivos", h.handleHolidays)
	h.Bot.Handle(telebot.OnText, h.handleText)
}

func (h *Handler) handleStart(c telebot.Context) error {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(btnAddShift.Text)),
		markup.Row(markup.Text(btnWeek.Text), markup.Text(btnMonth.Text)),
		markup.Row(markup.Text(btnExport.Text), markup.Text(btnClear.Text)),
	)
	return c.Send("¡Bienvenido! Registre sus turnos para calcular recargos nocturnos, dominicales, festivos y horas extra.", markup)
}

// handleCalc prices a single shift without recording it.
func (h *Handler) handleCalc(c telebot.Context) error {
	shift, err := ParseCalcCommand(c.Message().Payload)
	if err != nil {
		return c.Send(userMessage(err) + "\nUso: /calc AAAA-MM-DD HH:MM HH:MM SALARIO")
	}
	calc, err := h.Shifts.Calc.CalculateShiftPay(shift)
	if err != nil {
		return c.Send(userMessage(err))
	}
	return c.Send(FormatCalculation(shiftTitle(shift), calc))
}

func (h *Handler) handleText(c telebot.Context) error {
	chatID := c.Chat().ID

	switch c.Text() {
	case btnAddShift.Text:
		markup := &telebot.ReplyMarkup{}
		btnToday := markup.Data("Hoy", "addshift_today")
		btnOther := markup.Data("Otra fecha", "addshift_other")
		markup.Inline(markup.Row(btnToday, btnOther))
		return c.Send("¿El turno es de hoy?", markup)
	case btnWeek.Text:
		return h.handleWeek(c)
	case btnMonth.Text:
		title, markup := keyboards.BuildMonthKeyboard(time.Now().Year())
		return c.Send(title, markup)
	case btnExport.Text:
		return h.handleExport(c)
	case btnClear.Text:
		markup := &telebot.ReplyMarkup{}
		markup.Inline(markup.Row(markup.Data("Sí, borrar", "clear_confirm")))
		h.clearWaiting(chatID)
		return c.Send("¿Borrar todos los turnos registrados?", markup)
	}

	date, ok := h.takeWaiting(chatID)
	if !ok {
		return nil
	}
	shift, err := ParseShiftText(date, c.Text())
	if err != nil {
		h.setWaiting(chatID, date)
		return c.Send(userMessage(err))
	}
	calc, err := h.Shifts.AddShift(chatID, shift)
	if err != nil {
		h.setWaiting(chatID, date)
		return c.Send(userMessage(err))
	}
	h.Log.Info("shift recorded",
		zap.Int64("chat_id", chatID),
		zap.String("date", calendar.DateKey(date)),
		zap.String("start", shift.StartTime),
		zap.String("end", shift.EndTime),
	)
	return c.Send("Turno registrado.\n\n" + FormatCalculation(shiftTitle(shift), calc))
}

func (h *Handler) handleWeek(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), calcTimeout)
	defer cancel()

	calc, from, to, ok, err := h.Shifts.CalculateCurrentWeek(ctx, c.Chat().ID)
	if err != nil {
		h.Log.Warn("weekly calculation failed", zap.Int64("chat_id", c.Chat().ID), zap.Error(err))
		return c.Send(userMessage(err))
	}
	if !ok {
		return c.Send("Aún no hay turnos registrados.")
	}
	return c.Send(FormatCalculation(weekTitle(from, to), calc))
}

func (h *Handler) handleExport(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), calcTimeout)
	defer cancel()

	calc, from, to, ok, err := h.Shifts.CalculateCurrentWeek(ctx, c.Chat().ID)
	if err != nil {
		return c.Send(userMessage(err))
	}
	if !ok {
		return c.Send("Aún no hay turnos registrados.")
	}
	title := weekTitle(from, to)
	name := "recargos-" + calendar.DateKey(from)

	var xlsx bytes.Buffer
	if err := report.WriteXLSX(&xlsx, title, calc); err != nil {
		h.Log.Error("xlsx export failed", zap.Error(err))
		return c.Send("No se pudo generar el archivo Excel.")
	}
	if err := c.Send(&telebot.Document{File: telebot.FromReader(&xlsx), FileName: name + ".xlsx", Caption: title}); err != nil {
		return err
	}

	var pdf bytes.Buffer
	if err := report.WritePDF(&pdf, title, calc); err != nil {
		h.Log.Error("pdf export failed", zap.Error(err))
		return c.Send("No se pudo generar el PDF.")
	}
	return c.Send(&telebot.Document{File: telebot.FromReader(&pdf), FileName: name + ".pdf", MIME: "application/pdf"})
}

func (h *Handler) handleHolidays(c telebot.Context) error {
	if h.Holidays == nil || h.Holidays.Len() == 0 {
		return c.Send("No hay festivos configurados.")
	}
	var sb strings.Builder
	sb.WriteString("Festivos configurados:\n")
	for _, d := range h.Holidays.Dates() {
		sb.WriteString("• " + d + "\n")
	}
	return c.Send(sb.String())
}

// handleCalendar serves the date picker callbacks.
func (h *Handler) handleCalendar(c telebot.Context, payload string) error {
	key, _ := router.SplitData(c.Data())
	switch key {
	case "cal_day":
		date, ok := keyboards.ParseDayPayload(payload)
		if !ok {
			return c.Send("Fecha inválida.")
		}
		return h.askShift(c, date)
	case "cal_prev", "cal_next":
		year, month, ok := keyboards.ParseMonthPayload(payload)
		if !ok {
			return c.Send("Mes inválido.")
		}
		title, markup := keyboards.BuildDateKeyboard(year, month)
		return middleware.EditOrSend(c, title, markup)
	}
	return nil
}

func (h *Handler) askShift(c telebot.Context, date time.Time) error {
	h.setWaiting(c.Chat().ID, date)
	h.Log.Debug("waiting for shift", zap.Int64("chat_id", c.Chat().ID), zap.String("date", calendar.DateKey(date)))
	return middleware.EditOrSend(c, fmt.Sprintf(
		"Turno del %s.\nEnvíe: HH:MM HH:MM SALARIO_DIARIO [cargo] [sede]\nEjemplo: 22:00 06:00 80000",
		date.Format("02.01.2006")))
}

func (h *Handler) monthSummary(ctx context.Context, chatID int64, year int, month time.Month) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, calcTimeout)
	defer cancel()

	from, to := calendar.MonthBounds(year, month)
	calc, _, err := h.Shifts.CalculateSalary(ctx, chatID, from, to)
	if err != nil {
		return "", errors.New(userMessage(err))
	}
	return FormatCalculation(flows.MonthTitle(year, month), calc), nil
}

func (h *Handler) setWaiting(chatID int64, date time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.waitingShift == nil {
		h.waitingShift = make(map[int64]time.Time)
	}
	h.waitingShift[chatID] = date
}

func (h *Handler) takeWaiting(chatID int64) (time.Time, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	date, ok := h.waitingShift[chatID]
	delete(h.waitingShift, chatID)
	return date, ok
}

func (h *Handler) clearWaiting(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.waitingShift, chatID)
}

func shiftTitle(shift domain.WorkShift) string {
	title := fmt.Sprintf("Turno %s %s–%s", shift.Date.Format("02.01.2006"), shift.StartTime, shift.EndTime)
	if shift.Position != "" {
		title += " · " + shift.Position
	}
	if shift.Location != "" {
		title += " · " + shift.Location
	}
	return title
}

func weekTitle(from, to time.Time) string {
	return fmt.Sprintf("Semana %s a %s", from.Format("02.01.2006"), to.Format("02.01.2006"))
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
