package telegram

import (
	"errors"
	"fmt"
	"strings"

	"recargos-bot/internal/domain"
	"recargos-bot/internal/report"
)

// FormatCalculation renders a calculation as a plain-text chat message.
func FormatCalculation(title string, calc domain.LaborCalculation) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	if len(calc.Breakdown) == 0 {
		b.WriteString("Sin turnos registrados.\n")
	}
	for _, l := range calc.Breakdown {
		fmt.Fprintf(&b, "• %s: %s h × %s = %s\n",
			l.Description, report.FormatHours(l.Hours), report.FormatCOP(l.Rate), report.FormatCOP(l.Amount))
	}
	fmt.Fprintf(&b, "\nHoras: %s (extra %s, nocturnas %s)\n",
		report.FormatHours(calc.TotalHours), report.FormatHours(calc.OvertimeHours), report.FormatHours(calc.NightShiftHours))
	if calc.SundayHours > 0 {
		fmt.Fprintf(&b, "Horas dominicales: %s\n", report.FormatHours(calc.SundayHours))
	}
	if calc.HolidayHours > 0 {
		fmt.Fprintf(&b, "Horas festivas: %s\n", report.FormatHours(calc.HolidayHours))
	}
	fmt.Fprintf(&b, "Base: %s\nRecargos: %s\nTotal: %s",
		report.FormatCOP(calc.TotalBasePay), report.FormatCOP(calc.TotalExtraPay), report.FormatCOP(calc.TotalPay))
	return b.String()
}

// userMessage turns a calculation or parsing error into a reply for the chat.
func userMessage(err error) string {
	prefix := ""
	var se *domain.ShiftError
	if errors.As(err, &se) {
		prefix = fmt.Sprintf("Turno del %s: ", se.Date.Format("02.01.2006"))
	}
	switch {
	case errors.Is(err, ErrShiftInput):
		return prefix + "Formato: HH:MM HH:MM SALARIO [cargo] [sede], p. ej. 22:00 06:00 80000"
	case errors.Is(err, domain.ErrInvalidTimeFormat):
		return prefix + "Hora inválida, use HH:MM en formato de 24 horas."
	case errors.Is(err, domain.ErrInvalidSalary):
		return prefix + "El salario debe ser un número no negativo."
	case errors.Is(err, domain.ErrZeroLengthShift):
		return prefix + "La hora de inicio y la de fin no pueden ser iguales."
	case errors.Is(err, domain.ErrInvalidDate):
		return prefix + "Fecha inválida, use AAAA-MM-DD."
	}
	return "Error en el cálculo: " + err.Error()
}
