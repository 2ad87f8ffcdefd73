package telegram

import (
	"fmt"
	"testing"
	"time"

	"recargos-bot/internal/app/service"
	"recargos-bot/internal/domain"
	"recargos-bot/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCalculation(t *testing.T) {
	sh, err := ParseShiftText(tuesday, "14:00 02:00 80000")
	require.NoError(t, err)
	calc, err := service.NewPayCalculator(nil).CalculateShiftPay(sh)
	require.NoError(t, err)

	msg := FormatCalculation("Turno 05.03.2024", calc)
	assert.Contains(t, msg, "Turno 05.03.2024")
	assert.Contains(t, msg, "• Horas ordinarias: 7 h × $10.000 = $70.000")
	assert.Contains(t, msg, "• Hora extra nocturna: 4 h × $17.500 = $70.000")
	assert.Contains(t, msg, "Horas: 12 (extra 4, nocturnas 5)")
	assert.Contains(t, msg, "Total: $153.500")
	assert.NotContains(t, msg, "dominicales")
}

func TestFormatEmptyCalculation(t *testing.T) {
	msg := FormatCalculation("Semana", domain.NewLaborCalculation())
	assert.Contains(t, msg, "Sin turnos registrados.")
	assert.Contains(t, msg, "Total: $0")
}

func TestUserMessage(t *testing.T) {
	se := &domain.ShiftError{
		Index: 1,
		Date:  time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		Err:   apperror.Wrapf(domain.ErrZeroLengthShift, "08:00-08:00"),
	}
	assert.Equal(t, "Turno del 06.03.2024: La hora de inicio y la de fin no pueden ser iguales.", userMessage(se))
	assert.Equal(t, "Hora inválida, use HH:MM en formato de 24 horas.", userMessage(fmt.Errorf("x: %w", domain.ErrInvalidTimeFormat)))
	assert.Equal(t, "Error en el cálculo: boom", userMessage(fmt.Errorf("boom")))
}
