package domain

import (
	"fmt"
	"time"

	"recargos-bot/internal/shared/apperror"
)

var (
	ErrInvalidTimeFormat = apperror.New(apperror.CodeInvalidInput, "invalid time format, expected HH:MM")
	ErrInvalidSalary     = apperror.New(apperror.CodeInvalidInput, "base salary cannot be negative")
	ErrZeroLengthShift   = apperror.New(apperror.CodeInvalidInput, "shift start and end times are equal")
	ErrInvalidDate       = apperror.New(apperror.CodeInvalidInput, "invalid date, expected YYYY-MM-DD")
)

// ShiftError reports which shift of a batch could not be calculated.
type ShiftError struct {
	Index int
	Date  time.Time
	Err   error
}

func (e *ShiftError) Error() string {
	return fmt.Sprintf("shift %d (%s): %v", e.Index, e.Date.Format("2006-01-02"), e.Err)
}

func (e *ShiftError) Unwrap() error {
	return e.Err
}
