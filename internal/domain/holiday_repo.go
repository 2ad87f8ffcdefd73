package domain

import (
	"context"

	"recargos-bot/pkg/calendar"
)

// HolidayRepo is the reference source the holiday calendar is loaded from.
type HolidayRepo interface {
	ListHolidays(ctx context.Context) ([]calendar.Holiday, error)
	AddHoliday(ctx context.Context, h calendar.Holiday) error
	CountHolidays(ctx context.Context) (int, error)
}
