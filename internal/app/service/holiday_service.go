package service

import (
	"context"
	"fmt"

	"recargos-bot/internal/domain"
	"recargos-bot/pkg/calendar"

	"go.uber.org/zap"
)

type HolidayService struct {
	Repo domain.HolidayRepo
	log  *zap.Logger
}

func NewHolidayService(repo domain.HolidayRepo, logger *zap.Logger) *HolidayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HolidayService{Repo: repo, log: logger.Named("holidays")}
}

// SeedDefaults stores the built-in holidays when the reference table is empty.
func (s *HolidayService) SeedDefaults(ctx context.Context) error {
	n, err := s.Repo.CountHolidays(ctx)
	if err != nil {
		return fmt.Errorf("count holidays: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, h := range calendar.Colombia2024 {
		if err := s.Repo.AddHoliday(ctx, h); err != nil {
			return fmt.Errorf("seed holiday %s: %w", h.Date, err)
		}
	}
	s.log.Info("seeded holiday calendar", zap.Int("count", len(calendar.Colombia2024)))
	return nil
}

// LoadCalendar builds a calendar from every stored holiday.
func (s *HolidayService) LoadCalendar(ctx context.Context) (*calendar.StaticCalendar, error) {
	holidays, err := s.Repo.ListHolidays(ctx)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	cal, err := calendar.NewStaticCalendar(holidays...)
	if err != nil {
		return nil, err
	}
	s.log.Info("holiday calendar loaded", zap.Int("count", cal.Len()))
	return cal, nil
}

func (s *HolidayService) AddHoliday(ctx context.Context, date, name string) error {
	if _, err := calendar.ParseDate(date); err != nil {
		return err
	}
	return s.Repo.AddHoliday(ctx, calendar.Holiday{Date: date, Name: name})
}
