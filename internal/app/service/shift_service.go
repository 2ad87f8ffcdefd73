package service

import (
	"context"
	"sort"
	"time"

	"recargos-bot/internal/domain"
	"recargos-bot/pkg/calendar"
)

// WeeklyCalculator folds a batch of shifts into one result.
type WeeklyCalculator interface {
	CalculateWeeklyPay(ctx context.Context, shifts []domain.WorkShift) (domain.LaborCalculation, error)
}

type ShiftServiceImpl struct {
	Repo  domain.ShiftLog
	Calc  *PayCalculator
	Async WeeklyCalculator
}

func NewShiftService(repo domain.ShiftLog, calc *PayCalculator, async WeeklyCalculator) *ShiftServiceImpl {
	return &ShiftServiceImpl{Repo: repo, Calc: calc, Async: async}
}

// AddShift validates and prices the shift, then records it for the chat.
// Shifts that fail calculation are not recorded.
func (s *ShiftServiceImpl) AddShift(chatID int64, shift domain.WorkShift) (domain.LaborCalculation, error) {
	calc, err := s.Calc.CalculateShiftPay(shift)
	if err != nil {
		return domain.LaborCalculation{}, err
	}
	if err := s.Repo.AddShift(chatID, shift); err != nil {
		return domain.LaborCalculation{}, err
	}
	return calc, nil
}

// GetShifts returns the chat's shifts in [from, to], ordered by date and start time.
func (s *ShiftServiceImpl) GetShifts(chatID int64, from, to time.Time) ([]domain.WorkShift, error) {
	shifts, err := s.Repo.GetShifts(chatID, from, to)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(shifts, func(i, j int) bool {
		if shifts[i].Date.Equal(shifts[j].Date) {
			return shifts[i].StartTime < shifts[j].StartTime
		}
		return shifts[i].Date.Before(shifts[j].Date)
	})
	return shifts, nil
}

// CalculateSalary aggregates the chat's shifts in [from, to].
func (s *ShiftServiceImpl) CalculateSalary(ctx context.Context, chatID int64, from, to time.Time) (domain.LaborCalculation, []domain.WorkShift, error) {
	shifts, err := s.GetShifts(chatID, from, to)
	if err != nil {
		return domain.LaborCalculation{}, nil, err
	}
	var calc domain.LaborCalculation
	if s.Async != nil {
		calc, err = s.Async.CalculateWeeklyPay(ctx, shifts)
	} else {
		calc, err = s.Calc.CalculateWeeklyPay(shifts)
	}
	if err != nil {
		return domain.LaborCalculation{}, nil, err
	}
	return calc, shifts, nil
}

// CalculateCurrentWeek aggregates the ISO week of the most recently added shift.
// ok is false when the chat has no shifts.
func (s *ShiftServiceImpl) CalculateCurrentWeek(ctx context.Context, chatID int64) (calc domain.LaborCalculation, from, to time.Time, ok bool, err error) {
	latest, found := s.Repo.LatestShift(chatID)
	if !found {
		return domain.LaborCalculation{}, time.Time{}, time.Time{}, false, nil
	}
	from, to = calendar.WeekBounds(latest.Date)
	calc, _, err = s.CalculateSalary(ctx, chatID, from, to)
	return calc, from, to, err == nil, err
}

func (s *ShiftServiceImpl) ClearShifts(chatID int64) error {
	return s.Repo.ClearShifts(chatID)
}
