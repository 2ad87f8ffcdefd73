package memory

import (
	"sync"
	"time"

	"recargos-bot/internal/domain"
	"recargos-bot/pkg/calendar"
)

// ShiftRepo keeps each chat's shifts in memory for the lifetime of the process.
type ShiftRepo struct {
	mu     sync.Mutex
	shifts map[int64][]domain.WorkShift
}

func NewShiftRepo() *ShiftRepo {
	return &ShiftRepo{shifts: make(map[int64][]domain.WorkShift)}
}

func (r *ShiftRepo) AddShift(chatID int64, shift domain.WorkShift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts[chatID] = append(r.shifts[chatID], shift)
	return nil
}

// GetShifts returns shifts whose date falls in [from, to], in insertion order.
func (r *ShiftRepo) GetShifts(chatID int64, from, to time.Time) ([]domain.WorkShift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lo, hi := calendar.DateKey(from), calendar.DateKey(to)
	var out []domain.WorkShift
	for _, sh := range r.shifts[chatID] {
		d := calendar.DateKey(sh.Date)
		if d >= lo && d <= hi {
			out = append(out, sh)
		}
	}
	return out, nil
}

func (r *ShiftRepo) LatestShift(chatID int64) (domain.WorkShift, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.shifts[chatID]
	if len(list) == 0 {
		return domain.WorkShift{}, false
	}
	return list[len(list)-1], true
}

func (r *ShiftRepo) ClearShifts(chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shifts, chatID)
	return nil
}
