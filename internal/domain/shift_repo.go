package domain

import "time"

// ShiftLog keeps the shifts a chat has entered during the bot session.
type ShiftLog interface {
	AddShift(chatID int64, shift WorkShift) error
	GetShifts(chatID int64, from, to time.Time) ([]WorkShift, error)
	LatestShift(chatID int64) (WorkShift, bool)
	ClearShifts(chatID int64) error
}
