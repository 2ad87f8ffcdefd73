package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkShift is a pre-recorded shift. EndTime earlier than StartTime means the
// shift ends on the following day. BaseSalary is the daily wage for an
// 8-hour regular day, in COP.
type WorkShift struct {
	Date       time.Time
	StartTime  string
	EndTime    string
	BaseSalary decimal.Decimal
	Position   string
	Location   string
}
