package telegram

import (
	"regexp"
	"strings"
	"time"

	"recargos-bot/internal/domain"
	"recargos-bot/internal/shared/apperror"
	"recargos-bot/pkg/calendar"

	"github.com/shopspring/decimal"
)

var ErrShiftInput = apperror.New(apperror.CodeInvalidInput, "expected: HH:MM HH:MM SALARY [position] [location]")

// 80.000 or 1.200.000: dots as thousand separators
var thousandsDots = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// ParseShiftText reads "HH:MM HH:MM SALARY [position] [location...]" for the
// given date. "HH:MM-HH:MM" is accepted as the first field too. Time values are
// validated by the pay calculator.
func ParseShiftText(date time.Time, text string) (domain.WorkShift, error) {
	fields := strings.Fields(text)
	if len(fields) > 0 && len(fields[0]) == 11 && fields[0][5] == '-' {
		fields = append([]string{fields[0][:5], fields[0][6:]}, fields[1:]...)
	}
	if len(fields) < 3 {
		return domain.WorkShift{}, apperror.Wrapf(ErrShiftInput, "got %q", text)
	}

	salary, err := parseSalary(fields[2])
	if err != nil {
		return domain.WorkShift{}, err
	}

	shift := domain.WorkShift{
		Date:       date,
		StartTime:  fields[0],
		EndTime:    fields[1],
		BaseSalary: salary,
	}
	if len(fields) > 3 {
		shift.Position = fields[3]
	}
	if len(fields) > 4 {
		shift.Location = strings.Join(fields[4:], " ")
	}
	return shift, nil
}

// ParseCalcCommand reads "YYYY-MM-DD HH:MM HH:MM SALARY ...".
func ParseCalcCommand(payload string) (domain.WorkShift, error) {
	fields := strings.Fields(payload)
	if len(fields) == 0 {
		return domain.WorkShift{}, apperror.Wrapf(ErrShiftInput, "got %q", payload)
	}
	date, err := calendar.ParseDate(fields[0])
	if err != nil {
		return domain.WorkShift{}, apperror.Wrap(domain.ErrInvalidDate, err)
	}
	return ParseShiftText(date, strings.Join(fields[1:], " "))
}

func parseSalary(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(s, "$")
	if thousandsDots.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, apperror.Wrap(domain.ErrInvalidSalary, err)
	}
	return d, nil
}
