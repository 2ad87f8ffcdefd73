package service

import (
	"recargos-bot/internal/domain"
)

// CalculateWeeklyPay folds the pay of every shift in input order. Shifts do
// not interact: overtime is only ever counted per shift. The first failing
// shift aborts the batch.
func (p *PayCalculator) CalculateWeeklyPay(shifts []domain.WorkShift) (domain.LaborCalculation, error) {
	total := domain.NewLaborCalculation()
	for i, sh := range shifts {
		calc, err := p.CalculateShiftPay(sh)
		if err != nil {
			return domain.LaborCalculation{}, &domain.ShiftError{Index: i, Date: sh.Date, Err: err}
		}
		total = total.Add(calc)
	}
	return total, nil
}
