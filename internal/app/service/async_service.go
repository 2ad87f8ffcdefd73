package service

import (
	"context"
	"fmt"

	"recargos-bot/internal/domain"
	"recargos-bot/pkg/workerpool"

	"go.uber.org/zap"
)

// AsyncService runs pay calculations on the worker pool.
type AsyncService struct {
	Pool *workerpool.WorkerPool
	Calc *PayCalculator
	log  *zap.Logger
}

func NewAsyncService(pool *workerpool.WorkerPool, calc *PayCalculator, logger *zap.Logger) *AsyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AsyncService{Pool: pool, Calc: calc, log: logger.Named("async")}
}

// SubmitAsync runs fn on the pool and waits for its result.
func (a *AsyncService) SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	if err := a.Pool.Submit(ctx, workerpool.Task{Fn: fn, ResultC: resCh}); err != nil {
		return nil, err
	}
	res, err := a.await(ctx, resCh)
	if err != nil {
		return nil, err
	}
	return res.Value, res.Err
}

// CalculateWeeklyPay computes every shift on the pool and folds the results
// in input order, giving the same result as PayCalculator.CalculateWeeklyPay.
func (a *AsyncService) CalculateWeeklyPay(ctx context.Context, shifts []domain.WorkShift) (domain.LaborCalculation, error) {
	pending := make([]chan workerpool.Result, len(shifts))
	for i, sh := range shifts {
		sh := sh
		pending[i] = make(chan workerpool.Result, 1)
		err := a.Pool.Submit(ctx, workerpool.Task{
			Fn:      func() (any, error) { return a.Calc.CalculateShiftPay(sh) },
			ResultC: pending[i],
		})
		if err != nil {
			return domain.LaborCalculation{}, err
		}
	}

	total := domain.NewLaborCalculation()
	for i, ch := range pending {
		res, err := a.await(ctx, ch)
		if err != nil {
			return domain.LaborCalculation{}, err
		}
		if res.Err != nil {
			a.log.Debug("shift calculation failed", zap.Int("shift_index", i), zap.Error(res.Err))
			return domain.LaborCalculation{}, &domain.ShiftError{Index: i, Date: shifts[i].Date, Err: res.Err}
		}
		calc, ok := res.Value.(domain.LaborCalculation)
		if !ok {
			return domain.LaborCalculation{}, fmt.Errorf("shift %d: unexpected result %T", i, res.Value)
		}
		total = total.Add(calc)
	}
	return total, nil
}

// await returns an error only when waiting itself fails; the task's own
// error stays in the Result.
func (a *AsyncService) await(ctx context.Context, ch <-chan workerpool.Result) (workerpool.Result, error) {
	select {
	case <-ctx.Done():
		return workerpool.Result{}, ctx.Err()
	case <-a.Pool.Done():
		// a result may have landed just before Close
		select {
		case res := <-ch:
			return res, nil
		default:
			return workerpool.Result{}, workerpool.ErrPoolClosed
		}
	case res := <-ch:
		return res, nil
	}
}
