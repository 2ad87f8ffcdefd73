package sqlite

import (
	"context"
	"database/sql"

	"recargos-bot/pkg/calendar"
)

type SqliteHolidayRepo struct {
	db *sql.DB
}

func NewSqliteHolidayRepo(db *sql.DB) *SqliteHolidayRepo {
	return &SqliteHolidayRepo{db: db}
}

func (r *SqliteHolidayRepo) ListHolidays(ctx context.Context) ([]calendar.Holiday, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, name FROM holidays ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		if err := rows.Scan(&h.Date, &h.Name); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// AddHoliday inserts the holiday or renames an existing date.
func (r *SqliteHolidayRepo) AddHoliday(ctx context.Context, h calendar.Holiday) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO holidays (date, name) VALUES (?, ?) ON CONFLICT(date) DO UPDATE SET name = excluded.name`,
		h.Date,
		h.Name,
	)
	return err
}

func (r *SqliteHolidayRepo) CountHolidays(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM holidays`).Scan(&n)
	return n, err
}
