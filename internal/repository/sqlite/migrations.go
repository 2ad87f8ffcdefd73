package sqlite

import (
	"database/sql"
)

const createHolidaysTable = `
CREATE TABLE IF NOT EXISTS holidays (
    date TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT ''
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createHolidaysTable); err != nil {
		return err
	}
	return nil
}
