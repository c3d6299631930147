package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"log"
)

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil {
		if errors.Is(err, driver.ErrBadConn) {
			return false
		}
		return false
	}
	return name.Valid && name.String != ""
}

func HasColumn(q QueryRower, table, column string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)

	if err != nil {
		if errors.Is(err, driver.ErrBadConn) {
			return false
		}
		return false
	}
	return name.Valid && name.String != ""
}

// coreTables are the tables every read path depends on. The service can
// start without the satellite tables (metrics, press references), but a
// missing core table means queries will fail on the first request.
var coreTables = []string{
	"entity",
	"organization",
	"person",
	"funding_round",
	"investment",
	"acquisition",
	"event",
}

// VerifySchema warns about missing core tables at startup so a
// misconfigured DB_NAME surfaces before the first 500.
func VerifySchema(q QueryRower) {
	for _, table := range coreTables {
		if !HasTable(q, table) {
			log.Printf("warning: core table %q not found in the configured database", table)
		}
	}
}
