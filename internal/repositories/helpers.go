package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	intconfig "cbexplorer/internal/config"
	"cbexplorer/internal/utils"
)

func fallbackDB(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func i64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func f64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func nbool(v sql.NullBool) bool {
	return v.Valid && v.Bool
}

// decodeStringList parses a JSON-array column defensively: malformed
// stored payloads degrade to an empty list instead of failing the fetch.
func decodeStringList(raw sql.NullString) []string {
	if !raw.Valid || strings.TrimSpace(raw.String) == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		utils.LogEvent("", "repo", "decode_aliases", "malformed alias json ignored: "+err.Error())
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

// resolveEntityID maps a permalink to its entity id for one entity type.
// Soft-deleted rows never resolve.
func resolveEntityID(ctx context.Context, db *sql.DB, entityType, permalink string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, `
		SELECT entity_id
		FROM entity
		WHERE permalink = ? AND entity_type = ? AND is_deleted = 0
		LIMIT 1`,
		strings.TrimSpace(permalink), entityType,
	).Scan(&id)
	return id, err
}
