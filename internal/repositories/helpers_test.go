package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDecodeStringList(t *testing.T) {
	cases := []struct {
		name string
		raw  sql.NullString
		want []string
	}{
		{"null column", sql.NullString{}, []string{}},
		{"blank", sql.NullString{String: "  ", Valid: true}, []string{}},
		{"valid array", sql.NullString{String: `["Acme Inc","ACME"]`, Valid: true}, []string{"Acme Inc", "ACME"}},
		{"json null", sql.NullString{String: `null`, Valid: true}, []string{}},
		{"malformed degrades", sql.NullString{String: `{"oops"`, Valid: true}, []string{}},
	}
	for _, tc := range cases {
		got := decodeStringList(tc.raw)
		if got == nil {
			t.Fatalf("%s: result must never be nil", tc.name)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
			}
		}
	}
}

func TestResolveEntityIDSkipsDeleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// permalink resolution carries the soft-delete predicate, so a deleted
	// entity's permalink behaves like a miss
	mock.ExpectQuery(`(?s)SELECT entity_id.+is_deleted = 0`).
		WithArgs("acme", "organization").
		WillReturnRows(sqlmock.NewRows([]string{"entity_id"}))

	if _, err := resolveEntityID(context.Background(), db, "organization", "acme"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNullConverters(t *testing.T) {
	if strPtr(sql.NullString{}) != nil {
		t.Fatalf("invalid NullString should map to nil")
	}
	if v := strPtr(sql.NullString{String: "x", Valid: true}); v == nil || *v != "x" {
		t.Fatalf("valid NullString mapped wrong: %v", v)
	}
	if i64Ptr(sql.NullInt64{}) != nil || intPtr(sql.NullInt64{}) != nil {
		t.Fatalf("invalid NullInt64 should map to nil")
	}
	if nbool(sql.NullBool{}) {
		t.Fatalf("invalid NullBool should read as false")
	}
	if !nbool(sql.NullBool{Bool: true, Valid: true}) {
		t.Fatalf("valid true NullBool should read as true")
	}
}
