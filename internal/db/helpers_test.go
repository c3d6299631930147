package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHasTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("entity").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("entity"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	if !HasTable(conn, "entity") {
		t.Fatalf("existing table reported missing")
	}
	if HasTable(conn, "missing") {
		t.Fatalf("missing table reported present")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHasColumn(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("entity", "permalink").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("permalink"))

	if !HasColumn(conn, "entity", "permalink") {
		t.Fatalf("existing column reported missing")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
