package services

import (
	"context"
	"testing"

	intconfig "cbexplorer/internal/config"
	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestOrganizationGetByIDRejectsBadID(t *testing.T) {
	svc := OrganizationService{}
	_, err := svc.GetByID(context.Background(), 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = svc.GetByID(context.Background(), -5)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrganizationGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("FROM entity e").
		WithArgs(int64(12345)).
		WillReturnRows(sqlmock.NewRows([]string{"entity_id"}))

	svc := OrganizationService{}
	_, err = svc.GetByID(context.Background(), 12345)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrganizationSearchSanitizesBeforeQuerying(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	// bogus paging and sort input must reach the repository clamped: page 1,
	// size 25, whitelisted Rank expression ascending
	mock.ExpectQuery(`COALESCE\(m\.rank_value, 999999\) ASC`).
		WithArgs(1, 25).
		WillReturnRows(sqlmock.NewRows([]string{"count"}))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	req := models.OrganizationSearchRequest{}
	req.PageNumber = -1
	req.PageSize = 0
	req.SortColumn = "evil_column"
	req.SortDirection = "upward"

	svc := OrganizationService{}
	res, err := svc.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if res.PageNumber != 1 || res.PageSize != 25 {
		t.Fatalf("paging not sanitized: page=%d size=%d", res.PageNumber, res.PageSize)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrganizationGetByPermalinkRejectsEmpty(t *testing.T) {
	svc := OrganizationService{}
	_, err := svc.GetByPermalink(context.Background(), "")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
