package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var orgSearchColumns = []string{
	"entity_id", "uuid", "display_name", "permalink", "country_code", "city",
	"location", "image_url", "company_type", "operating_status", "ipo_status",
	"revenue_range_code", "num_employees_enum", "funding_stage",
	"funding_total_usd", "last_funding_at", "last_funding_type",
	"rank_value", "num_funding_rounds", "num_investments", "num_lead_investments",
	"num_acquisitions", "num_exits", "num_articles", "total_count",
}

func sanitizedOrgRequest(page, size int) models.OrganizationSearchRequest {
	req := models.OrganizationSearchRequest{}
	req.PageNumber = page
	req.PageSize = size
	req.SortColumn = "Rank"
	req.SortDirection = domain.Ascending
	return req
}

func TestOrganizationSearchReturnsEnvelope(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	lastFunding := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(orgSearchColumns).
		AddRow(101, "uuid-a", "Acme", "acme", "USA", "San Francisco",
			"San Francisco, USA", nil, "for_profit", "active", "private",
			"r_00010M", "c_00101_00250", "early_stage_venture",
			int64(12000000), lastFunding, "series_a",
			12.5, 3, 0, 0, 0, 0, 7, 57).
		AddRow(102, "uuid-b", "Beta Labs", "beta-labs", nil, nil,
			nil, nil, nil, "active", nil,
			nil, nil, nil,
			nil, nil, nil,
			44.0, 0, 0, 0, 0, 0, 0, 57)

	mock.ExpectQuery("WITH filtered AS").
		WithArgs(1, 25).
		WillReturnRows(rows)

	repo := OrganizationRepository{DB: db}
	res, err := repo.Search(context.Background(), sanitizedOrgRequest(1, 25))
	if err != nil {
		t.Fatalf("search error: %v", err)
	}

	if res.TotalCount != 57 {
		t.Fatalf("totalCount got %d want 57", res.TotalCount)
	}
	if res.TotalPages != 3 {
		t.Fatalf("totalPages got %d want 3", res.TotalPages)
	}
	if len(res.Items) != 2 {
		t.Fatalf("items got %d want 2", len(res.Items))
	}
	first := res.Items[0]
	if first.OrganizationID != 101 || first.DisplayName != "Acme" {
		t.Fatalf("unexpected first item: %+v", first)
	}
	if first.Location == nil || *first.Location != "San Francisco, USA" {
		t.Fatalf("location not mapped: %+v", first.Location)
	}
	second := res.Items[1]
	if second.CountryCode != nil || second.FundingTotalUsd != nil {
		t.Fatalf("null columns should map to nil pointers: %+v", second)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrganizationSearchPastTheEndKeepsTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// windowed query finds nothing for page 99, so the total comes from a
	// second count with the same predicate
	mock.ExpectQuery("WITH filtered AS").
		WithArgs(2451, 2475).
		WillReturnRows(sqlmock.NewRows(orgSearchColumns))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(57))

	repo := OrganizationRepository{DB: db}
	res, err := repo.Search(context.Background(), sanitizedOrgRequest(99, 25))
	if err != nil {
		t.Fatalf("search error: %v", err)
	}

	if res.TotalCount != 57 {
		t.Fatalf("past-the-end totalCount got %d want 57", res.TotalCount)
	}
	if len(res.Items) != 0 {
		t.Fatalf("items got %d want 0", len(res.Items))
	}
	if res.Items == nil {
		t.Fatalf("items must serialize as [], not null")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrganizationSearchFilterArgsOrdered(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	country := "DEU"
	city := "Berlin"
	minFunding := int64(1000000)

	req := sanitizedOrgRequest(1, 25)
	req.CountryCode = &country
	req.City = &city
	req.MinFundingTotalUsd = &minFunding

	// filters append in declaration order, window bounds always last
	mock.ExpectQuery("WITH filtered AS").
		WithArgs("DEU", "Berlin%", int64(1000000), 1, 25).
		WillReturnRows(sqlmock.NewRows(orgSearchColumns))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WithArgs("DEU", "Berlin%", int64(1000000)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := OrganizationRepository{DB: db}
	if _, err := repo.Search(context.Background(), req); err != nil {
		t.Fatalf("search error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrganizationQueriesExcludeDeleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// the grid and the detail lookup both carry the soft-delete predicate;
	// a row flagged deleted is invisible through either path
	mock.ExpectQuery(`(?s)WITH filtered AS.+e\.is_deleted = 0`).
		WithArgs(1, 25).
		WillReturnRows(sqlmock.NewRows(orgSearchColumns))
	mock.ExpectQuery(`(?s)SELECT COUNT\(\*\).+e\.is_deleted = 0`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`(?s)FROM entity e.+e\.is_deleted = 0`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"entity_id"}))

	repo := OrganizationRepository{DB: db}
	if _, err := repo.Search(context.Background(), sanitizedOrgRequest(1, 25)); err != nil {
		t.Fatalf("search error: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), 404); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrganizationGetByPermalinkMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT entity_id").
		WithArgs("no-such-org", "organization").
		WillReturnRows(sqlmock.NewRows([]string{"entity_id"}))

	repo := OrganizationRepository{DB: db}
	_, err = repo.GetByPermalink(context.Background(), "no-such-org")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
