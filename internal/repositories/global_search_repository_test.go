package repositories

import (
	"context"
	"testing"

	"cbexplorer/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var globalSearchColumns = []string{
	"entity_id", "uuid", "entity_type", "display_name", "permalink",
	"short_description", "image_url", "country_code", "city",
	"rank_value", "match_rank",
}

func TestGlobalSearchArgsAndMapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(globalSearchColumns).
		AddRow(7, "uuid-7", "organization", "Acme", "acme",
			"Widgets", nil, "USA", nil, 12.0, 1).
		AddRow(8, "uuid-8", "person", "Acme Jones", "acme-jones",
			nil, nil, nil, nil, nil, 2)

	// CASE args lead, then the LIKE/uuid args, then LIMIT
	mock.ExpectQuery("SELECT").
		WithArgs("acme%", "%acme%", "acme%", "%acme%", "%acme%", "%acme%", 10).
		WillReturnRows(rows)

	repo := GlobalSearchRepository{DB: db}
	res, err := repo.Search(context.Background(), models.GlobalSearchRequest{SearchText: "acme", TopN: 10}, nil)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}

	if len(res) != 2 {
		t.Fatalf("results got %d want 2", len(res))
	}
	if res[0].MatchRank != 1 || res[1].MatchRank != 2 {
		t.Fatalf("match ranks wrong: %d, %d", res[0].MatchRank, res[1].MatchRank)
	}
	if res[1].Rank != nil {
		t.Fatalf("null rank should map to nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGlobalSearchEntityTypeFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("entity_type IN").
		WithArgs("acme%", "%acme%", "acme%", "%acme%", "%acme%", "%acme%", "organization", "person", 5).
		WillReturnRows(sqlmock.NewRows(globalSearchColumns))

	repo := GlobalSearchRepository{DB: db}
	res, err := repo.Search(context.Background(),
		models.GlobalSearchRequest{SearchText: "acme", TopN: 5},
		[]string{"organization", "person"})
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("results got %d want 0", len(res))
	}
	if res == nil {
		t.Fatalf("no-hit search must return an empty slice")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
