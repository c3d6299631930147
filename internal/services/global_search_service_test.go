package services

import (
	"context"
	"testing"

	intconfig "cbexplorer/internal/config"
	"cbexplorer/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGlobalSearchBlankTextShortCircuits(t *testing.T) {
	// no sqlmock wiring on purpose: a blank search must not query at all
	intconfig.DB = nil

	svc := GlobalSearchService{}
	for _, text := range []string{"", "   ", "\t\n"} {
		res, err := svc.Search(context.Background(), models.GlobalSearchRequest{SearchText: text, TopN: 10})
		if err != nil {
			t.Fatalf("blank search %q errored: %v", text, err)
		}
		if res == nil || len(res) != 0 {
			t.Fatalf("blank search %q should answer an empty list, got %v", text, res)
		}
	}
}

func TestGlobalSearchClampsTopN(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	cols := []string{
		"entity_id", "uuid", "entity_type", "display_name", "permalink",
		"short_description", "image_url", "country_code", "city",
		"rank_value", "match_rank",
	}

	// TopN over the cap runs with LIMIT 100
	mock.ExpectQuery("LIMIT").
		WithArgs("acme%", "%acme%", "acme%", "%acme%", "%acme%", "%acme%", 100).
		WillReturnRows(sqlmock.NewRows(cols))
	// TopN zero falls back to the default of 10
	mock.ExpectQuery("LIMIT").
		WithArgs("acme%", "%acme%", "acme%", "%acme%", "%acme%", "%acme%", 10).
		WillReturnRows(sqlmock.NewRows(cols))

	svc := GlobalSearchService{}
	if _, err := svc.Search(context.Background(), models.GlobalSearchRequest{SearchText: "acme", TopN: 5000}); err != nil {
		t.Fatalf("search error: %v", err)
	}
	if _, err := svc.Search(context.Background(), models.GlobalSearchRequest{SearchText: "acme"}); err != nil {
		t.Fatalf("search error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGlobalSearchHonorsEntityTypeFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	cols := []string{
		"entity_id", "uuid", "entity_type", "display_name", "permalink",
		"short_description", "image_url", "country_code", "city",
		"rank_value", "match_rank",
	}

	// requested types reach the IN clause verbatim (normalized to lower
	// case): a type with no matching entity rows narrows the result to
	// nothing, it never widens into an unfiltered search
	mock.ExpectQuery("entity_type IN").
		WithArgs("acme%", "%acme%", "acme%", "%acme%", "%acme%", "%acme%", "funding_round", 10).
		WillReturnRows(sqlmock.NewRows(cols))
	mock.ExpectQuery("entity_type IN").
		WithArgs("acme%", "%acme%", "acme%", "%acme%", "%acme%", "%acme%", "organization", "banana", 10).
		WillReturnRows(sqlmock.NewRows(cols))

	svc := GlobalSearchService{}
	res, err := svc.Search(context.Background(), models.GlobalSearchRequest{
		SearchText:  "acme",
		EntityTypes: "Funding_Round",
		TopN:        10,
	})
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("type-restricted search widened: got %d results", len(res))
	}

	if _, err := svc.Search(context.Background(), models.GlobalSearchRequest{
		SearchText:  "acme",
		EntityTypes: "Organization, banana",
		TopN:        10,
	}); err != nil {
		t.Fatalf("search error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
