package repositories

import (
	"context"
	"testing"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var fundingRoundSearchColumns = []string{
	"funding_round_id", "round_name", "permalink", "announced_on",
	"investment_type", "investment_stage", "funding_stage", "is_equity", "money_raised_usd",
	"funded_organization_id", "funded_org_name", "funded_org_permalink",
	"rank_funding_round", "num_investors", "num_lead_investors", "num_partners",
	"total_count",
}

func TestFundingRoundSearchRanksUnrankedLast(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// a round without metrics gets the same sentinel in the projection as
	// in the sort expression, so it displays what it sorts by
	mock.ExpectQuery(`(?s)COALESCE\(m\.rank_funding_round, 999999\) AS rank_funding_round`).
		WithArgs(1, 25).
		WillReturnRows(sqlmock.NewRows(fundingRoundSearchColumns).
			AddRow(11, "series_a - Acme", "acme-series-a", nil,
				"series_a", nil, nil, 1, int64(5000000),
				int64(101), "Acme", "acme",
				999999, 4, 1, 0,
				1))

	req := models.FundingRoundSearchRequest{}
	req.PageNumber = 1
	req.PageSize = 25
	req.SortColumn = "AnnouncedOn"
	req.SortDirection = domain.Ascending

	repo := FundingRoundRepository{DB: db}
	res, err := repo.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("items got %d want 1", len(res.Items))
	}
	if res.Items[0].RankFundingRound != 999999 {
		t.Fatalf("unranked round got rank %d want 999999", res.Items[0].RankFundingRound)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
