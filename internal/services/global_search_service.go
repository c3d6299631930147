package services

import (
	"context"
	"strconv"
	"strings"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"
	"cbexplorer/internal/repositories"
	"cbexplorer/internal/utils"
)

type GlobalSearchService struct {
	Repo      repositories.GlobalSearchRepository
	RequestID string
}

// Search returns the top cross-entity matches. A blank search text is a
// no-op: it answers an empty list without touching the database.
func (s GlobalSearchService) Search(ctx context.Context, req models.GlobalSearchRequest) ([]models.GlobalSearchResult, error) {
	req.SearchText = strings.TrimSpace(req.SearchText)
	if req.SearchText == "" {
		return []models.GlobalSearchResult{}, nil
	}

	if req.TopN < 1 {
		req.TopN = 10
	}
	if req.TopN > 100 {
		req.TopN = 100
	}

	// The type filter is applied as given: a type with no matching entity
	// rows narrows the result to nothing rather than widening the search.
	types := utils.SplitCSV(req.EntityTypes)

	utils.LogEvent(s.RequestID, "search", "global",
		"text="+req.SearchText+" topN="+strconv.Itoa(req.TopN)+" types="+strings.Join(types, ","))

	res, err := s.Repo.Search(ctx, req, types)
	if err != nil {
		return nil, domain.InternalError{Msg: "global search failed", Err: err}
	}
	return res, nil
}
