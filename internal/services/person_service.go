package services

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"
	"cbexplorer/internal/repositories"
	"cbexplorer/internal/utils"
)

type PersonService struct {
	Repo      repositories.PersonRepository
	RequestID string
}

var personSortColumns = []string{"RankPerson", "Name", "NumInvestments", "NumFoundedOrganizations"}

func (s PersonService) Search(ctx context.Context, req models.PersonSearchRequest) (domain.PagedResult[models.PersonListItem], error) {
	req.Sanitize(personSortColumns, "RankPerson")
	utils.LogEvent(s.RequestID, "people", "search",
		"page="+strconv.Itoa(req.PageNumber)+" size="+strconv.Itoa(req.PageSize)+" sort="+req.SortColumn)

	res, err := s.Repo.Search(ctx, req)
	if err != nil {
		return res, domain.InternalError{Msg: "person search failed", Err: err}
	}
	return res, nil
}

func (s PersonService) GetByID(ctx context.Context, id int64) (*models.PersonDetail, error) {
	if id <= 0 {
		return nil, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	utils.LogEvent(s.RequestID, "people", "get", "id="+strconv.FormatInt(id, 10))

	d, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "person", Err: err}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "person lookup failed", Err: err}
	}
	return d, nil
}

func (s PersonService) GetByPermalink(ctx context.Context, permalink string) (*models.PersonDetail, error) {
	if permalink == "" {
		return nil, domain.ValidationError{Field: "permalink", Msg: "must not be empty"}
	}
	utils.LogEvent(s.RequestID, "people", "get_by_permalink", "permalink="+permalink)

	d, err := s.Repo.GetByPermalink(ctx, permalink)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "person", Err: err}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "person lookup failed", Err: err}
	}
	return d, nil
}
