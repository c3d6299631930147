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

// OrganizationService sanitizes paging input and maps storage misses to
// not-found errors so handlers stay mechanical.
type OrganizationService struct {
	Repo      repositories.OrganizationRepository
	RequestID string
}

var organizationSortColumns = []string{"Rank", "Name", "FundingTotal", "LastFundingAt"}

func (s OrganizationService) Search(ctx context.Context, req models.OrganizationSearchRequest) (domain.PagedResult[models.OrganizationListItem], error) {
	req.Sanitize(organizationSortColumns, "Rank")
	utils.LogEvent(s.RequestID, "organizations", "search",
		"page="+strconv.Itoa(req.PageNumber)+" size="+strconv.Itoa(req.PageSize)+" sort="+req.SortColumn)

	res, err := s.Repo.Search(ctx, req)
	if err != nil {
		return res, domain.InternalError{Msg: "organization search failed", Err: err}
	}
	return res, nil
}

func (s OrganizationService) GetByID(ctx context.Context, id int64) (*models.OrganizationDetail, error) {
	if id <= 0 {
		return nil, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	utils.LogEvent(s.RequestID, "organizations", "get", "id="+strconv.FormatInt(id, 10))

	d, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "organization", Err: err}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "organization lookup failed", Err: err}
	}
	return d, nil
}

func (s OrganizationService) GetByPermalink(ctx context.Context, permalink string) (*models.OrganizationDetail, error) {
	if permalink == "" {
		return nil, domain.ValidationError{Field: "permalink", Msg: "must not be empty"}
	}
	utils.LogEvent(s.RequestID, "organizations", "get_by_permalink", "permalink="+permalink)

	d, err := s.Repo.GetByPermalink(ctx, permalink)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "organization", Err: err}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "organization lookup failed", Err: err}
	}
	return d, nil
}
