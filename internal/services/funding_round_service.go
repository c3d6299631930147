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

type FundingRoundService struct {
	Repo      repositories.FundingRoundRepository
	RequestID string
}

var fundingRoundSortColumns = []string{"AnnouncedOn", "RankFundingRound", "MoneyRaisedUsd"}

func (s FundingRoundService) Search(ctx context.Context, req models.FundingRoundSearchRequest) (domain.PagedResult[models.FundingRoundListItem], error) {
	if err := validateDateRange(req.FromDate, req.ToDate); err != nil {
		return domain.PagedResult[models.FundingRoundListItem]{}, err
	}
	req.Sanitize(fundingRoundSortColumns, "AnnouncedOn")
	utils.LogEvent(s.RequestID, "funding_rounds", "search",
		"page="+strconv.Itoa(req.PageNumber)+" size="+strconv.Itoa(req.PageSize)+" sort="+req.SortColumn)

	res, err := s.Repo.Search(ctx, req)
	if err != nil {
		return res, domain.InternalError{Msg: "funding round search failed", Err: err}
	}
	return res, nil
}

func (s FundingRoundService) GetByID(ctx context.Context, id int64) (*models.FundingRoundDetail, error) {
	if id <= 0 {
		return nil, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	utils.LogEvent(s.RequestID, "funding_rounds", "get", "id="+strconv.FormatInt(id, 10))

	d, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "funding round", Err: err}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "funding round lookup failed", Err: err}
	}
	return d, nil
}

func (s FundingRoundService) GetByPermalink(ctx context.Context, permalink string) (*models.FundingRoundDetail, error) {
	if permalink == "" {
		return nil, domain.ValidationError{Field: "permalink", Msg: "must not be empty"}
	}
	utils.LogEvent(s.RequestID, "funding_rounds", "get_by_permalink", "permalink="+permalink)

	d, err := s.Repo.GetByPermalink(ctx, permalink)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "funding round", Err: err}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "funding round lookup failed", Err: err}
	}
	return d, nil
}
