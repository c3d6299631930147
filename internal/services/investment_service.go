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

type InvestmentService struct {
	Repo      repositories.InvestmentRepository
	RequestID string
}

var investmentSortColumns = []string{"AnnouncedOn", "AmountUsd"}

func (s InvestmentService) Search(ctx context.Context, req models.InvestmentSearchRequest) (domain.PagedResult[models.InvestmentListItem], error) {
	if err := validateDateRange(req.FromDate, req.ToDate); err != nil {
		return domain.PagedResult[models.InvestmentListItem]{}, err
	}
	req.Sanitize(investmentSortColumns, "AnnouncedOn")
	utils.LogEvent(s.RequestID, "investments", "search",
		"page="+strconv.Itoa(req.PageNumber)+" size="+strconv.Itoa(req.PageSize)+" sort="+req.SortColumn)

	res, err := s.Repo.Search(ctx, req)
	if err != nil {
		return res, domain.InternalError{Msg: "investment search failed", Err: err}
	}
	return res, nil
}

func (s InvestmentService) GetByID(ctx context.Context, id int64) (*models.InvestmentDetail, error) {
	if id <= 0 {
		return nil, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	utils.LogEvent(s.RequestID, "investments", "get", "id="+strconv.FormatInt(id, 10))

	d, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "investment", Err: err}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "investment lookup failed", Err: err}
	}
	return d, nil
}
