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

type AcquisitionService struct {
	Repo      repositories.AcquisitionRepository
	RequestID string
}

var acquisitionSortColumns = []string{"AnnouncedOn", "PriceUsd"}

func (s AcquisitionService) Search(ctx context.Context, req models.AcquisitionSearchRequest) (domain.PagedResult[models.AcquisitionListItem], error) {
	if err := validateDateRange(req.FromDate, req.ToDate); err != nil {
		return domain.PagedResult[models.AcquisitionListItem]{}, err
	}
	req.Sanitize(acquisitionSortColumns, "AnnouncedOn")
	utils.LogEvent(s.RequestID, "acquisitions", "search",
		"page="+strconv.Itoa(req.PageNumber)+" size="+strconv.Itoa(req.PageSize)+" sort="+req.SortColumn)

	res, err := s.Repo.Search(ctx, req)
	if err != nil {
		return res, domain.InternalError{Msg: "acquisition search failed", Err: err}
	}
	return res, nil
}

func (s AcquisitionService) GetByID(ctx context.Context, id int64) (*models.AcquisitionDetail, error) {
	if id <= 0 {
		return nil, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	utils.LogEvent(s.RequestID, "acquisitions", "get", "id="+strconv.FormatInt(id, 10))

	d, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "acquisition", Err: err}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "acquisition lookup failed", Err: err}
	}
	return d, nil
}
