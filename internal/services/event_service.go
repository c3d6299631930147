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

type EventService struct {
	Repo      repositories.EventRepository
	RequestID string
}

var eventSortColumns = []string{"StartsOn", "RankEvent"}

func (s EventService) Search(ctx context.Context, req models.EventSearchRequest) (domain.PagedResult[models.EventListItem], error) {
	if err := validateDateRange(req.FromDate, req.ToDate); err != nil {
		return domain.PagedResult[models.EventListItem]{}, err
	}
	req.Sanitize(eventSortColumns, "StartsOn")
	utils.LogEvent(s.RequestID, "events", "search",
		"page="+strconv.Itoa(req.PageNumber)+" size="+strconv.Itoa(req.PageSize)+" sort="+req.SortColumn)

	res, err := s.Repo.Search(ctx, req)
	if err != nil {
		return res, domain.InternalError{Msg: "event search failed", Err: err}
	}
	return res, nil
}

func (s EventService) GetByID(ctx context.Context, id int64) (*models.EventDetail, error) {
	if id <= 0 {
		return nil, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	utils.LogEvent(s.RequestID, "events", "get", "id="+strconv.FormatInt(id, 10))

	d, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "event", Err: err}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "event lookup failed", Err: err}
	}
	return d, nil
}

func (s EventService) GetByPermalink(ctx context.Context, permalink string) (*models.EventDetail, error) {
	if permalink == "" {
		return nil, domain.ValidationError{Field: "permalink", Msg: "must not be empty"}
	}
	utils.LogEvent(s.RequestID, "events", "get_by_permalink", "permalink="+permalink)

	d, err := s.Repo.GetByPermalink(ctx, permalink)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError{Resource: "event", Err: err}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "event lookup failed", Err: err}
	}
	return d, nil
}
