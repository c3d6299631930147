package repositories

import (
	"context"
	"database/sql"
	"strings"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"
)

type AcquisitionRepository struct {
	DB *sql.DB
}

func (r AcquisitionRepository) db() *sql.DB { return fallbackDB(r.DB) }

var acquisitionSortExprs = map[string]string{
	"AnnouncedOn": "COALESCE(a.announced_on, '1000-01-01')",
	"PriceUsd":    "COALESCE(a.price_usd, 0)",
}

func (r AcquisitionRepository) Search(ctx context.Context, req models.AcquisitionSearchRequest) (domain.PagedResult[models.AcquisitionListItem], error) {
	where := []string{"1 = 1"}
	args := []any{}

	if req.FromDate != nil && strings.TrimSpace(*req.FromDate) != "" {
		where = append(where, "a.announced_on >= ?")
		args = append(args, strings.TrimSpace(*req.FromDate))
	}
	if req.ToDate != nil && strings.TrimSpace(*req.ToDate) != "" {
		where = append(where, "a.announced_on <= ?")
		args = append(args, strings.TrimSpace(*req.ToDate))
	}
	if req.AcquirerOrganizationID != nil {
		where = append(where, "a.acquirer_organization_id = ?")
		args = append(args, *req.AcquirerOrganizationID)
	}
	if req.AcquireeOrganizationID != nil {
		where = append(where, "a.acquiree_organization_id = ?")
		args = append(args, *req.AcquireeOrganizationID)
	}
	if req.MinPrice != nil {
		where = append(where, "COALESCE(a.price_usd, 0) >= ?")
		args = append(args, *req.MinPrice)
	}
	if req.MaxPrice != nil {
		where = append(where, "a.price_usd <= ?")
		args = append(args, *req.MaxPrice)
	}
	if req.AcquisitionStatus != nil && strings.TrimSpace(*req.AcquisitionStatus) != "" {
		where = append(where, "a.acquisition_status = ?")
		args = append(args, strings.TrimSpace(*req.AcquisitionStatus))
	}
	if req.AcquisitionType != nil && strings.TrimSpace(*req.AcquisitionType) != "" {
		where = append(where, "a.acquisition_type = ?")
		args = append(args, strings.TrimSpace(*req.AcquisitionType))
	}

	sortExpr := acquisitionSortExprs[req.SortColumn]
	if sortExpr == "" {
		sortExpr = acquisitionSortExprs["AnnouncedOn"]
	}

	from := `
		FROM acquisition a
		LEFT JOIN entity acq ON a.acquirer_organization_id = acq.entity_id
		LEFT JOIN entity ae ON a.acquiree_organization_id = ae.entity_id`
	whereSQL := strings.Join(where, " AND ")

	query := `
		WITH filtered AS (
			SELECT
				a.acquisition_id,
				a.acquirer_organization_id, acq.display_name AS acquirer_name, acq.permalink AS acquirer_permalink,
				a.acquiree_organization_id, ae.display_name AS acquiree_name, ae.permalink AS acquiree_permalink,
				a.announced_on, a.completed_on, a.price_usd,
				a.acquisition_status, a.acquisition_type,
				ROW_NUMBER() OVER (ORDER BY ` + sortExpr + ` ` + req.SortDirection.SQL() + `, a.acquisition_id ASC) AS row_num,
				COUNT(*) OVER () AS total_count` +
		from + `
			WHERE ` + whereSQL + `
		)
		SELECT
			acquisition_id,
			acquirer_organization_id, acquirer_name, acquirer_permalink,
			acquiree_organization_id, acquiree_name, acquiree_permalink,
			announced_on, completed_on, price_usd,
			acquisition_status, acquisition_type,
			total_count
		FROM filtered
		WHERE row_num BETWEEN ? AND ?
		ORDER BY row_num`

	winArgs := append(append([]any{}, args...), req.Offset()+1, req.Offset()+req.PageSize)

	rows, err := r.db().QueryContext(ctx, query, winArgs...)
	if err != nil {
		return domain.PagedResult[models.AcquisitionListItem]{}, err
	}
	defer rows.Close()

	items := []models.AcquisitionListItem{}
	total := 0
	for rows.Next() {
		var it models.AcquisitionListItem
		var acquirerID, acquireeID, price sql.NullInt64
		var acquirerName, acquirerPermalink, acquireeName, acquireePermalink sql.NullString
		var announcedOn, completedOn sql.NullTime
		var status, acqType sql.NullString
		if err := rows.Scan(
			&it.AcquisitionID,
			&acquirerID, &acquirerName, &acquirerPermalink,
			&acquireeID, &acquireeName, &acquireePermalink,
			&announcedOn, &completedOn, &price,
			&status, &acqType,
			&total,
		); err != nil {
			return domain.PagedResult[models.AcquisitionListItem]{}, err
		}
		it.AcquirerOrganizationID = i64Ptr(acquirerID)
		it.AcquirerName = strPtr(acquirerName)
		it.AcquirerPermalink = strPtr(acquirerPermalink)
		it.AcquireeOrganizationID = i64Ptr(acquireeID)
		it.AcquireeName = strPtr(acquireeName)
		it.AcquireePermalink = strPtr(acquireePermalink)
		it.AnnouncedOn = timePtr(announcedOn)
		it.CompletedOn = timePtr(completedOn)
		it.PriceUsd = i64Ptr(price)
		it.AcquisitionStatus = strPtr(status)
		it.AcquisitionType = strPtr(acqType)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.PagedResult[models.AcquisitionListItem]{}, err
	}

	if len(items) == 0 {
		if err := r.db().QueryRowContext(ctx, "SELECT COUNT(*)"+from+" WHERE "+whereSQL, args...).Scan(&total); err != nil {
			return domain.PagedResult[models.AcquisitionListItem]{}, err
		}
	}

	return domain.NewPagedResult(items, total, req.PagedRequest), nil
}

func (r AcquisitionRepository) GetByID(ctx context.Context, acquisitionID int64) (*models.AcquisitionDetail, error) {
	query := `
		SELECT
			a.acquisition_id, a.announced_on, a.completed_on, a.acquisition_type,
			a.price_usd, a.price_currency, a.payment_type, a.acquisition_status,
			a.acquirer_organization_id, acq.display_name, acq.permalink,
			a.acquiree_organization_id, ae.display_name, ae.permalink
		FROM acquisition a
		LEFT JOIN entity acq ON a.acquirer_organization_id = acq.entity_id
		LEFT JOIN entity ae ON a.acquiree_organization_id = ae.entity_id
		WHERE a.acquisition_id = ?`

	var d models.AcquisitionDetail
	var announcedOn, completedOn sql.NullTime
	var acqType, priceCurrency, paymentType, status sql.NullString
	var price, acquirerID, acquireeID sql.NullInt64
	var acquirerName, acquirerPermalink, acquireeName, acquireePermalink sql.NullString

	err := r.db().QueryRowContext(ctx, query, acquisitionID).Scan(
		&d.AcquisitionID, &announcedOn, &completedOn, &acqType,
		&price, &priceCurrency, &paymentType, &status,
		&acquirerID, &acquirerName, &acquirerPermalink,
		&acquireeID, &acquireeName, &acquireePermalink,
	)
	if err != nil {
		return nil, err
	}

	d.AnnouncedOn = timePtr(announcedOn)
	d.CompletedOn = timePtr(completedOn)
	d.AcquisitionType = strPtr(acqType)
	d.PriceUsd = i64Ptr(price)
	d.PriceCurrency = strPtr(priceCurrency)
	d.PaymentType = strPtr(paymentType)
	d.AcquisitionStatus = strPtr(status)
	d.AcquirerOrganizationID = i64Ptr(acquirerID)
	d.AcquirerName = strPtr(acquirerName)
	d.AcquirerPermalink = strPtr(acquirerPermalink)
	d.AcquireeOrganizationID = i64Ptr(acquireeID)
	d.AcquireeName = strPtr(acquireeName)
	d.AcquireePermalink = strPtr(acquireePermalink)

	return &d, nil
}
