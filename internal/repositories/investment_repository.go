package repositories

import (
	"context"
	"database/sql"
	"strings"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"
)

type InvestmentRepository struct {
	DB *sql.DB
}

func (r InvestmentRepository) db() *sql.DB { return fallbackDB(r.DB) }

var investmentSortExprs = map[string]string{
	"AnnouncedOn": "COALESCE(i.announced_on, '1000-01-01')",
	"AmountUsd":   "COALESCE(m.amount_usd, 0)",
}

func (r InvestmentRepository) Search(ctx context.Context, req models.InvestmentSearchRequest) (domain.PagedResult[models.InvestmentListItem], error) {
	where := []string{"inv.is_deleted = 0", "org.is_deleted = 0"}
	args := []any{}

	if req.InvestorEntityID != nil {
		where = append(where, "i.investor_entity_id = ?")
		args = append(args, *req.InvestorEntityID)
	}
	if req.FundedOrganizationID != nil {
		where = append(where, "i.organization_id = ?")
		args = append(args, *req.FundedOrganizationID)
	}
	if req.FundingRoundID != nil {
		where = append(where, "i.funding_round_id = ?")
		args = append(args, *req.FundingRoundID)
	}
	if req.FromDate != nil && strings.TrimSpace(*req.FromDate) != "" {
		where = append(where, "i.announced_on >= ?")
		args = append(args, strings.TrimSpace(*req.FromDate))
	}
	if req.ToDate != nil && strings.TrimSpace(*req.ToDate) != "" {
		where = append(where, "i.announced_on <= ?")
		args = append(args, strings.TrimSpace(*req.ToDate))
	}
	if req.MinAmount != nil {
		where = append(where, "COALESCE(m.amount_usd, 0) >= ?")
		args = append(args, *req.MinAmount)
	}
	if req.MaxAmount != nil {
		where = append(where, "m.amount_usd <= ?")
		args = append(args, *req.MaxAmount)
	}

	sortExpr := investmentSortExprs[req.SortColumn]
	if sortExpr == "" {
		sortExpr = investmentSortExprs["AnnouncedOn"]
	}

	from := `
		FROM investment i
		LEFT JOIN investment_metrics m ON i.investment_id = m.investment_id
		LEFT JOIN funding_round fr ON i.funding_round_id = fr.funding_round_id
		INNER JOIN entity inv ON i.investor_entity_id = inv.entity_id
		INNER JOIN entity org ON i.organization_id = org.entity_id`
	whereSQL := strings.Join(where, " AND ")

	query := `
		WITH filtered AS (
			SELECT
				i.investment_id, i.funding_round_id,
				CASE
					WHEN i.funding_round_id IS NULL THEN NULL
					ELSE CONCAT(COALESCE(fr.investment_type, 'Unknown'), ' - ', COALESCE(org.display_name, 'Unknown'))
				END AS funding_round_name,
				fr.money_raised_usd AS funding_round_money_raised_usd,
				i.investor_entity_id, inv.display_name AS investor_name,
				inv.permalink AS investor_permalink, inv.entity_type AS investor_type,
				i.organization_id, org.display_name AS funded_org_name, org.permalink AS funded_org_permalink,
				i.announced_on,
				COALESCE(m.is_lead_investor, 0) AS is_lead_investor,
				m.amount_usd,
				COALESCE(m.num_partners, 0) AS partner_count,
				ROW_NUMBER() OVER (ORDER BY ` + sortExpr + ` ` + req.SortDirection.SQL() + `, i.investment_id ASC) AS row_num,
				COUNT(*) OVER () AS total_count` +
		from + `
			WHERE ` + whereSQL + `
		)
		SELECT
			investment_id, funding_round_id, funding_round_name, funding_round_money_raised_usd,
			investor_entity_id, investor_name, investor_permalink, investor_type,
			organization_id, funded_org_name, funded_org_permalink,
			announced_on, is_lead_investor, amount_usd, partner_count,
			total_count
		FROM filtered
		WHERE row_num BETWEEN ? AND ?
		ORDER BY row_num`

	winArgs := append(append([]any{}, args...), req.Offset()+1, req.Offset()+req.PageSize)

	rows, err := r.db().QueryContext(ctx, query, winArgs...)
	if err != nil {
		return domain.PagedResult[models.InvestmentListItem]{}, err
	}
	defer rows.Close()

	items := []models.InvestmentListItem{}
	total := 0
	for rows.Next() {
		var it models.InvestmentListItem
		var roundID, roundMoney sql.NullInt64
		var roundName sql.NullString
		var investorID sql.NullInt64
		var investorName, investorPermalink, investorType sql.NullString
		var orgID, amount sql.NullInt64
		var orgName, orgPermalink sql.NullString
		var announcedOn sql.NullTime
		if err := rows.Scan(
			&it.InvestmentID, &roundID, &roundName, &roundMoney,
			&investorID, &investorName, &investorPermalink, &investorType,
			&orgID, &orgName, &orgPermalink,
			&announcedOn, &it.IsLeadInvestor, &amount, &it.PartnerCount,
			&total,
		); err != nil {
			return domain.PagedResult[models.InvestmentListItem]{}, err
		}
		it.FundingRoundID = i64Ptr(roundID)
		it.FundingRoundName = strPtr(roundName)
		it.FundingRoundMoneyRaisedUsd = i64Ptr(roundMoney)
		it.InvestorEntityID = i64Ptr(investorID)
		it.InvestorName = strPtr(investorName)
		it.InvestorPermalink = strPtr(investorPermalink)
		it.InvestorType = strPtr(investorType)
		it.FundedOrganizationID = i64Ptr(orgID)
		it.FundedOrganizationName = strPtr(orgName)
		it.FundedOrganizationPermalink = strPtr(orgPermalink)
		it.AnnouncedOn = timePtr(announcedOn)
		it.AmountUsd = i64Ptr(amount)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.PagedResult[models.InvestmentListItem]{}, err
	}

	if len(items) == 0 {
		if err := r.db().QueryRowContext(ctx, "SELECT COUNT(*)"+from+" WHERE "+whereSQL, args...).Scan(&total); err != nil {
			return domain.PagedResult[models.InvestmentListItem]{}, err
		}
	}

	return domain.NewPagedResult(items, total, req.PagedRequest), nil
}

func (r InvestmentRepository) GetByID(ctx context.Context, investmentID int64) (*models.InvestmentDetail, error) {
	query := `
		SELECT
			i.investment_id, i.funding_round_id, i.announced_on, i.role,
			fr.investment_type, fr.money_raised_usd,
			i.investor_entity_id, inv.display_name, inv.permalink,
			i.organization_id, org.display_name, org.permalink,
			COALESCE(m.is_lead_investor, 0), m.amount_usd, COALESCE(m.num_partners, 0)
		FROM investment i
		LEFT JOIN investment_metrics m ON i.investment_id = m.investment_id
		LEFT JOIN funding_round fr ON i.funding_round_id = fr.funding_round_id
		LEFT JOIN entity inv ON i.investor_entity_id = inv.entity_id
		LEFT JOIN entity org ON i.organization_id = org.entity_id
		WHERE i.investment_id = ?`

	var d models.InvestmentDetail
	var roundID sql.NullInt64
	var announcedOn sql.NullTime
	var role, roundType sql.NullString
	var roundMoney sql.NullInt64
	var investorID sql.NullInt64
	var investorName, investorPermalink sql.NullString
	var orgID, amount sql.NullInt64
	var orgName, orgPermalink sql.NullString

	err := r.db().QueryRowContext(ctx, query, investmentID).Scan(
		&d.InvestmentID, &roundID, &announcedOn, &role,
		&roundType, &roundMoney,
		&investorID, &investorName, &investorPermalink,
		&orgID, &orgName, &orgPermalink,
		&d.IsLeadInvestor, &amount, &d.PartnerCount,
	)
	if err != nil {
		return nil, err
	}

	d.FundingRoundID = i64Ptr(roundID)
	d.AnnouncedOn = timePtr(announcedOn)
	d.Role = strPtr(role)
	d.FundingRoundInvestmentType = strPtr(roundType)
	d.FundingRoundMoneyRaisedUsd = i64Ptr(roundMoney)
	d.InvestorEntityID = i64Ptr(investorID)
	d.InvestorName = strPtr(investorName)
	d.InvestorPermalink = strPtr(investorPermalink)
	d.FundedOrganizationID = i64Ptr(orgID)
	d.FundedOrganizationName = strPtr(orgName)
	d.FundedOrganizationPermalink = strPtr(orgPermalink)
	d.AmountUsd = i64Ptr(amount)

	if d.Partners, err = r.partners(ctx, investmentID); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r InvestmentRepository) partners(ctx context.Context, investmentID int64) ([]models.Partner, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT ip.investment_partner_id, ip.partner_entity_id, e.display_name, e.permalink, ip.role
		FROM investment_partner ip
		INNER JOIN entity e ON ip.partner_entity_id = e.entity_id
		WHERE ip.investment_id = ? AND e.is_deleted = 0
		ORDER BY e.display_name`, investmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Partner{}
	for rows.Next() {
		var p models.Partner
		var name, permalink, role sql.NullString
		if err := rows.Scan(&p.InvestmentPartnerID, &p.PartnerEntityID, &name, &permalink, &role); err != nil {
			return nil, err
		}
		p.PartnerName = strPtr(name)
		p.PartnerPermalink = strPtr(permalink)
		p.Role = strPtr(role)
		out = append(out, p)
	}
	return out, rows.Err()
}
