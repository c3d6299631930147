package repositories

import (
	"context"
	"database/sql"
	"strings"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"
)

type FundingRoundRepository struct {
	DB *sql.DB
}

func (r FundingRoundRepository) db() *sql.DB { return fallbackDB(r.DB) }

var fundingRoundSortExprs = map[string]string{
	"AnnouncedOn":      "COALESCE(fr.announced_on, '1000-01-01')",
	"RankFundingRound": "COALESCE(m.rank_funding_round, 999999)",
	"MoneyRaisedUsd":   "COALESCE(fr.money_raised_usd, 0)",
}

// roundNameExpr renders the display name shown for a round,
// e.g. "series_a - Acme"; missing halves degrade to "Unknown".
const roundNameExpr = `
	CONCAT(COALESCE(fr.investment_type, 'Unknown'), ' - ', COALESCE(org.display_name, 'Unknown'))`

func (r FundingRoundRepository) Search(ctx context.Context, req models.FundingRoundSearchRequest) (domain.PagedResult[models.FundingRoundListItem], error) {
	where := []string{"1 = 1"}
	args := []any{}

	if req.FromDate != nil && strings.TrimSpace(*req.FromDate) != "" {
		where = append(where, "fr.announced_on >= ?")
		args = append(args, strings.TrimSpace(*req.FromDate))
	}
	if req.ToDate != nil && strings.TrimSpace(*req.ToDate) != "" {
		where = append(where, "fr.announced_on <= ?")
		args = append(args, strings.TrimSpace(*req.ToDate))
	}
	if req.InvestmentType != nil && strings.TrimSpace(*req.InvestmentType) != "" {
		where = append(where, "fr.investment_type = ?")
		args = append(args, strings.TrimSpace(*req.InvestmentType))
	}
	if req.InvestmentStage != nil && strings.TrimSpace(*req.InvestmentStage) != "" {
		where = append(where, "fr.investment_stage = ?")
		args = append(args, strings.TrimSpace(*req.InvestmentStage))
	}
	if req.IsEquity != nil {
		where = append(where, "fr.is_equity = ?")
		args = append(args, *req.IsEquity)
	}
	if req.FundingStage != nil && strings.TrimSpace(*req.FundingStage) != "" {
		where = append(where, "fr.funding_stage = ?")
		args = append(args, strings.TrimSpace(*req.FundingStage))
	}
	if req.FundedOrganizationID != nil {
		where = append(where, "fr.funded_organization_id = ?")
		args = append(args, *req.FundedOrganizationID)
	}
	if req.MinMoneyRaised != nil {
		where = append(where, "COALESCE(fr.money_raised_usd, 0) >= ?")
		args = append(args, *req.MinMoneyRaised)
	}
	if req.MaxMoneyRaised != nil {
		where = append(where, "fr.money_raised_usd <= ?")
		args = append(args, *req.MaxMoneyRaised)
	}

	sortExpr := fundingRoundSortExprs[req.SortColumn]
	if sortExpr == "" {
		sortExpr = fundingRoundSortExprs["AnnouncedOn"]
	}

	from := `
		FROM funding_round fr
		LEFT JOIN funding_round_metrics m ON fr.funding_round_id = m.funding_round_id
		LEFT JOIN entity org ON fr.funded_organization_id = org.entity_id`
	whereSQL := strings.Join(where, " AND ")

	query := `
		WITH filtered AS (
			SELECT
				fr.funding_round_id,` + roundNameExpr + ` AS round_name,
				fr.permalink, fr.announced_on, fr.investment_type, fr.investment_stage,
				fr.funding_stage, COALESCE(fr.is_equity, 0) AS is_equity, fr.money_raised_usd,
				fr.funded_organization_id, org.display_name AS funded_org_name, org.permalink AS funded_org_permalink,
				COALESCE(m.rank_funding_round, 999999) AS rank_funding_round,
				COALESCE(m.num_investors, 0) AS num_investors,
				COALESCE(m.num_lead_investors, 0) AS num_lead_investors,
				COALESCE(m.num_partners, 0) AS num_partners,
				ROW_NUMBER() OVER (ORDER BY ` + sortExpr + ` ` + req.SortDirection.SQL() + `, fr.funding_round_id ASC) AS row_num,
				COUNT(*) OVER () AS total_count` +
		from + `
			WHERE ` + whereSQL + `
		)
		SELECT
			funding_round_id, round_name, permalink, announced_on,
			investment_type, investment_stage, funding_stage, is_equity, money_raised_usd,
			funded_organization_id, funded_org_name, funded_org_permalink,
			rank_funding_round, num_investors, num_lead_investors, num_partners,
			total_count
		FROM filtered
		WHERE row_num BETWEEN ? AND ?
		ORDER BY row_num`

	winArgs := append(append([]any{}, args...), req.Offset()+1, req.Offset()+req.PageSize)

	rows, err := r.db().QueryContext(ctx, query, winArgs...)
	if err != nil {
		return domain.PagedResult[models.FundingRoundListItem]{}, err
	}
	defer rows.Close()

	items := []models.FundingRoundListItem{}
	total := 0
	for rows.Next() {
		var it models.FundingRoundListItem
		var permalink, investmentType, investmentStage, fundingStage sql.NullString
		var announcedOn sql.NullTime
		var moneyRaised, orgID sql.NullInt64
		var orgName, orgPermalink sql.NullString
		if err := rows.Scan(
			&it.FundingRoundID, &it.RoundName, &permalink, &announcedOn,
			&investmentType, &investmentStage, &fundingStage, &it.IsEquity, &moneyRaised,
			&orgID, &orgName, &orgPermalink,
			&it.RankFundingRound, &it.NumInvestors, &it.NumLeadInvestors, &it.NumPartners,
			&total,
		); err != nil {
			return domain.PagedResult[models.FundingRoundListItem]{}, err
		}
		it.Permalink = strPtr(permalink)
		it.AnnouncedOn = timePtr(announcedOn)
		it.InvestmentType = strPtr(investmentType)
		it.InvestmentStage = strPtr(investmentStage)
		it.FundingStage = strPtr(fundingStage)
		it.MoneyRaisedUsd = i64Ptr(moneyRaised)
		it.FundedOrganizationID = i64Ptr(orgID)
		it.FundedOrganizationName = strPtr(orgName)
		it.FundedOrganizationPermalink = strPtr(orgPermalink)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.PagedResult[models.FundingRoundListItem]{}, err
	}

	if len(items) == 0 {
		if err := r.db().QueryRowContext(ctx, "SELECT COUNT(*)"+from+" WHERE "+whereSQL, args...).Scan(&total); err != nil {
			return domain.PagedResult[models.FundingRoundListItem]{}, err
		}
	}

	return domain.NewPagedResult(items, total, req.PagedRequest), nil
}

func (r FundingRoundRepository) GetByID(ctx context.Context, fundingRoundID int64) (*models.FundingRoundDetail, error) {
	query := `
		SELECT
			fr.funding_round_id,` + roundNameExpr + `,
			fr.permalink, fr.short_description, fr.description, fr.image_url,
			fr.funded_organization_id, org.display_name, org.permalink,
			o.funding_stage, o.funding_total_usd, o.revenue_range_code, org.image_url,
			fr.investment_type, fr.investment_stage, fr.funding_stage,
			COALESCE(fr.is_equity, 0),
			fr.announced_on, fr.closed_on,
			fr.money_raised_usd, fr.target_money_raised_usd,
			fr.pre_money_valuation_usd, fr.post_money_valuation_usd,
			COALESCE(m.rank_funding_round, 999999),
			COALESCE(m.num_investors, 0), COALESCE(m.num_lead_investors, 0),
			COALESCE(m.num_partners, 0),
			fr.created_at, fr.updated_at
		FROM funding_round fr
		LEFT JOIN funding_round_metrics m ON fr.funding_round_id = m.funding_round_id
		LEFT JOIN entity org ON fr.funded_organization_id = org.entity_id
		LEFT JOIN organization o ON fr.funded_organization_id = o.organization_id
		WHERE fr.funding_round_id = ?`

	var d models.FundingRoundDetail
	var permalink, shortDesc, desc, imageURL sql.NullString
	var orgID sql.NullInt64
	var orgName, orgPermalink, orgStage, orgRevenueRange, orgImageURL sql.NullString
	var orgFundingTotal sql.NullInt64
	var investmentType, investmentStage, fundingStage sql.NullString
	var announcedOn, closedOn sql.NullTime
	var moneyRaised, targetMoney, preMoney, postMoney sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := r.db().QueryRowContext(ctx, query, fundingRoundID).Scan(
		&d.FundingRoundID, &d.RoundName,
		&permalink, &shortDesc, &desc, &imageURL,
		&orgID, &orgName, &orgPermalink,
		&orgStage, &orgFundingTotal, &orgRevenueRange, &orgImageURL,
		&investmentType, &investmentStage, &fundingStage,
		&d.IsEquity,
		&announcedOn, &closedOn,
		&moneyRaised, &targetMoney,
		&preMoney, &postMoney,
		&d.RankFundingRound,
		&d.NumInvestors, &d.NumLeadInvestors,
		&d.NumPartners,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Permalink = strPtr(permalink)
	d.ShortDescription = strPtr(shortDesc)
	d.Description = strPtr(desc)
	d.ImageURL = strPtr(imageURL)
	d.FundedOrganizationID = i64Ptr(orgID)
	d.FundedOrganizationName = strPtr(orgName)
	d.FundedOrganizationPermalink = strPtr(orgPermalink)
	d.FundedOrganizationStage = strPtr(orgStage)
	d.FundedOrganizationFundingTotalUsd = i64Ptr(orgFundingTotal)
	d.FundedOrganizationRevenueRange = strPtr(orgRevenueRange)
	d.FundedOrganizationImageURL = strPtr(orgImageURL)
	d.InvestmentType = strPtr(investmentType)
	d.InvestmentStage = strPtr(investmentStage)
	d.FundingStage = strPtr(fundingStage)
	d.AnnouncedOn = timePtr(announcedOn)
	d.ClosedOn = timePtr(closedOn)
	d.MoneyRaisedUsd = i64Ptr(moneyRaised)
	d.TargetMoneyRaisedUsd = i64Ptr(targetMoney)
	d.PreMoneyValuationUsd = i64Ptr(preMoney)
	d.PostMoneyValuationUsd = i64Ptr(postMoney)
	d.CreatedAt = timePtr(createdAt)
	d.UpdatedAt = timePtr(updatedAt)

	if d.Investors, err = r.investors(ctx, fundingRoundID); err != nil {
		return nil, err
	}
	if d.Categories, err = r.categories(ctx, fundingRoundID); err != nil {
		return nil, err
	}
	if d.CategoryGroups, err = r.categoryGroups(ctx, fundingRoundID); err != nil {
		return nil, err
	}
	if d.PressReferences, err = r.pressReferences(ctx, fundingRoundID); err != nil {
		return nil, err
	}

	return &d, nil
}

// GetByPermalink resolves against funding_round.permalink directly: the
// round's own table is the canonical home of its permalink.
func (r FundingRoundRepository) GetByPermalink(ctx context.Context, permalink string) (*models.FundingRoundDetail, error) {
	var id int64
	err := r.db().QueryRowContext(ctx, `
		SELECT funding_round_id
		FROM funding_round
		WHERE permalink = ?
		LIMIT 1`, strings.TrimSpace(permalink)).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r FundingRoundRepository) investors(ctx context.Context, fundingRoundID int64) ([]models.Investor, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT fi.funding_round_investor_id, fi.investor_entity_id,
			e.display_name, e.permalink, e.entity_type, e.image_url,
			COALESCE(fi.is_lead_investor, 0), fi.amount_usd, fi.role
		FROM funding_round_investor fi
		INNER JOIN entity e ON fi.investor_entity_id = e.entity_id
		WHERE fi.funding_round_id = ? AND e.is_deleted = 0
		ORDER BY fi.is_lead_investor DESC, e.display_name`, fundingRoundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Investor{}
	for rows.Next() {
		var v models.Investor
		var name, permalink, investorType, imageURL, role sql.NullString
		var amount sql.NullInt64
		if err := rows.Scan(&v.FundingRoundInvestorID, &v.InvestorEntityID, &name, &permalink, &investorType, &imageURL, &v.IsLeadInvestor, &amount, &role); err != nil {
			return nil, err
		}
		v.InvestorName = strPtr(name)
		v.InvestorPermalink = strPtr(permalink)
		v.InvestorType = strPtr(investorType)
		v.InvestorImageURL = strPtr(imageURL)
		v.AmountUsd = i64Ptr(amount)
		v.Role = strPtr(role)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r FundingRoundRepository) categories(ctx context.Context, fundingRoundID int64) ([]models.Category, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT c.category_uuid, c.name, c.permalink, fc.is_primary
		FROM funding_round_category fc
		INNER JOIN category c ON fc.category_uuid = c.category_uuid
		WHERE fc.funding_round_id = ?
		ORDER BY fc.is_primary DESC, c.name`, fundingRoundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Category{}
	for rows.Next() {
		var c models.Category
		var permalink sql.NullString
		var isPrimary sql.NullBool
		if err := rows.Scan(&c.CategoryUUID, &c.Name, &permalink, &isPrimary); err != nil {
			return nil, err
		}
		c.Permalink = strPtr(permalink)
		c.IsPrimary = nbool(isPrimary)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r FundingRoundRepository) categoryGroups(ctx context.Context, fundingRoundID int64) ([]models.CategoryGroup, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT cg.category_group_uuid, cg.name, cg.permalink, fcg.is_primary
		FROM funding_round_category_group fcg
		INNER JOIN category_group cg ON fcg.category_group_uuid = cg.category_group_uuid
		WHERE fcg.funding_round_id = ?
		ORDER BY fcg.is_primary DESC, cg.name`, fundingRoundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CategoryGroup{}
	for rows.Next() {
		var g models.CategoryGroup
		var permalink sql.NullString
		var isPrimary sql.NullBool
		if err := rows.Scan(&g.CategoryGroupUUID, &g.Name, &permalink, &isPrimary); err != nil {
			return nil, err
		}
		g.Permalink = strPtr(permalink)
		g.IsPrimary = nbool(isPrimary)
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r FundingRoundRepository) pressReferences(ctx context.Context, fundingRoundID int64) ([]models.PressReference, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT pr.press_reference_id, pr.title, pr.publisher, pr.author, pr.published_on, pr.url
		FROM press_reference pr
		WHERE pr.funding_round_id = ?
		ORDER BY pr.published_on DESC
		LIMIT 10`, fundingRoundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PressReference{}
	for rows.Next() {
		var p models.PressReference
		var title, publisher, author, url sql.NullString
		var publishedOn sql.NullTime
		if err := rows.Scan(&p.PressReferenceID, &title, &publisher, &author, &publishedOn, &url); err != nil {
			return nil, err
		}
		p.Title = strPtr(title)
		p.Publisher = strPtr(publisher)
		p.Author = strPtr(author)
		p.PublishedOn = timePtr(publishedOn)
		p.URL = strPtr(url)
		out = append(out, p)
	}
	return out, rows.Err()
}
