package repositories

import (
	"context"
	"database/sql"
	"strings"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"
)

type OrganizationRepository struct {
	DB *sql.DB
}

func (r OrganizationRepository) db() *sql.DB { return fallbackDB(r.DB) }

// organizationSortExprs whitelists sortable columns. The ORDER BY
// expression is always taken from this map, never from request input.
var organizationSortExprs = map[string]string{
	"Rank":          "COALESCE(m.rank_value, 999999)",
	"Name":          "e.display_name",
	"FundingTotal":  "COALESCE(o.funding_total_usd, 0)",
	"LastFundingAt": "COALESCE(o.last_funding_at, '1000-01-01')",
}

func (r OrganizationRepository) Search(ctx context.Context, req models.OrganizationSearchRequest) (domain.PagedResult[models.OrganizationListItem], error) {
	where := []string{"e.entity_type = 'organization'", "e.is_deleted = 0"}
	args := []any{}

	addEq := func(expr string, v *string) {
		if v != nil && strings.TrimSpace(*v) != "" {
			where = append(where, expr+" = ?")
			args = append(args, strings.TrimSpace(*v))
		}
	}
	addEq("o.company_type", req.CompanyType)
	addEq("o.operating_status", req.OperatingStatus)
	addEq("o.ipo_status", req.IpoStatus)
	addEq("e.country_code", req.CountryCode)
	addEq("o.revenue_range_code", req.RevenueRangeCode)
	addEq("o.num_employees_enum", req.NumEmployeesEnum)
	addEq("o.funding_stage", req.FundingStage)

	if req.City != nil && strings.TrimSpace(*req.City) != "" {
		where = append(where, "e.city LIKE ?")
		args = append(args, strings.TrimSpace(*req.City)+"%")
	}
	if req.MinFundingTotalUsd != nil {
		where = append(where, "COALESCE(o.funding_total_usd, 0) >= ?")
		args = append(args, *req.MinFundingTotalUsd)
	}
	if req.MaxFundingTotalUsd != nil {
		where = append(where, "o.funding_total_usd <= ?")
		args = append(args, *req.MaxFundingTotalUsd)
	}
	if req.SearchText != nil && strings.TrimSpace(*req.SearchText) != "" {
		where = append(where, "e.display_name LIKE ?")
		args = append(args, strings.TrimSpace(*req.SearchText)+"%")
	}

	sortExpr := organizationSortExprs[req.SortColumn]
	if sortExpr == "" {
		sortExpr = organizationSortExprs["Rank"]
	}

	from := `
		FROM entity e
		INNER JOIN organization o ON e.entity_id = o.organization_id
		LEFT JOIN organization_metrics m ON o.organization_id = m.organization_id`
	whereSQL := strings.Join(where, " AND ")

	query := `
		WITH filtered AS (
			SELECT
				e.entity_id, e.uuid, e.display_name, e.permalink,
				e.country_code, e.city, e.image_url,
				COALESCE(e.num_articles, 0) AS num_articles,
				o.company_type, o.operating_status, o.ipo_status,
				o.revenue_range_code, o.num_employees_enum, o.funding_stage,
				o.funding_total_usd, o.last_funding_at, o.last_funding_type,
				COALESCE(m.rank_value, 999999) AS rank_value,
				COALESCE(m.num_funding_rounds, 0) AS num_funding_rounds,
				COALESCE(m.num_investments, 0) AS num_investments,
				COALESCE(m.num_lead_investments, 0) AS num_lead_investments,
				COALESCE(m.num_acquisitions, 0) AS num_acquisitions,
				COALESCE(m.num_exits, 0) AS num_exits,
				ROW_NUMBER() OVER (ORDER BY ` + sortExpr + ` ` + req.SortDirection.SQL() + `, e.entity_id ASC) AS row_num,
				COUNT(*) OVER () AS total_count` +
		from + `
			WHERE ` + whereSQL + `
		)
		SELECT
			entity_id, uuid, display_name, permalink, country_code, city,
			CASE
				WHEN city IS NOT NULL AND country_code IS NOT NULL THEN CONCAT(city, ', ', country_code)
				WHEN city IS NOT NULL THEN city
				ELSE country_code
			END AS location,
			image_url, company_type, operating_status, ipo_status,
			revenue_range_code, num_employees_enum, funding_stage,
			funding_total_usd, last_funding_at, last_funding_type,
			rank_value, num_funding_rounds, num_investments, num_lead_investments,
			num_acquisitions, num_exits, num_articles, total_count
		FROM filtered
		WHERE row_num BETWEEN ? AND ?
		ORDER BY row_num`

	winArgs := append(append([]any{}, args...), req.Offset()+1, req.Offset()+req.PageSize)

	rows, err := r.db().QueryContext(ctx, query, winArgs...)
	if err != nil {
		return domain.PagedResult[models.OrganizationListItem]{}, err
	}
	defer rows.Close()

	items := []models.OrganizationListItem{}
	total := 0
	for rows.Next() {
		var it models.OrganizationListItem
		var countryCode, city, location, imageURL, companyType, operatingStatus sql.NullString
		var ipoStatus, revenueRange, numEmployees, fundingStage, lastFundingType sql.NullString
		var fundingTotal sql.NullInt64
		var lastFundingAt sql.NullTime
		if err := rows.Scan(
			&it.EntityID, &it.UUID, &it.DisplayName, &it.Permalink,
			&countryCode, &city, &location, &imageURL,
			&companyType, &operatingStatus, &ipoStatus,
			&revenueRange, &numEmployees, &fundingStage,
			&fundingTotal, &lastFundingAt, &lastFundingType,
			&it.Rank, &it.NumFundingRounds, &it.NumInvestments, &it.NumLeadInvestments,
			&it.NumAcquisitions, &it.NumExits, &it.NumArticles, &total,
		); err != nil {
			return domain.PagedResult[models.OrganizationListItem]{}, err
		}
		it.OrganizationID = it.EntityID
		it.CountryCode = strPtr(countryCode)
		it.City = strPtr(city)
		it.Location = strPtr(location)
		it.ImageURL = strPtr(imageURL)
		it.CompanyType = strPtr(companyType)
		it.OperatingStatus = strPtr(operatingStatus)
		it.IpoStatus = strPtr(ipoStatus)
		it.RevenueRangeCode = strPtr(revenueRange)
		it.NumEmployeesEnum = strPtr(numEmployees)
		it.FundingStage = strPtr(fundingStage)
		it.FundingTotalUsd = i64Ptr(fundingTotal)
		it.LastFundingAt = timePtr(lastFundingAt)
		it.LastFundingType = strPtr(lastFundingType)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.PagedResult[models.OrganizationListItem]{}, err
	}

	// A window past the last page returns no rows; the total still has to
	// reflect the filtered set, so count it with the same predicate.
	if len(items) == 0 {
		if err := r.db().QueryRowContext(ctx, "SELECT COUNT(*)"+from+" WHERE "+whereSQL, args...).Scan(&total); err != nil {
			return domain.PagedResult[models.OrganizationListItem]{}, err
		}
	}

	return domain.NewPagedResult(items, total, req.PagedRequest), nil
}

func (r OrganizationRepository) GetByID(ctx context.Context, entityID int64) (*models.OrganizationDetail, error) {
	query := `
		SELECT
			e.entity_id, e.uuid, e.display_name, e.display_name AS legal_name, e.permalink,
			e.short_description, e.description, e.image_url,
			e.city, e.region, e.country, e.country_code, o.headquarters_text,
			o.company_type, o.operating_status, o.ipo_status, o.founded_on, o.closed_on,
			o.funding_stage, o.funding_total_usd, o.last_funding_type, o.last_funding_at,
			o.revenue_range_code, o.num_employees_enum,
			CASE
				WHEN m.num_employees_min IS NOT NULL AND m.num_employees_max IS NOT NULL
					THEN (m.num_employees_min + m.num_employees_max) DIV 2
				WHEN m.num_employees_min IS NOT NULL THEN m.num_employees_min
				ELSE m.num_employees_max
			END AS employee_count_exact,
			m.num_employees_min, m.num_employees_max,
			COALESCE(m.rank_value, 0), COALESCE(m.rank_delta_d7, 0),
			COALESCE(m.rank_delta_d30, 0), COALESCE(m.rank_delta_d90, 0),
			COALESCE(e.num_articles, 0),
			COALESCE(m.num_funding_rounds, 0), COALESCE(m.num_investments, 0),
			COALESCE(m.num_lead_investments, 0), COALESCE(m.num_acquisitions, 0),
			COALESCE(m.num_exits, 0),
			e.website_url, o.homepage_url, o.contact_email, o.phone_number,
			e.linkedin_url, e.twitter_url, e.facebook_url,
			o.stock_symbol, o.stock_exchange_symbol,
			e.created_at, e.updated_at,
			e.aliases_json, e.permalink_aliases_json
		FROM entity e
		INNER JOIN organization o ON e.entity_id = o.organization_id
		LEFT JOIN organization_metrics m ON o.organization_id = m.organization_id
		WHERE e.entity_id = ? AND e.entity_type = 'organization' AND e.is_deleted = 0`

	var d models.OrganizationDetail
	var legalName, shortDesc, desc, imageURL sql.NullString
	var hqCity, hqRegion, hqCountry, hqCountryCode, hqText sql.NullString
	var companyType, operatingStatus, ipoStatus sql.NullString
	var foundedOn, closedOn, lastFundingDate sql.NullTime
	var fundingStage, lastFundingType, revenueRange, employeeRange sql.NullString
	var totalFunding sql.NullInt64
	var empExact, empMin, empMax sql.NullInt64
	var websiteURL, homepageURL, contactEmail, phoneNumber sql.NullString
	var linkedinURL, twitterURL, facebookURL sql.NullString
	var stockSymbol, stockExchangeSymbol sql.NullString
	var createdAt, updatedAt sql.NullTime
	var aliasesJSON, permalinkAliasesJSON sql.NullString

	err := r.db().QueryRowContext(ctx, query, entityID).Scan(
		&d.EntityID, &d.UUID, &d.DisplayName, &legalName, &d.Permalink,
		&shortDesc, &desc, &imageURL,
		&hqCity, &hqRegion, &hqCountry, &hqCountryCode, &hqText,
		&companyType, &operatingStatus, &ipoStatus, &foundedOn, &closedOn,
		&fundingStage, &totalFunding, &lastFundingType, &lastFundingDate,
		&revenueRange, &employeeRange,
		&empExact, &empMin, &empMax,
		&d.Rank, &d.RankDeltaD7, &d.RankDeltaD30, &d.RankDeltaD90,
		&d.NumArticles,
		&d.NumFundingRounds, &d.NumInvestments,
		&d.NumLeadInvestments, &d.NumAcquisitions,
		&d.NumExits,
		&websiteURL, &homepageURL, &contactEmail, &phoneNumber,
		&linkedinURL, &twitterURL, &facebookURL,
		&stockSymbol, &stockExchangeSymbol,
		&createdAt, &updatedAt,
		&aliasesJSON, &permalinkAliasesJSON,
	)
	if err != nil {
		return nil, err
	}

	d.LegalName = strPtr(legalName)
	d.ShortDescription = strPtr(shortDesc)
	d.Description = strPtr(desc)
	d.ImageURL = strPtr(imageURL)
	d.HeadquartersCity = strPtr(hqCity)
	d.HeadquartersRegion = strPtr(hqRegion)
	d.HeadquartersCountry = strPtr(hqCountry)
	d.HeadquartersCountryCode = strPtr(hqCountryCode)
	d.HeadquartersText = strPtr(hqText)
	d.CompanyType = strPtr(companyType)
	d.OperatingStatus = strPtr(operatingStatus)
	d.IpoStatus = strPtr(ipoStatus)
	d.FoundedOn = timePtr(foundedOn)
	d.ClosedOn = timePtr(closedOn)
	d.FundingStage = strPtr(fundingStage)
	d.TotalFundingUsd = i64Ptr(totalFunding)
	d.LastFundingType = strPtr(lastFundingType)
	d.LastFundingDate = timePtr(lastFundingDate)
	d.RevenueRange = strPtr(revenueRange)
	d.EmployeeCountRange = strPtr(employeeRange)
	d.EmployeeCountExact = intPtr(empExact)
	d.NumEmployeesMin = intPtr(empMin)
	d.NumEmployeesMax = intPtr(empMax)
	d.WebsiteURL = strPtr(websiteURL)
	d.HomepageURL = strPtr(homepageURL)
	d.ContactEmail = strPtr(contactEmail)
	d.PhoneNumber = strPtr(phoneNumber)
	d.LinkedinURL = strPtr(linkedinURL)
	d.TwitterURL = strPtr(twitterURL)
	d.FacebookURL = strPtr(facebookURL)
	d.StockSymbol = strPtr(stockSymbol)
	d.StockExchangeSymbol = strPtr(stockExchangeSymbol)
	d.CreatedAt = timePtr(createdAt)
	d.UpdatedAt = timePtr(updatedAt)
	d.Aliases = decodeStringList(aliasesJSON)
	d.PermalinkAliases = decodeStringList(permalinkAliasesJSON)

	// Related collections are fetched sequentially within the request.
	if d.Categories, err = r.categories(ctx, entityID); err != nil {
		return nil, err
	}
	if d.CategoryGroups, err = r.categoryGroups(ctx, entityID); err != nil {
		return nil, err
	}
	if d.Locations, err = r.locations(ctx, entityID); err != nil {
		return nil, err
	}
	if d.Founders, err = r.founders(ctx, entityID); err != nil {
		return nil, err
	}
	if d.FundingRounds, err = r.fundingRounds(ctx, entityID); err != nil {
		return nil, err
	}
	if d.InvestmentsMade, err = r.investmentsMade(ctx, entityID); err != nil {
		return nil, err
	}

	acquisitions, err := r.acquisitions(ctx, entityID)
	if err != nil {
		return nil, err
	}
	d.AcquisitionsMade = []models.AcquisitionSummary{}
	d.WasAcquiredIn = []models.AcquisitionSummary{}
	for _, a := range acquisitions {
		if a.IsAcquirer {
			d.AcquisitionsMade = append(d.AcquisitionsMade, a)
		} else {
			d.WasAcquiredIn = append(d.WasAcquiredIn, a)
		}
	}

	if d.StockListings, err = r.stockListings(ctx, entityID); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r OrganizationRepository) GetByPermalink(ctx context.Context, permalink string) (*models.OrganizationDetail, error) {
	id, err := resolveEntityID(ctx, r.db(), "organization", permalink)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r OrganizationRepository) categories(ctx context.Context, entityID int64) ([]models.Category, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT c.category_uuid, c.name, c.permalink, ec.is_primary
		FROM entity_category ec
		INNER JOIN category c ON ec.category_uuid = c.category_uuid
		WHERE ec.entity_id = ?
		ORDER BY ec.is_primary DESC, c.name`, entityID)
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

func (r OrganizationRepository) categoryGroups(ctx context.Context, entityID int64) ([]models.CategoryGroup, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT cg.category_group_uuid, cg.name, cg.permalink, ecg.is_primary
		FROM entity_category_group ecg
		INNER JOIN category_group cg ON ecg.category_group_uuid = cg.category_group_uuid
		WHERE ecg.entity_id = ?
		ORDER BY ecg.is_primary DESC, cg.name`, entityID)
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

func (r OrganizationRepository) locations(ctx context.Context, entityID int64) ([]models.Location, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT l.location_uuid, l.name, l.permalink, l.location_type, el.is_primary
		FROM entity_location el
		INNER JOIN location l ON el.location_uuid = l.location_uuid
		WHERE el.entity_id = ?`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Location{}
	for rows.Next() {
		var l models.Location
		var name, permalink, locType sql.NullString
		var isPrimary sql.NullBool
		if err := rows.Scan(&l.LocationUUID, &name, &permalink, &locType, &isPrimary); err != nil {
			return nil, err
		}
		l.Name = strPtr(name)
		l.Permalink = strPtr(permalink)
		l.LocationType = strPtr(locType)
		l.IsPrimary = nbool(isPrimary)
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r OrganizationRepository) founders(ctx context.Context, entityID int64) ([]models.Founder, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT p.person_id, e.display_name, e.permalink, e.image_url, ofr.title, ofr.is_primary
		FROM organization_founder ofr
		INNER JOIN person p ON ofr.person_id = p.person_id
		INNER JOIN entity e ON p.person_id = e.entity_id
		WHERE ofr.organization_id = ? AND e.is_deleted = 0
		ORDER BY ofr.is_primary DESC`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Founder{}
	for rows.Next() {
		var f models.Founder
		var imageURL, title sql.NullString
		var isPrimary sql.NullBool
		if err := rows.Scan(&f.PersonID, &f.DisplayName, &f.Permalink, &imageURL, &title, &isPrimary); err != nil {
			return nil, err
		}
		f.ImageURL = strPtr(imageURL)
		f.Title = strPtr(title)
		f.IsPrimary = nbool(isPrimary)
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r OrganizationRepository) fundingRounds(ctx context.Context, entityID int64) ([]models.FundingRoundSummary, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT fr.funding_round_id, fr.announced_on, fr.investment_type,
			fr.funding_stage, fr.money_raised_usd, COALESCE(m.num_investors, 0)
		FROM funding_round fr
		LEFT JOIN funding_round_metrics m ON fr.funding_round_id = m.funding_round_id
		WHERE fr.funded_organization_id = ?
		ORDER BY fr.announced_on DESC`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FundingRoundSummary{}
	for rows.Next() {
		var s models.FundingRoundSummary
		var announcedOn sql.NullTime
		var investmentType, fundingStage sql.NullString
		var moneyRaised sql.NullInt64
		if err := rows.Scan(&s.FundingRoundID, &announcedOn, &investmentType, &fundingStage, &moneyRaised, &s.NumInvestors); err != nil {
			return nil, err
		}
		s.AnnouncedOn = timePtr(announcedOn)
		s.InvestmentType = strPtr(investmentType)
		s.FundingStage = strPtr(fundingStage)
		s.MoneyRaisedUsd = i64Ptr(moneyRaised)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r OrganizationRepository) investmentsMade(ctx context.Context, entityID int64) ([]models.InvestmentSummary, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT i.investment_id, i.announced_on, e.display_name, e.permalink,
			i.organization_id, COALESCE(m.is_lead_investor, 0), m.amount_usd
		FROM investment i
		LEFT JOIN investment_metrics m ON i.investment_id = m.investment_id
		INNER JOIN entity e ON i.organization_id = e.entity_id
		WHERE i.investor_entity_id = ? AND e.is_deleted = 0
		ORDER BY i.announced_on DESC`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.InvestmentSummary{}
	for rows.Next() {
		var s models.InvestmentSummary
		var announcedOn sql.NullTime
		var orgName, orgPermalink sql.NullString
		var orgID, amount sql.NullInt64
		if err := rows.Scan(&s.InvestmentID, &announcedOn, &orgName, &orgPermalink, &orgID, &s.IsLeadInvestor, &amount); err != nil {
			return nil, err
		}
		s.AnnouncedOn = timePtr(announcedOn)
		s.FundedOrgName = strPtr(orgName)
		s.FundedOrgPermalink = strPtr(orgPermalink)
		s.FundedOrgID = i64Ptr(orgID)
		s.AmountUsd = i64Ptr(amount)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r OrganizationRepository) acquisitions(ctx context.Context, entityID int64) ([]models.AcquisitionSummary, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT
			a.acquisition_id, a.announced_on, a.price_usd, a.acquisition_status,
			CASE WHEN a.acquirer_organization_id = ? THEN 1 ELSE 0 END AS is_acquirer,
			CASE WHEN a.acquirer_organization_id = ? THEN ae.display_name ELSE acq.display_name END,
			CASE WHEN a.acquirer_organization_id = ? THEN ae.permalink ELSE acq.permalink END,
			CASE WHEN a.acquirer_organization_id = ? THEN a.acquiree_organization_id ELSE a.acquirer_organization_id END
		FROM acquisition a
		LEFT JOIN entity ae ON a.acquiree_organization_id = ae.entity_id
		LEFT JOIN entity acq ON a.acquirer_organization_id = acq.entity_id
		WHERE a.acquirer_organization_id = ? OR a.acquiree_organization_id = ?
		ORDER BY a.announced_on DESC`,
		entityID, entityID, entityID, entityID, entityID, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.AcquisitionSummary{}
	for rows.Next() {
		var s models.AcquisitionSummary
		var announcedOn sql.NullTime
		var price, otherID sql.NullInt64
		var status, otherName, otherPermalink sql.NullString
		if err := rows.Scan(&s.AcquisitionID, &announcedOn, &price, &status, &s.IsAcquirer, &otherName, &otherPermalink, &otherID); err != nil {
			return nil, err
		}
		s.AnnouncedOn = timePtr(announcedOn)
		s.PriceUsd = i64Ptr(price)
		s.AcquisitionStatus = strPtr(status)
		s.OtherOrgName = strPtr(otherName)
		s.OtherOrgPermalink = strPtr(otherPermalink)
		s.OtherOrgID = i64Ptr(otherID)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r OrganizationRepository) stockListings(ctx context.Context, entityID int64) ([]models.StockListing, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT sl.stock_listing_id, sl.ticker, sl.went_public_on, sl.is_active,
			ex.exchange_symbol, ex.exchange_name
		FROM stock_listing sl
		INNER JOIN exchange ex ON sl.exchange_id = ex.exchange_id
		WHERE sl.organization_id = ?`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.StockListing{}
	for rows.Next() {
		var l models.StockListing
		var ticker, exSymbol, exName sql.NullString
		var wentPublic sql.NullTime
		var isActive sql.NullBool
		if err := rows.Scan(&l.StockListingID, &ticker, &wentPublic, &isActive, &exSymbol, &exName); err != nil {
			return nil, err
		}
		l.Ticker = strPtr(ticker)
		l.WentPublicOn = timePtr(wentPublic)
		l.IsActive = nbool(isActive)
		l.ExchangeSymbol = strPtr(exSymbol)
		l.ExchangeName = strPtr(exName)
		out = append(out, l)
	}
	return out, rows.Err()
}
