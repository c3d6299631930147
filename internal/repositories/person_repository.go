package repositories

import (
	"context"
	"database/sql"
	"strings"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"
)

type PersonRepository struct {
	DB *sql.DB
}

func (r PersonRepository) db() *sql.DB { return fallbackDB(r.DB) }

var personSortExprs = map[string]string{
	"RankPerson":              "COALESCE(m.rank_person, 999999)",
	"Name":                    "e.display_name",
	"NumInvestments":          "COALESCE(m.num_investments, 0)",
	"NumFoundedOrganizations": "COALESCE(m.num_founded_organizations, 0)",
}

func (r PersonRepository) Search(ctx context.Context, req models.PersonSearchRequest) (domain.PagedResult[models.PersonListItem], error) {
	where := []string{"e.entity_type = 'person'", "e.is_deleted = 0"}
	args := []any{}

	if req.Gender != nil && strings.TrimSpace(*req.Gender) != "" {
		where = append(where, "p.gender = ?")
		args = append(args, strings.TrimSpace(*req.Gender))
	}
	if req.PrimaryOrganizationID != nil {
		where = append(where, "p.primary_organization_id = ?")
		args = append(args, *req.PrimaryOrganizationID)
	}
	if req.MinFoundedOrgs != nil {
		where = append(where, "COALESCE(m.num_founded_organizations, 0) >= ?")
		args = append(args, *req.MinFoundedOrgs)
	}
	if req.MaxFoundedOrgs != nil {
		where = append(where, "COALESCE(m.num_founded_organizations, 0) <= ?")
		args = append(args, *req.MaxFoundedOrgs)
	}
	if req.MinInvestments != nil {
		where = append(where, "COALESCE(m.num_investments, 0) >= ?")
		args = append(args, *req.MinInvestments)
	}
	if req.MaxInvestments != nil {
		where = append(where, "COALESCE(m.num_investments, 0) <= ?")
		args = append(args, *req.MaxInvestments)
	}
	if req.IsInvestor != nil {
		if *req.IsInvestor {
			where = append(where, "COALESCE(m.num_investments, 0) > 0")
		} else {
			where = append(where, "COALESCE(m.num_investments, 0) = 0")
		}
	}
	if req.HasEventAppearances != nil {
		if *req.HasEventAppearances {
			where = append(where, "COALESCE(m.num_event_appearances, 0) > 0")
		} else {
			where = append(where, "COALESCE(m.num_event_appearances, 0) = 0")
		}
	}
	if req.SearchText != nil && strings.TrimSpace(*req.SearchText) != "" {
		where = append(where, "e.display_name LIKE ?")
		args = append(args, strings.TrimSpace(*req.SearchText)+"%")
	}

	sortExpr := personSortExprs[req.SortColumn]
	if sortExpr == "" {
		sortExpr = personSortExprs["RankPerson"]
	}

	from := `
		FROM entity e
		INNER JOIN person p ON e.entity_id = p.person_id
		LEFT JOIN person_metrics m ON p.person_id = m.person_id
		LEFT JOIN entity org ON p.primary_organization_id = org.entity_id`
	whereSQL := strings.Join(where, " AND ")

	query := `
		WITH filtered AS (
			SELECT
				e.entity_id, e.uuid, e.display_name, e.permalink, e.image_url,
				p.gender, p.primary_organization_id, org.display_name AS primary_org_name,
				p.primary_job_title,
				CASE
					WHEN e.city IS NOT NULL AND e.country_code IS NOT NULL THEN CONCAT(e.city, ', ', e.country_code)
					WHEN e.city IS NOT NULL THEN e.city
					ELSE e.country_code
				END AS location,
				CASE WHEN COALESCE(m.num_investments, 0) > 0 THEN 1 ELSE 0 END AS is_investor,
				COALESCE(m.rank_person, 999999) AS rank_person,
				COALESCE(m.num_jobs, 0) AS num_jobs,
				COALESCE(m.num_current_jobs, 0) AS num_current_jobs,
				COALESCE(m.num_founded_organizations, 0) AS num_founded_organizations,
				COALESCE(m.num_investments, 0) AS num_investments,
				COALESCE(m.num_partner_investments, 0) AS num_partner_investments,
				COALESCE(m.num_event_appearances, 0) AS num_event_appearances,
				COALESCE(e.num_articles, 0) AS num_articles,
				ROW_NUMBER() OVER (ORDER BY ` + sortExpr + ` ` + req.SortDirection.SQL() + `, e.entity_id ASC) AS row_num,
				COUNT(*) OVER () AS total_count` +
		from + `
			WHERE ` + whereSQL + `
		)
		SELECT
			entity_id, uuid, display_name, permalink, image_url,
			gender, primary_organization_id, primary_org_name, primary_job_title,
			location, is_investor, rank_person,
			num_jobs, num_current_jobs, num_founded_organizations,
			num_investments, num_partner_investments, num_event_appearances, num_articles,
			total_count
		FROM filtered
		WHERE row_num BETWEEN ? AND ?
		ORDER BY row_num`

	winArgs := append(append([]any{}, args...), req.Offset()+1, req.Offset()+req.PageSize)

	rows, err := r.db().QueryContext(ctx, query, winArgs...)
	if err != nil {
		return domain.PagedResult[models.PersonListItem]{}, err
	}
	defer rows.Close()

	items := []models.PersonListItem{}
	total := 0
	for rows.Next() {
		var it models.PersonListItem
		var imageURL, gender, orgName, jobTitle, location sql.NullString
		var orgID sql.NullInt64
		if err := rows.Scan(
			&it.EntityID, &it.UUID, &it.DisplayName, &it.Permalink, &imageURL,
			&gender, &orgID, &orgName, &jobTitle,
			&location, &it.IsInvestor, &it.RankPerson,
			&it.NumJobs, &it.NumCurrentJobs, &it.NumFoundedOrganizations,
			&it.NumInvestments, &it.NumPartnerInvestments, &it.NumEventAppearances, &it.NumArticles,
			&total,
		); err != nil {
			return domain.PagedResult[models.PersonListItem]{}, err
		}
		it.PersonID = it.EntityID
		it.ImageURL = strPtr(imageURL)
		it.Gender = strPtr(gender)
		it.PrimaryOrganizationID = i64Ptr(orgID)
		it.PrimaryOrganizationName = strPtr(orgName)
		it.PrimaryJobTitle = strPtr(jobTitle)
		it.Location = strPtr(location)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.PagedResult[models.PersonListItem]{}, err
	}

	if len(items) == 0 {
		if err := r.db().QueryRowContext(ctx, "SELECT COUNT(*)"+from+" WHERE "+whereSQL, args...).Scan(&total); err != nil {
			return domain.PagedResult[models.PersonListItem]{}, err
		}
	}

	return domain.NewPagedResult(items, total, req.PagedRequest), nil
}

func (r PersonRepository) GetByID(ctx context.Context, entityID int64) (*models.PersonDetail, error) {
	query := `
		SELECT
			e.entity_id, e.uuid, e.permalink,
			p.first_name, p.middle_name, p.last_name, p.full_name, e.display_name,
			e.image_url, e.short_description, e.description, p.gender,
			e.city, e.country, e.country_code,
			p.primary_job_title, org.display_name, p.primary_organization_id, org.permalink,
			COALESCE(m.num_jobs, 0), COALESCE(m.num_current_jobs, 0), COALESCE(m.num_past_jobs, 0),
			COALESCE(m.num_current_advisor_jobs, 0), COALESCE(m.num_past_advisor_jobs, 0),
			COALESCE(m.num_founded_organizations, 0),
			COALESCE(m.num_investments, 0), COALESCE(m.num_portfolio_organizations, 0),
			COALESCE(m.num_partner_investments, 0), COALESCE(m.num_lead_investments, 0),
			COALESCE(m.num_own_investments, 0),
			COALESCE(m.num_event_appearances, 0), COALESCE(e.num_articles, 0),
			COALESCE(m.num_exits, 0), COALESCE(m.num_exits_ipo, 0),
			COALESCE(m.rank_person, 0), COALESCE(m.rank_delta_d7, 0),
			COALESCE(m.rank_delta_d30, 0), COALESCE(m.rank_delta_d90, 0),
			e.website_url, e.linkedin_url, e.twitter_url, e.facebook_url,
			p.born_on, p.died_on,
			e.created_at, e.updated_at,
			e.aliases_json, e.permalink_aliases_json
		FROM entity e
		INNER JOIN person p ON e.entity_id = p.person_id
		LEFT JOIN person_metrics m ON p.person_id = m.person_id
		LEFT JOIN entity org ON p.primary_organization_id = org.entity_id
		WHERE e.entity_id = ? AND e.entity_type = 'person' AND e.is_deleted = 0`

	var d models.PersonDetail
	var firstName, middleName, lastName, fullName sql.NullString
	var imageURL, shortDesc, desc, gender sql.NullString
	var city, country, countryCode sql.NullString
	var jobTitle, orgName, orgPermalink sql.NullString
	var orgID sql.NullInt64
	var websiteURL, linkedinURL, twitterURL, facebookURL sql.NullString
	var bornOn, diedOn, createdAt, updatedAt sql.NullTime
	var aliasesJSON, permalinkAliasesJSON sql.NullString

	err := r.db().QueryRowContext(ctx, query, entityID).Scan(
		&d.EntityID, &d.UUID, &d.Permalink,
		&firstName, &middleName, &lastName, &fullName, &d.DisplayName,
		&imageURL, &shortDesc, &desc, &gender,
		&city, &country, &countryCode,
		&jobTitle, &orgName, &orgID, &orgPermalink,
		&d.NumJobs, &d.NumCurrentJobs, &d.NumPastJobs,
		&d.NumCurrentAdvisorJobs, &d.NumPastAdvisorJobs,
		&d.NumFoundedOrganizations,
		&d.NumInvestments, &d.NumPortfolioOrganizations,
		&d.NumPartnerInvestments, &d.NumLeadInvestments,
		&d.NumOwnInvestments,
		&d.NumEventAppearances, &d.NumArticles,
		&d.NumExits, &d.NumExitsIpo,
		&d.RankPerson, &d.RankDeltaD7,
		&d.RankDeltaD30, &d.RankDeltaD90,
		&websiteURL, &linkedinURL, &twitterURL, &facebookURL,
		&bornOn, &diedOn,
		&createdAt, &updatedAt,
		&aliasesJSON, &permalinkAliasesJSON,
	)
	if err != nil {
		return nil, err
	}

	d.FirstName = strPtr(firstName)
	d.MiddleName = strPtr(middleName)
	d.LastName = strPtr(lastName)
	d.FullName = strPtr(fullName)
	d.ImageURL = strPtr(imageURL)
	d.ShortDescription = strPtr(shortDesc)
	d.Description = strPtr(desc)
	d.Gender = strPtr(gender)
	d.LocationCity = strPtr(city)
	d.LocationCountry = strPtr(country)
	d.LocationCountryCode = strPtr(countryCode)
	d.PrimaryJobTitle = strPtr(jobTitle)
	d.PrimaryOrganizationName = strPtr(orgName)
	d.PrimaryOrganizationID = i64Ptr(orgID)
	d.PrimaryOrganizationPermalink = strPtr(orgPermalink)
	d.WebsiteURL = strPtr(websiteURL)
	d.LinkedinURL = strPtr(linkedinURL)
	d.TwitterURL = strPtr(twitterURL)
	d.FacebookURL = strPtr(facebookURL)
	d.BornOn = timePtr(bornOn)
	d.DiedOn = timePtr(diedOn)
	d.CreatedAt = timePtr(createdAt)
	d.UpdatedAt = timePtr(updatedAt)
	d.Aliases = decodeStringList(aliasesJSON)
	d.PermalinkAliases = decodeStringList(permalinkAliasesJSON)

	if d.Jobs, err = r.jobs(ctx, entityID); err != nil {
		return nil, err
	}
	if d.Degrees, err = r.degrees(ctx, entityID); err != nil {
		return nil, err
	}
	if d.FoundedOrganizations, err = r.foundedOrganizations(ctx, entityID); err != nil {
		return nil, err
	}
	if d.Investments, err = r.investments(ctx, entityID); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r PersonRepository) GetByPermalink(ctx context.Context, permalink string) (*models.PersonDetail, error) {
	id, err := resolveEntityID(ctx, r.db(), "person", permalink)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r PersonRepository) jobs(ctx context.Context, personID int64) ([]models.Job, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT j.job_id, j.organization_id, e.display_name, e.permalink,
			j.title, j.job_type, j.started_on, j.ended_on, j.is_current, j.location_text
		FROM job j
		LEFT JOIN entity e ON j.organization_id = e.entity_id
		WHERE j.person_id = ?
		ORDER BY j.is_current DESC, j.started_on DESC`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Job{}
	for rows.Next() {
		var j models.Job
		var orgID sql.NullInt64
		var orgName, orgPermalink, title, jobType, locationText sql.NullString
		var startedOn, endedOn sql.NullTime
		var isCurrent sql.NullBool
		if err := rows.Scan(&j.JobID, &orgID, &orgName, &orgPermalink, &title, &jobType, &startedOn, &endedOn, &isCurrent, &locationText); err != nil {
			return nil, err
		}
		j.OrganizationID = i64Ptr(orgID)
		j.OrganizationName = strPtr(orgName)
		j.OrganizationPermalink = strPtr(orgPermalink)
		j.Title = strPtr(title)
		j.JobType = strPtr(jobType)
		j.StartedOn = timePtr(startedOn)
		j.EndedOn = timePtr(endedOn)
		j.IsCurrent = nbool(isCurrent)
		j.LocationText = strPtr(locationText)
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r PersonRepository) degrees(ctx context.Context, personID int64) ([]models.Degree, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT d.degree_id, d.school_name, d.subject, d.degree_type, d.started_on, d.completed_on
		FROM degree d
		WHERE d.person_id = ?
		ORDER BY d.completed_on DESC`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Degree{}
	for rows.Next() {
		var g models.Degree
		var school, subject, degreeType sql.NullString
		var startedOn, completedOn sql.NullTime
		if err := rows.Scan(&g.DegreeID, &school, &subject, &degreeType, &startedOn, &completedOn); err != nil {
			return nil, err
		}
		g.SchoolName = strPtr(school)
		g.Subject = strPtr(subject)
		g.DegreeType = strPtr(degreeType)
		g.StartedOn = timePtr(startedOn)
		g.CompletedOn = timePtr(completedOn)
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r PersonRepository) foundedOrganizations(ctx context.Context, personID int64) ([]models.FoundedOrganization, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT o.organization_id, e.display_name, e.permalink, e.image_url, ofr.title, ofr.is_primary
		FROM organization_founder ofr
		INNER JOIN organization o ON ofr.organization_id = o.organization_id
		INNER JOIN entity e ON o.organization_id = e.entity_id
		WHERE ofr.person_id = ? AND e.is_deleted = 0
		ORDER BY ofr.is_primary DESC, e.display_name`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FoundedOrganization{}
	for rows.Next() {
		var f models.FoundedOrganization
		var imageURL, title sql.NullString
		var isPrimary sql.NullBool
		if err := rows.Scan(&f.OrganizationID, &f.DisplayName, &f.Permalink, &imageURL, &title, &isPrimary); err != nil {
			return nil, err
		}
		f.ImageURL = strPtr(imageURL)
		f.Title = strPtr(title)
		f.IsPrimary = nbool(isPrimary)
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r PersonRepository) investments(ctx context.Context, personID int64) ([]models.PersonInvestment, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT i.investment_id, i.announced_on, e.display_name, e.permalink, i.organization_id,
			fr.investment_type, COALESCE(m.is_lead_investor, 0), m.amount_usd
		FROM investment i
		LEFT JOIN investment_metrics m ON i.investment_id = m.investment_id
		LEFT JOIN funding_round fr ON i.funding_round_id = fr.funding_round_id
		INNER JOIN entity e ON i.organization_id = e.entity_id
		WHERE i.investor_entity_id = ? AND e.is_deleted = 0
		ORDER BY i.announced_on DESC`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PersonInvestment{}
	for rows.Next() {
		var s models.PersonInvestment
		var announcedOn sql.NullTime
		var orgName, orgPermalink, investmentType sql.NullString
		var orgID, amount sql.NullInt64
		if err := rows.Scan(&s.InvestmentID, &announcedOn, &orgName, &orgPermalink, &orgID, &investmentType, &s.IsLeadInvestor, &amount); err != nil {
			return nil, err
		}
		s.AnnouncedOn = timePtr(announcedOn)
		s.FundedOrgName = strPtr(orgName)
		s.FundedOrgPermalink = strPtr(orgPermalink)
		s.FundedOrgID = i64Ptr(orgID)
		s.InvestmentType = strPtr(investmentType)
		s.AmountUsd = i64Ptr(amount)
		out = append(out, s)
	}
	return out, rows.Err()
}
