package repositories

import (
	"context"
	"database/sql"
	"strings"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"
)

type EventRepository struct {
	DB *sql.DB
}

func (r EventRepository) db() *sql.DB { return fallbackDB(r.DB) }

var eventSortExprs = map[string]string{
	"StartsOn":  "COALESCE(ev.starts_on, '1000-01-01')",
	"RankEvent": "COALESCE(m.rank_event, 999999)",
}

func (r EventRepository) Search(ctx context.Context, req models.EventSearchRequest) (domain.PagedResult[models.EventListItem], error) {
	where := []string{"e.entity_type = 'event'", "e.is_deleted = 0"}
	args := []any{}

	if req.FromDate != nil && strings.TrimSpace(*req.FromDate) != "" {
		where = append(where, "ev.starts_on >= ?")
		args = append(args, strings.TrimSpace(*req.FromDate))
	}
	if req.ToDate != nil && strings.TrimSpace(*req.ToDate) != "" {
		where = append(where, "ev.starts_on <= ?")
		args = append(args, strings.TrimSpace(*req.ToDate))
	}
	if req.CountryCode != nil && strings.TrimSpace(*req.CountryCode) != "" {
		where = append(where, "e.country_code = ?")
		args = append(args, strings.TrimSpace(*req.CountryCode))
	}
	if req.City != nil && strings.TrimSpace(*req.City) != "" {
		where = append(where, "e.city LIKE ?")
		args = append(args, strings.TrimSpace(*req.City)+"%")
	}
	if req.MinSpeakers != nil {
		where = append(where, "COALESCE(m.num_speakers, 0) >= ?")
		args = append(args, *req.MinSpeakers)
	}
	if req.MinOrganizers != nil {
		where = append(where, "COALESCE(m.num_organizers, 0) >= ?")
		args = append(args, *req.MinOrganizers)
	}
	if req.MinSponsors != nil {
		where = append(where, "COALESCE(m.num_sponsors, 0) >= ?")
		args = append(args, *req.MinSponsors)
	}

	sortExpr := eventSortExprs[req.SortColumn]
	if sortExpr == "" {
		sortExpr = eventSortExprs["StartsOn"]
	}

	from := `
		FROM entity e
		INNER JOIN event ev ON e.entity_id = ev.event_id
		LEFT JOIN event_metrics m ON ev.event_id = m.event_id`
	whereSQL := strings.Join(where, " AND ")

	query := `
		WITH filtered AS (
			SELECT
				e.entity_id, e.display_name, e.permalink,
				ev.event_type_json, ev.event_format,
				ev.starts_on, ev.ends_on, ev.event_status, ev.event_url, ev.venue_name,
				e.country_code, e.city,
				CASE
					WHEN e.city IS NOT NULL AND e.country_code IS NOT NULL THEN CONCAT(e.city, ', ', e.country_code)
					WHEN e.city IS NOT NULL THEN e.city
					ELSE e.country_code
				END AS location,
				COALESCE(m.rank_event, 999999) AS rank_event,
				COALESCE(m.num_speakers, 0) AS num_speakers,
				COALESCE(m.num_organizers, 0) AS num_organizers,
				COALESCE(m.num_sponsors, 0) AS num_sponsors,
				COALESCE(m.num_exhibitors, 0) AS num_exhibitors,
				ROW_NUMBER() OVER (ORDER BY ` + sortExpr + ` ` + req.SortDirection.SQL() + `, e.entity_id ASC) AS row_num,
				COUNT(*) OVER () AS total_count` +
		from + `
			WHERE ` + whereSQL + `
		)
		SELECT
			entity_id, display_name, permalink, event_type_json, event_format,
			starts_on, ends_on, event_status, event_url, venue_name,
			country_code, city, location, rank_event,
			num_speakers, num_organizers, num_sponsors, num_exhibitors,
			total_count
		FROM filtered
		WHERE row_num BETWEEN ? AND ?
		ORDER BY row_num`

	winArgs := append(append([]any{}, args...), req.Offset()+1, req.Offset()+req.PageSize)

	rows, err := r.db().QueryContext(ctx, query, winArgs...)
	if err != nil {
		return domain.PagedResult[models.EventListItem]{}, err
	}
	defer rows.Close()

	items := []models.EventListItem{}
	total := 0
	for rows.Next() {
		var it models.EventListItem
		var permalink, eventTypeJSON, eventFormat, eventStatus, eventURL, venueName sql.NullString
		var countryCode, city, location sql.NullString
		var startsOn, endsOn sql.NullTime
		if err := rows.Scan(
			&it.EventID, &it.EventName, &permalink, &eventTypeJSON, &eventFormat,
			&startsOn, &endsOn, &eventStatus, &eventURL, &venueName,
			&countryCode, &city, &location, &it.RankEvent,
			&it.NumSpeakers, &it.NumOrganizers, &it.NumSponsors, &it.NumExhibitors,
			&total,
		); err != nil {
			return domain.PagedResult[models.EventListItem]{}, err
		}
		it.Permalink = strPtr(permalink)
		it.EventType = deriveEventType(eventTypeJSON)
		it.EventFormat = strPtr(eventFormat)
		it.StartsOn = timePtr(startsOn)
		it.EndsOn = timePtr(endsOn)
		it.EventStatus = strPtr(eventStatus)
		it.EventURL = strPtr(eventURL)
		it.VenueName = strPtr(venueName)
		it.CountryCode = strPtr(countryCode)
		it.City = strPtr(city)
		it.Location = strPtr(location)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.PagedResult[models.EventListItem]{}, err
	}

	if len(items) == 0 {
		if err := r.db().QueryRowContext(ctx, "SELECT COUNT(*)"+from+" WHERE "+whereSQL, args...).Scan(&total); err != nil {
			return domain.PagedResult[models.EventListItem]{}, err
		}
	}

	return domain.NewPagedResult(items, total, req.PagedRequest), nil
}

func (r EventRepository) GetByID(ctx context.Context, entityID int64) (*models.EventDetail, error) {
	query := `
		SELECT
			e.entity_id, e.display_name, e.permalink,
			e.short_description, e.description, e.image_url,
			ev.event_type_json, ev.event_format, ev.event_status,
			ev.starts_on, ev.ends_on,
			ev.event_url, ev.registration_url,
			ev.venue_name, e.city, e.region, e.country, e.country_code,
			COALESCE(m.rank_event, 0), COALESCE(m.rank_delta_d7, 0),
			COALESCE(m.rank_delta_d30, 0), COALESCE(m.rank_delta_d90, 0),
			COALESCE(m.num_speakers, 0), COALESCE(m.num_organizers, 0),
			COALESCE(m.num_sponsors, 0), COALESCE(m.num_exhibitors, 0),
			COALESCE(m.num_contestants, 0),
			e.created_at, e.updated_at,
			e.permalink_aliases_json
		FROM entity e
		INNER JOIN event ev ON e.entity_id = ev.event_id
		LEFT JOIN event_metrics m ON ev.event_id = m.event_id
		WHERE e.entity_id = ? AND e.entity_type = 'event' AND e.is_deleted = 0`

	var d models.EventDetail
	var permalink, shortDesc, desc, imageURL sql.NullString
	var eventTypeJSON, eventFormat, eventStatus sql.NullString
	var startsOn, endsOn sql.NullTime
	var eventURL, registrationURL sql.NullString
	var venueName, city, region, country, countryCode sql.NullString
	var createdAt, updatedAt sql.NullTime
	var permalinkAliasesJSON sql.NullString

	err := r.db().QueryRowContext(ctx, query, entityID).Scan(
		&d.EventID, &d.EventName, &permalink,
		&shortDesc, &desc, &imageURL,
		&eventTypeJSON, &eventFormat, &eventStatus,
		&startsOn, &endsOn,
		&eventURL, &registrationURL,
		&venueName, &city, &region, &country, &countryCode,
		&d.RankEvent, &d.RankDeltaD7,
		&d.RankDeltaD30, &d.RankDeltaD90,
		&d.NumSpeakers, &d.NumOrganizers,
		&d.NumSponsors, &d.NumExhibitors,
		&d.NumContestants,
		&createdAt, &updatedAt,
		&permalinkAliasesJSON,
	)
	if err != nil {
		return nil, err
	}

	d.Permalink = strPtr(permalink)
	d.EventType = deriveEventType(eventTypeJSON)
	d.ShortDescription = strPtr(shortDesc)
	d.Description = strPtr(desc)
	d.ImageURL = strPtr(imageURL)
	d.EventFormat = strPtr(eventFormat)
	d.EventStatus = strPtr(eventStatus)
	d.StartsOn = timePtr(startsOn)
	d.EndsOn = timePtr(endsOn)
	d.EventURL = strPtr(eventURL)
	d.RegistrationURL = strPtr(registrationURL)
	d.VenueName = strPtr(venueName)
	d.City = strPtr(city)
	d.Region = strPtr(region)
	d.Country = strPtr(country)
	d.CountryCode = strPtr(countryCode)
	d.CreatedAt = timePtr(createdAt)
	d.UpdatedAt = timePtr(updatedAt)
	d.PermalinkAliases = decodeStringList(permalinkAliasesJSON)

	participants, err := r.participants(ctx, entityID)
	if err != nil {
		return nil, err
	}
	d.Speakers = []models.EventParticipant{}
	d.Sponsors = []models.EventParticipant{}
	d.Contestants = []models.EventParticipant{}
	d.Organizers = []models.EventParticipant{}
	d.Exhibitors = []models.EventParticipant{}
	for _, p := range participants {
		role := ""
		if p.AppearanceType != nil {
			role = strings.ToLower(*p.AppearanceType)
		}
		switch role {
		case "speaker":
			d.Speakers = append(d.Speakers, p)
		case "sponsor":
			d.Sponsors = append(d.Sponsors, p)
		case "contestant":
			d.Contestants = append(d.Contestants, p)
		case "organizer":
			d.Organizers = append(d.Organizers, p)
		case "exhibitor":
			d.Exhibitors = append(d.Exhibitors, p)
		}
	}

	if d.PressReferences, err = r.pressReferences(ctx, entityID); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r EventRepository) GetByPermalink(ctx context.Context, permalink string) (*models.EventDetail, error) {
	id, err := resolveEntityID(ctx, r.db(), "event", permalink)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// deriveEventType flattens the stored event-type JSON blob into one
// coarse label for the grid and detail views.
func deriveEventType(raw sql.NullString) string {
	if raw.Valid {
		lower := strings.ToLower(raw.String)
		for _, t := range []string{"Conference", "Meetup", "Workshop", "Webinar"} {
			if strings.Contains(lower, strings.ToLower(t)) {
				return t
			}
		}
	}
	return "Event"
}

func (r EventRepository) participants(ctx context.Context, eventID int64) ([]models.EventParticipant, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT
			ea.event_appearance_id, ea.participant_entity_id,
			pe.display_name, pe.permalink, pe.image_url, pe.entity_type,
			ea.appearance_type, ea.role, ea.title,
			p.primary_organization_id, org.display_name, org.permalink
		FROM event_appearance ea
		INNER JOIN entity pe ON ea.participant_entity_id = pe.entity_id
		LEFT JOIN person p ON ea.participant_entity_id = p.person_id
		LEFT JOIN entity org ON p.primary_organization_id = org.entity_id
		WHERE ea.event_id = ? AND pe.is_deleted = 0
		ORDER BY ea.appearance_type, pe.display_name`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.EventParticipant{}
	for rows.Next() {
		var p models.EventParticipant
		var name, permalink, imageURL, entityType sql.NullString
		var appearanceType, role, title sql.NullString
		var orgID sql.NullInt64
		var orgName, orgPermalink sql.NullString
		if err := rows.Scan(
			&p.EventAppearanceID, &p.ParticipantEntityID,
			&name, &permalink, &imageURL, &entityType,
			&appearanceType, &role, &title,
			&orgID, &orgName, &orgPermalink,
		); err != nil {
			return nil, err
		}
		p.ParticipantName = strPtr(name)
		p.ParticipantPermalink = strPtr(permalink)
		p.ParticipantImageURL = strPtr(imageURL)
		p.ParticipantType = strPtr(entityType)
		p.AppearanceType = strPtr(appearanceType)
		p.Role = strPtr(role)
		p.Title = strPtr(title)
		p.PrimaryOrganizationID = i64Ptr(orgID)
		p.PrimaryOrganizationName = strPtr(orgName)
		p.PrimaryOrganizationPermalink = strPtr(orgPermalink)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r EventRepository) pressReferences(ctx context.Context, eventID int64) ([]models.PressReference, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT pr.press_reference_id, pr.title, pr.publisher, pr.author, pr.published_on, pr.url
		FROM press_reference pr
		WHERE pr.event_id = ?
		ORDER BY pr.published_on DESC
		LIMIT 10`, eventID)
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
