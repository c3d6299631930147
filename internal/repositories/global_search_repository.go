package repositories

import (
	"context"
	"database/sql"
	"strings"

	"cbexplorer/internal/domain/models"
)

type GlobalSearchRepository struct {
	DB *sql.DB
}

func (r GlobalSearchRepository) db() *sql.DB { return fallbackDB(r.DB) }

// Search matches entities by display name or identifier across every
// entity type. Match classes order the result: display-name prefix first,
// then display-name substring, then permalink/uuid substring hits; ties
// break by rank then name.
func (r GlobalSearchRepository) Search(ctx context.Context, req models.GlobalSearchRequest, entityTypes []string) ([]models.GlobalSearchResult, error) {
	text := strings.TrimSpace(req.SearchText)

	where := []string{"e.is_deleted = 0", "(e.display_name LIKE ? OR e.display_name LIKE ? OR e.permalink LIKE ? OR e.uuid LIKE ?)"}
	args := []any{text + "%", "%" + text + "%", "%" + text + "%", "%" + text + "%"}

	if len(entityTypes) > 0 {
		placeholders := strings.Repeat("?, ", len(entityTypes))
		where = append(where, "e.entity_type IN ("+placeholders[:len(placeholders)-2]+")")
		for _, t := range entityTypes {
			args = append(args, t)
		}
	}

	query := `
		SELECT
			e.entity_id, e.uuid, e.entity_type, e.display_name, e.permalink,
			e.short_description, e.image_url, e.country_code, e.city,
			e.rank_value,
			CASE
				WHEN e.display_name LIKE ? THEN 1
				WHEN e.display_name LIKE ? THEN 2
				ELSE 3
			END AS match_rank
		FROM entity e
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY match_rank ASC, COALESCE(e.rank_value, 999999) ASC, e.display_name ASC
		LIMIT ?`

	// match_rank CASE args go first: they precede the WHERE in the statement.
	full := append([]any{text + "%", "%" + text + "%"}, args...)
	full = append(full, req.TopN)

	rows, err := r.db().QueryContext(ctx, query, full...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.GlobalSearchResult{}
	for rows.Next() {
		var g models.GlobalSearchResult
		var shortDesc, imageURL, countryCode, city sql.NullString
		var rank sql.NullFloat64
		if err := rows.Scan(
			&g.EntityID, &g.UUID, &g.EntityType, &g.DisplayName, &g.Permalink,
			&shortDesc, &imageURL, &countryCode, &city,
			&rank, &g.MatchRank,
		); err != nil {
			return nil, err
		}
		g.ShortDescription = strPtr(shortDesc)
		g.ImageURL = strPtr(imageURL)
		g.CountryCode = strPtr(countryCode)
		g.City = strPtr(city)
		g.Rank = f64Ptr(rank)
		out = append(out, g)
	}
	return out, rows.Err()
}
