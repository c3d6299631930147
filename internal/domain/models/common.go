package models

import "time"

// Sub-entities shared by several detail views. Field names mirror the
// JSON contract (camelCase, dates RFC3339 or null, money in USD cents-free
// integer units).

type Category struct {
	CategoryUUID string  `json:"categoryUuid"`
	Name         string  `json:"name"`
	Permalink    *string `json:"permalink"`
	IsPrimary    bool    `json:"isPrimary"`
}

type CategoryGroup struct {
	CategoryGroupUUID string  `json:"categoryGroupUuid"`
	Name              string  `json:"name"`
	Permalink         *string `json:"permalink"`
	IsPrimary         bool    `json:"isPrimary"`
}

type Location struct {
	LocationUUID string  `json:"locationUuid"`
	Name         *string `json:"name"`
	Permalink    *string `json:"permalink"`
	LocationType *string `json:"locationType"`
	IsPrimary    bool    `json:"isPrimary"`
}

type PressReference struct {
	PressReferenceID int64      `json:"pressReferenceId"`
	Title            *string    `json:"title"`
	Publisher        *string    `json:"publisher"`
	Author           *string    `json:"author"`
	PublishedOn      *time.Time `json:"publishedOn"`
	URL              *string    `json:"url"`
}

// GlobalSearchRequest drives the cross-entity free-text endpoint.
// EntityTypes is an optional comma-separated allowlist of entity_type
// values; TopN is clamped to [1,100] by the service.
type GlobalSearchRequest struct {
	SearchText  string `json:"searchText" form:"searchText"`
	EntityTypes string `json:"entityTypes" form:"entityTypes"`
	TopN        int    `json:"topN" form:"topN"`
}

// GlobalSearchResult ranks matches: 1 = display-name prefix,
// 2 = display-name substring, 3 = permalink/identifier match.
type GlobalSearchResult struct {
	EntityID         int64    `json:"entityId"`
	UUID             string   `json:"uuid"`
	EntityType       string   `json:"entityType"`
	DisplayName      string   `json:"displayName"`
	Permalink        string   `json:"permalink"`
	ShortDescription *string  `json:"shortDescription"`
	ImageURL         *string  `json:"imageUrl"`
	CountryCode      *string  `json:"countryCode"`
	City             *string  `json:"city"`
	Rank             *float64 `json:"rank"`
	MatchRank        int      `json:"matchRank"`
}
