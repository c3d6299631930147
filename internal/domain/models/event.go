package models

import (
	"time"

	"cbexplorer/internal/domain"
)

type EventSearchRequest struct {
	domain.PagedRequest
	FromDate      *string `json:"fromDate" form:"fromDate"`
	ToDate        *string `json:"toDate" form:"toDate"`
	CountryCode   *string `json:"countryCode" form:"countryCode"`
	City          *string `json:"city" form:"city"`
	MinSpeakers   *int    `json:"minSpeakers" form:"minSpeakers"`
	MinOrganizers *int    `json:"minOrganizers" form:"minOrganizers"`
	MinSponsors   *int    `json:"minSponsors" form:"minSponsors"`
}

type EventListItem struct {
	EventID       int64      `json:"eventId"`
	EventName     string     `json:"eventName"`
	Permalink     *string    `json:"permalink"`
	EventType     string     `json:"eventType"`
	EventFormat   *string    `json:"eventFormat"`
	StartsOn      *time.Time `json:"startsOn"`
	EndsOn        *time.Time `json:"endsOn"`
	EventStatus   *string    `json:"eventStatus"`
	EventURL      *string    `json:"eventUrl"`
	VenueName     *string    `json:"venueName"`
	CountryCode   *string    `json:"countryCode"`
	City          *string    `json:"city"`
	Location      *string    `json:"location"`
	RankEvent     float64    `json:"rankEvent"`
	NumSpeakers   int        `json:"numSpeakers"`
	NumOrganizers int        `json:"numOrganizers"`
	NumSponsors   int        `json:"numSponsors"`
	NumExhibitors int        `json:"numExhibitors"`
}

type EventDetail struct {
	EventID   int64   `json:"eventId"`
	EventName string  `json:"eventName"`
	Permalink *string `json:"permalink"`

	ShortDescription *string `json:"shortDescription"`
	Description      *string `json:"description"`
	ImageURL         *string `json:"imageUrl"`

	EventType   string  `json:"eventType"`
	EventFormat *string `json:"eventFormat"`
	EventStatus *string `json:"eventStatus"`

	StartsOn *time.Time `json:"startsOn"`
	EndsOn   *time.Time `json:"endsOn"`

	EventURL        *string `json:"eventUrl"`
	RegistrationURL *string `json:"registrationUrl"`

	VenueName   *string `json:"venueName"`
	City        *string `json:"city"`
	Region      *string `json:"region"`
	Country     *string `json:"country"`
	CountryCode *string `json:"countryCode"`

	RankEvent    float64 `json:"rankEvent"`
	RankDeltaD7  float64 `json:"rankDeltaD7"`
	RankDeltaD30 float64 `json:"rankDeltaD30"`
	RankDeltaD90 float64 `json:"rankDeltaD90"`

	NumSpeakers    int `json:"numSpeakers"`
	NumOrganizers  int `json:"numOrganizers"`
	NumSponsors    int `json:"numSponsors"`
	NumExhibitors  int `json:"numExhibitors"`
	NumContestants int `json:"numContestants"`

	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`

	PermalinkAliases []string `json:"permalinkAliases"`

	Speakers        []EventParticipant `json:"speakers"`
	Sponsors        []EventParticipant `json:"sponsors"`
	Contestants     []EventParticipant `json:"contestants"`
	Organizers      []EventParticipant `json:"organizers"`
	Exhibitors      []EventParticipant `json:"exhibitors"`
	PressReferences []PressReference   `json:"pressReferences"`
}

type EventParticipant struct {
	EventAppearanceID    int64   `json:"eventAppearanceId"`
	ParticipantEntityID  int64   `json:"participantEntityId"`
	ParticipantName      *string `json:"participantName"`
	ParticipantPermalink *string `json:"participantPermalink"`
	ParticipantImageURL  *string `json:"participantImageUrl"`
	ParticipantType      *string `json:"participantType"`
	AppearanceType       *string `json:"appearanceType"`
	Role                 *string `json:"role"`
	Title                *string `json:"title"`

	PrimaryOrganizationID        *int64  `json:"primaryOrganizationId"`
	PrimaryOrganizationName      *string `json:"primaryOrganizationName"`
	PrimaryOrganizationPermalink *string `json:"primaryOrganizationPermalink"`
}
