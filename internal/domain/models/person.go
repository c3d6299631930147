package models

import (
	"time"

	"cbexplorer/internal/domain"
)

type PersonSearchRequest struct {
	domain.PagedRequest
	Gender                *string `json:"gender" form:"gender"`
	PrimaryOrganizationID *int64  `json:"primaryOrganizationId" form:"primaryOrganizationId"`
	MinFoundedOrgs        *int    `json:"minFoundedOrgs" form:"minFoundedOrgs"`
	MaxFoundedOrgs        *int    `json:"maxFoundedOrgs" form:"maxFoundedOrgs"`
	MinInvestments        *int    `json:"minInvestments" form:"minInvestments"`
	MaxInvestments        *int    `json:"maxInvestments" form:"maxInvestments"`
	IsInvestor            *bool   `json:"isInvestor" form:"isInvestor"`
	HasEventAppearances   *bool   `json:"hasEventAppearances" form:"hasEventAppearances"`
	SearchText            *string `json:"searchText" form:"searchText"`
}

type PersonListItem struct {
	PersonID                int64   `json:"personId"`
	EntityID                int64   `json:"entityId"`
	UUID                    string  `json:"uuid"`
	DisplayName             string  `json:"displayName"`
	Permalink               string  `json:"permalink"`
	ImageURL                *string `json:"imageUrl"`
	Gender                  *string `json:"gender"`
	PrimaryOrganizationID   *int64  `json:"primaryOrganizationId"`
	PrimaryOrganizationName *string `json:"primaryOrganizationName"`
	PrimaryJobTitle         *string `json:"primaryJobTitle"`
	Location                *string `json:"location"`
	IsInvestor              bool    `json:"isInvestor"`
	RankPerson              float64 `json:"rankPerson"`
	NumJobs                 int     `json:"numJobs"`
	NumCurrentJobs          int     `json:"numCurrentJobs"`
	NumFoundedOrganizations int     `json:"numFoundedOrganizations"`
	NumInvestments          int     `json:"numInvestments"`
	NumPartnerInvestments   int     `json:"numPartnerInvestments"`
	NumEventAppearances     int     `json:"numEventAppearances"`
	NumArticles             int     `json:"numArticles"`
}

type PersonDetail struct {
	EntityID  int64  `json:"entityId"`
	UUID      string `json:"uuid"`
	Permalink string `json:"permalink"`

	FirstName   *string `json:"firstName"`
	MiddleName  *string `json:"middleName"`
	LastName    *string `json:"lastName"`
	FullName    *string `json:"fullName"`
	DisplayName string  `json:"displayName"`

	ImageURL         *string `json:"imageUrl"`
	ShortDescription *string `json:"shortDescription"`
	Description      *string `json:"description"`
	Gender           *string `json:"gender"`

	LocationCity        *string `json:"locationCity"`
	LocationCountry     *string `json:"locationCountry"`
	LocationCountryCode *string `json:"locationCountryCode"`

	PrimaryJobTitle              *string `json:"primaryJobTitle"`
	PrimaryOrganizationName      *string `json:"primaryOrganizationName"`
	PrimaryOrganizationID        *int64  `json:"primaryOrganizationId"`
	PrimaryOrganizationPermalink *string `json:"primaryOrganizationPermalink"`

	NumJobs                 int `json:"numJobs"`
	NumCurrentJobs          int `json:"numCurrentJobs"`
	NumPastJobs             int `json:"numPastJobs"`
	NumCurrentAdvisorJobs   int `json:"numCurrentAdvisorJobs"`
	NumPastAdvisorJobs      int `json:"numPastAdvisorJobs"`
	NumFoundedOrganizations int `json:"numFoundedOrganizations"`

	NumInvestments            int `json:"numInvestments"`
	NumPortfolioOrganizations int `json:"numPortfolioOrganizations"`
	NumPartnerInvestments     int `json:"numPartnerInvestments"`
	NumLeadInvestments        int `json:"numLeadInvestments"`
	NumOwnInvestments         int `json:"numOwnInvestments"`

	NumEventAppearances int `json:"numEventAppearances"`
	NumArticles         int `json:"numArticles"`
	NumExits            int `json:"numExits"`
	NumExitsIpo         int `json:"numExitsIpo"`

	RankPerson   float64 `json:"rankPerson"`
	RankDeltaD7  float64 `json:"rankDeltaD7"`
	RankDeltaD30 float64 `json:"rankDeltaD30"`
	RankDeltaD90 float64 `json:"rankDeltaD90"`

	WebsiteURL  *string `json:"websiteUrl"`
	LinkedinURL *string `json:"linkedinUrl"`
	TwitterURL  *string `json:"twitterUrl"`
	FacebookURL *string `json:"facebookUrl"`

	BornOn  *time.Time `json:"bornOn"`
	DiedOn  *time.Time `json:"diedOn"`

	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`

	Aliases          []string `json:"aliases"`
	PermalinkAliases []string `json:"permalinkAliases"`

	Jobs                 []Job                 `json:"jobs"`
	Degrees              []Degree              `json:"degrees"`
	FoundedOrganizations []FoundedOrganization `json:"foundedOrganizations"`
	Investments          []PersonInvestment    `json:"investments"`
}

type Job struct {
	JobID                 int64      `json:"jobId"`
	OrganizationID        *int64     `json:"organizationId"`
	OrganizationName      *string    `json:"organizationName"`
	OrganizationPermalink *string    `json:"organizationPermalink"`
	Title                 *string    `json:"title"`
	JobType               *string    `json:"jobType"`
	StartedOn             *time.Time `json:"startedOn"`
	EndedOn               *time.Time `json:"endedOn"`
	IsCurrent             bool       `json:"isCurrent"`
	LocationText          *string    `json:"locationText"`
}

type Degree struct {
	DegreeID    int64      `json:"degreeId"`
	SchoolName  *string    `json:"schoolName"`
	Subject     *string    `json:"subject"`
	DegreeType  *string    `json:"degreeType"`
	StartedOn   *time.Time `json:"startedOn"`
	CompletedOn *time.Time `json:"completedOn"`
}

type FoundedOrganization struct {
	OrganizationID int64   `json:"organizationId"`
	DisplayName    string  `json:"displayName"`
	Permalink      string  `json:"permalink"`
	ImageURL       *string `json:"imageUrl"`
	Title          *string `json:"title"`
	IsPrimary      bool    `json:"isPrimary"`
}

type PersonInvestment struct {
	InvestmentID       int64      `json:"investmentId"`
	AnnouncedOn        *time.Time `json:"announcedOn"`
	FundedOrgName      *string    `json:"fundedOrgName"`
	FundedOrgPermalink *string    `json:"fundedOrgPermalink"`
	FundedOrgID        *int64     `json:"fundedOrgId"`
	InvestmentType     *string    `json:"investmentType"`
	IsLeadInvestor     bool       `json:"isLeadInvestor"`
	AmountUsd          *int64     `json:"amountUsd"`
}
