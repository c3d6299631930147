package models

import (
	"time"

	"cbexplorer/internal/domain"
)

type OrganizationSearchRequest struct {
	domain.PagedRequest
	CompanyType        *string `json:"companyType" form:"companyType"`
	OperatingStatus    *string `json:"operatingStatus" form:"operatingStatus"`
	IpoStatus          *string `json:"ipoStatus" form:"ipoStatus"`
	CountryCode        *string `json:"countryCode" form:"countryCode"`
	City               *string `json:"city" form:"city"`
	RevenueRangeCode   *string `json:"revenueRangeCode" form:"revenueRangeCode"`
	NumEmployeesEnum   *string `json:"numEmployeesEnum" form:"numEmployeesEnum"`
	FundingStage       *string `json:"fundingStage" form:"fundingStage"`
	MinFundingTotalUsd *int64  `json:"minFundingTotalUsd" form:"minFundingTotalUsd"`
	MaxFundingTotalUsd *int64  `json:"maxFundingTotalUsd" form:"maxFundingTotalUsd"`
	SearchText         *string `json:"searchText" form:"searchText"`
}

// OrganizationListItem is the flat grid row: the entity joined with its
// metrics, no nested collections.
type OrganizationListItem struct {
	OrganizationID     int64      `json:"organizationId"`
	EntityID           int64      `json:"entityId"`
	UUID               string     `json:"uuid"`
	DisplayName        string     `json:"displayName"`
	Permalink          string     `json:"permalink"`
	CountryCode        *string    `json:"countryCode"`
	City               *string    `json:"city"`
	Location           *string    `json:"location"`
	ImageURL           *string    `json:"imageUrl"`
	CompanyType        *string    `json:"companyType"`
	OperatingStatus    *string    `json:"operatingStatus"`
	IpoStatus          *string    `json:"ipoStatus"`
	RevenueRangeCode   *string    `json:"revenueRangeCode"`
	NumEmployeesEnum   *string    `json:"numEmployeesEnum"`
	FundingStage       *string    `json:"fundingStage"`
	FundingTotalUsd    *int64     `json:"fundingTotalUsd"`
	LastFundingAt      *time.Time `json:"lastFundingAt"`
	LastFundingType    *string    `json:"lastFundingType"`
	Rank               float64    `json:"rank"`
	NumFundingRounds   int        `json:"numFundingRounds"`
	NumInvestments     int        `json:"numInvestments"`
	NumLeadInvestments int        `json:"numLeadInvestments"`
	NumAcquisitions    int        `json:"numAcquisitions"`
	NumExits           int        `json:"numExits"`
	NumArticles        int        `json:"numArticles"`
}

type OrganizationDetail struct {
	EntityID    int64   `json:"entityId"`
	UUID        string  `json:"uuid"`
	DisplayName string  `json:"displayName"`
	LegalName   *string `json:"legalName"`
	Permalink   string  `json:"permalink"`

	ShortDescription *string `json:"shortDescription"`
	Description      *string `json:"description"`
	ImageURL         *string `json:"imageUrl"`

	HeadquartersCity        *string `json:"headquartersCity"`
	HeadquartersRegion      *string `json:"headquartersRegion"`
	HeadquartersCountry     *string `json:"headquartersCountry"`
	HeadquartersCountryCode *string `json:"headquartersCountryCode"`
	HeadquartersText        *string `json:"headquartersText"`

	CompanyType     *string    `json:"companyType"`
	OperatingStatus *string    `json:"operatingStatus"`
	IpoStatus       *string    `json:"ipoStatus"`
	FoundedOn       *time.Time `json:"foundedOn"`
	ClosedOn        *time.Time `json:"closedOn"`

	FundingStage    *string    `json:"fundingStage"`
	TotalFundingUsd *int64     `json:"totalFundingUsd"`
	LastFundingType *string    `json:"lastFundingType"`
	LastFundingDate *time.Time `json:"lastFundingDate"`

	RevenueRange       *string `json:"revenueRange"`
	EmployeeCountRange *string `json:"employeeCountRange"`
	EmployeeCountExact *int    `json:"employeeCountExact"`
	NumEmployeesMin    *int    `json:"numEmployeesMin"`
	NumEmployeesMax    *int    `json:"numEmployeesMax"`

	Rank         float64 `json:"rank"`
	RankDeltaD7  float64 `json:"rankDeltaD7"`
	RankDeltaD30 float64 `json:"rankDeltaD30"`
	RankDeltaD90 float64 `json:"rankDeltaD90"`

	NumArticles        int `json:"numArticles"`
	NumFundingRounds   int `json:"numFundingRounds"`
	NumInvestments     int `json:"numInvestments"`
	NumLeadInvestments int `json:"numLeadInvestments"`
	NumAcquisitions    int `json:"numAcquisitions"`
	NumExits           int `json:"numExits"`

	WebsiteURL   *string `json:"websiteUrl"`
	HomepageURL  *string `json:"homepageUrl"`
	ContactEmail *string `json:"contactEmail"`
	PhoneNumber  *string `json:"phoneNumber"`

	LinkedinURL *string `json:"linkedinUrl"`
	TwitterURL  *string `json:"twitterUrl"`
	FacebookURL *string `json:"facebookUrl"`

	StockSymbol         *string `json:"stockSymbol"`
	StockExchangeSymbol *string `json:"stockExchangeSymbol"`

	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`

	Aliases          []string `json:"aliases"`
	PermalinkAliases []string `json:"permalinkAliases"`

	Categories      []Category             `json:"categories"`
	CategoryGroups  []CategoryGroup        `json:"categoryGroups"`
	Locations       []Location             `json:"locations"`
	Founders        []Founder              `json:"founders"`
	FundingRounds   []FundingRoundSummary  `json:"fundingRounds"`
	InvestmentsMade []InvestmentSummary    `json:"investmentsMade"`
	AcquisitionsMade []AcquisitionSummary  `json:"acquisitionsMade"`
	WasAcquiredIn   []AcquisitionSummary   `json:"wasAcquiredIn"`
	StockListings   []StockListing         `json:"stockListings"`
}

type Founder struct {
	PersonID    int64   `json:"personId"`
	DisplayName string  `json:"displayName"`
	Permalink   string  `json:"permalink"`
	ImageURL    *string `json:"imageUrl"`
	Title       *string `json:"title"`
	IsPrimary   bool    `json:"isPrimary"`
}

type FundingRoundSummary struct {
	FundingRoundID int64      `json:"fundingRoundId"`
	AnnouncedOn    *time.Time `json:"announcedOn"`
	InvestmentType *string    `json:"investmentType"`
	FundingStage   *string    `json:"fundingStage"`
	MoneyRaisedUsd *int64     `json:"moneyRaisedUsd"`
	NumInvestors   int        `json:"numInvestors"`
}

type InvestmentSummary struct {
	InvestmentID      int64      `json:"investmentId"`
	AnnouncedOn       *time.Time `json:"announcedOn"`
	FundedOrgName     *string    `json:"fundedOrgName"`
	FundedOrgPermalink *string   `json:"fundedOrgPermalink"`
	FundedOrgID       *int64     `json:"fundedOrgId"`
	IsLeadInvestor    bool       `json:"isLeadInvestor"`
	AmountUsd         *int64     `json:"amountUsd"`
}

type AcquisitionSummary struct {
	AcquisitionID     int64      `json:"acquisitionId"`
	AnnouncedOn       *time.Time `json:"announcedOn"`
	PriceUsd          *int64     `json:"priceUsd"`
	AcquisitionStatus *string    `json:"acquisitionStatus"`
	IsAcquirer        bool       `json:"isAcquirer"`
	OtherOrgName      *string    `json:"otherOrgName"`
	OtherOrgPermalink *string    `json:"otherOrgPermalink"`
	OtherOrgID        *int64     `json:"otherOrgId"`
}

type StockListing struct {
	StockListingID int64      `json:"stockListingId"`
	Ticker         *string    `json:"ticker"`
	ExchangeSymbol *string    `json:"exchangeSymbol"`
	ExchangeName   *string    `json:"exchangeName"`
	WentPublicOn   *time.Time `json:"wentPublicOn"`
	IsActive       bool       `json:"isActive"`
}
