package models

import (
	"time"

	"cbexplorer/internal/domain"
)

type FundingRoundSearchRequest struct {
	domain.PagedRequest
	FromDate             *string `json:"fromDate" form:"fromDate"`
	ToDate               *string `json:"toDate" form:"toDate"`
	InvestmentType       *string `json:"investmentType" form:"investmentType"`
	InvestmentStage      *string `json:"investmentStage" form:"investmentStage"`
	IsEquity             *bool   `json:"isEquity" form:"isEquity"`
	FundingStage         *string `json:"fundingStage" form:"fundingStage"`
	FundedOrganizationID *int64  `json:"fundedOrganizationId" form:"fundedOrganizationId"`
	MinMoneyRaised       *int64  `json:"minMoneyRaised" form:"minMoneyRaised"`
	MaxMoneyRaised       *int64  `json:"maxMoneyRaised" form:"maxMoneyRaised"`
}

type FundingRoundListItem struct {
	FundingRoundID              int64      `json:"fundingRoundId"`
	RoundName                   string     `json:"roundName"`
	Permalink                   *string    `json:"permalink"`
	AnnouncedOn                 *time.Time `json:"announcedOn"`
	InvestmentType              *string    `json:"investmentType"`
	InvestmentStage             *string    `json:"investmentStage"`
	FundingStage                *string    `json:"fundingStage"`
	IsEquity                    bool       `json:"isEquity"`
	MoneyRaisedUsd              *int64     `json:"moneyRaisedUsd"`
	FundedOrganizationID        *int64     `json:"fundedOrganizationId"`
	FundedOrganizationName      *string    `json:"fundedOrganizationName"`
	FundedOrganizationPermalink *string    `json:"fundedOrganizationPermalink"`
	RankFundingRound            int        `json:"rankFundingRound"`
	NumInvestors                int        `json:"numInvestors"`
	NumLeadInvestors            int        `json:"numLeadInvestors"`
	NumPartners                 int        `json:"numPartners"`
}

type FundingRoundDetail struct {
	FundingRoundID int64   `json:"fundingRoundId"`
	RoundName      string  `json:"roundName"`
	Permalink      *string `json:"permalink"`

	ShortDescription *string `json:"shortDescription"`
	Description      *string `json:"description"`
	ImageURL         *string `json:"imageUrl"`

	FundedOrganizationID              *int64  `json:"fundedOrganizationId"`
	FundedOrganizationName            *string `json:"fundedOrganizationName"`
	FundedOrganizationPermalink       *string `json:"fundedOrganizationPermalink"`
	FundedOrganizationStage           *string `json:"fundedOrganizationStage"`
	FundedOrganizationFundingTotalUsd *int64  `json:"fundedOrganizationFundingTotalUsd"`
	FundedOrganizationRevenueRange    *string `json:"fundedOrganizationRevenueRange"`
	FundedOrganizationImageURL        *string `json:"fundedOrganizationImageUrl"`

	InvestmentType  *string `json:"investmentType"`
	InvestmentStage *string `json:"investmentStage"`
	FundingStage    *string `json:"fundingStage"`
	IsEquity        bool    `json:"isEquity"`

	AnnouncedOn *time.Time `json:"announcedOn"`
	ClosedOn    *time.Time `json:"closedOn"`

	MoneyRaisedUsd        *int64 `json:"moneyRaisedUsd"`
	TargetMoneyRaisedUsd  *int64 `json:"targetMoneyRaisedUsd"`
	PreMoneyValuationUsd  *int64 `json:"preMoneyValuationUsd"`
	PostMoneyValuationUsd *int64 `json:"postMoneyValuationUsd"`

	RankFundingRound int `json:"rankFundingRound"`
	NumInvestors     int `json:"numInvestors"`
	NumLeadInvestors int `json:"numLeadInvestors"`
	NumPartners      int `json:"numPartners"`

	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`

	Investors       []Investor       `json:"investors"`
	Categories      []Category       `json:"categories"`
	CategoryGroups  []CategoryGroup  `json:"categoryGroups"`
	PressReferences []PressReference `json:"pressReferences"`
}

type Investor struct {
	FundingRoundInvestorID int64   `json:"fundingRoundInvestorId"`
	InvestorEntityID       int64   `json:"investorEntityId"`
	InvestorName           *string `json:"investorName"`
	InvestorPermalink      *string `json:"investorPermalink"`
	InvestorType           *string `json:"investorType"`
	InvestorImageURL       *string `json:"investorImageUrl"`
	IsLeadInvestor         bool    `json:"isLeadInvestor"`
	AmountUsd              *int64  `json:"amountUsd"`
	Role                   *string `json:"role"`
}
