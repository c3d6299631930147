package models

import (
	"time"

	"cbexplorer/internal/domain"
)

type InvestmentSearchRequest struct {
	domain.PagedRequest
	InvestorEntityID     *int64  `json:"investorEntityId" form:"investorEntityId"`
	FundedOrganizationID *int64  `json:"fundedOrganizationId" form:"fundedOrganizationId"`
	FundingRoundID       *int64  `json:"fundingRoundId" form:"fundingRoundId"`
	FromDate             *string `json:"fromDate" form:"fromDate"`
	ToDate               *string `json:"toDate" form:"toDate"`
	MinAmount            *int64  `json:"minAmount" form:"minAmount"`
	MaxAmount            *int64  `json:"maxAmount" form:"maxAmount"`
}

type InvestmentListItem struct {
	InvestmentID                int64      `json:"investmentId"`
	FundingRoundID              *int64     `json:"fundingRoundId"`
	FundingRoundName            *string    `json:"fundingRoundName"`
	FundingRoundMoneyRaisedUsd  *int64     `json:"fundingRoundMoneyRaisedUsd"`
	InvestorEntityID            *int64     `json:"investorEntityId"`
	InvestorName                *string    `json:"investorName"`
	InvestorPermalink           *string    `json:"investorPermalink"`
	InvestorType                *string    `json:"investorType"`
	FundedOrganizationID        *int64     `json:"fundedOrganizationId"`
	FundedOrganizationName      *string    `json:"fundedOrganizationName"`
	FundedOrganizationPermalink *string    `json:"fundedOrganizationPermalink"`
	AnnouncedOn                 *time.Time `json:"announcedOn"`
	IsLeadInvestor              bool       `json:"isLeadInvestor"`
	AmountUsd                   *int64     `json:"amountUsd"`
	PartnerCount                int        `json:"partnerCount"`
}

type InvestmentDetail struct {
	InvestmentID               int64      `json:"investmentId"`
	FundingRoundID             *int64     `json:"fundingRoundId"`
	AnnouncedOn                *time.Time `json:"announcedOn"`
	Role                       *string    `json:"role"`
	FundingRoundInvestmentType *string    `json:"fundingRoundInvestmentType"`
	FundingRoundMoneyRaisedUsd *int64     `json:"fundingRoundMoneyRaisedUsd"`

	InvestorEntityID  *int64  `json:"investorEntityId"`
	InvestorName      *string `json:"investorName"`
	InvestorPermalink *string `json:"investorPermalink"`

	FundedOrganizationID        *int64  `json:"fundedOrganizationId"`
	FundedOrganizationName      *string `json:"fundedOrganizationName"`
	FundedOrganizationPermalink *string `json:"fundedOrganizationPermalink"`

	IsLeadInvestor bool   `json:"isLeadInvestor"`
	AmountUsd      *int64 `json:"amountUsd"`
	PartnerCount   int    `json:"partnerCount"`

	Partners []Partner `json:"partners"`
}

type Partner struct {
	InvestmentPartnerID int64   `json:"investmentPartnerId"`
	PartnerEntityID     int64   `json:"partnerEntityId"`
	PartnerName         *string `json:"partnerName"`
	PartnerPermalink    *string `json:"partnerPermalink"`
	Role                *string `json:"role"`
}
