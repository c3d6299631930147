package models

import (
	"time"

	"cbexplorer/internal/domain"
)

type AcquisitionSearchRequest struct {
	domain.PagedRequest
	FromDate               *string `json:"fromDate" form:"fromDate"`
	ToDate                 *string `json:"toDate" form:"toDate"`
	AcquirerOrganizationID *int64  `json:"acquirerOrganizationId" form:"acquirerOrganizationId"`
	AcquireeOrganizationID *int64  `json:"acquireeOrganizationId" form:"acquireeOrganizationId"`
	MinPrice               *int64  `json:"minPrice" form:"minPrice"`
	MaxPrice               *int64  `json:"maxPrice" form:"maxPrice"`
	AcquisitionStatus      *string `json:"acquisitionStatus" form:"acquisitionStatus"`
	AcquisitionType        *string `json:"acquisitionType" form:"acquisitionType"`
}

type AcquisitionListItem struct {
	AcquisitionID          int64      `json:"acquisitionId"`
	AcquirerOrganizationID *int64     `json:"acquirerOrganizationId"`
	AcquirerName           *string    `json:"acquirerName"`
	AcquirerPermalink      *string    `json:"acquirerPermalink"`
	AcquireeOrganizationID *int64     `json:"acquireeOrganizationId"`
	AcquireeName           *string    `json:"acquireeName"`
	AcquireePermalink      *string    `json:"acquireePermalink"`
	AnnouncedOn            *time.Time `json:"announcedOn"`
	CompletedOn            *time.Time `json:"completedOn"`
	PriceUsd               *int64     `json:"priceUsd"`
	AcquisitionStatus      *string    `json:"acquisitionStatus"`
	AcquisitionType        *string    `json:"acquisitionType"`
}

// AcquisitionDetail is flat; acquisitions own no related collections.
type AcquisitionDetail struct {
	AcquisitionID     int64      `json:"acquisitionId"`
	AnnouncedOn       *time.Time `json:"announcedOn"`
	CompletedOn       *time.Time `json:"completedOn"`
	AcquisitionType   *string    `json:"acquisitionType"`
	PriceUsd          *int64     `json:"priceUsd"`
	PriceCurrency     *string    `json:"priceCurrency"`
	PaymentType       *string    `json:"paymentType"`
	AcquisitionStatus *string    `json:"acquisitionStatus"`

	AcquirerOrganizationID *int64  `json:"acquirerOrganizationId"`
	AcquirerName           *string `json:"acquirerName"`
	AcquirerPermalink      *string `json:"acquirerPermalink"`

	AcquireeOrganizationID *int64  `json:"acquireeOrganizationId"`
	AcquireeName           *string `json:"acquireeName"`
	AcquireePermalink      *string `json:"acquireePermalink"`
}
