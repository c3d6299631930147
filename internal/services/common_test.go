package services

import (
	"context"
	"testing"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/domain/models"
)

func strp(s string) *string { return &s }

func TestValidateDateRange(t *testing.T) {
	if err := validateDateRange(nil, nil); err != nil {
		t.Fatalf("nil bounds should pass: %v", err)
	}
	if err := validateDateRange(strp("2023-01-15"), strp("2024-12-31")); err != nil {
		t.Fatalf("valid bounds should pass: %v", err)
	}
	if err := validateDateRange(strp("  "), nil); err != nil {
		t.Fatalf("blank bound should pass: %v", err)
	}
	if err := validateDateRange(strp("15/01/2023"), nil); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad fromDate, got %v", err)
	}
	if err := validateDateRange(nil, strp("not-a-date")); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad toDate, got %v", err)
	}
}

func TestFundingRoundSearchRejectsBadDates(t *testing.T) {
	req := models.FundingRoundSearchRequest{FromDate: strp("2023-13-99")}
	svc := FundingRoundService{}
	_, err := svc.Search(context.Background(), req)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
