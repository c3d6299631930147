package services

import (
	"strings"

	"cbexplorer/internal/domain"
	"cbexplorer/internal/utils"
)

// validateDateRange rejects malformed date filters before any SQL runs.
// Nil or blank bounds pass; a present bound must be YYYY-MM-DD.
func validateDateRange(fromDate, toDate *string) error {
	if fromDate != nil && strings.TrimSpace(*fromDate) != "" && !utils.ValidDate(*fromDate) {
		return domain.ValidationError{Field: "fromDate", Msg: "must be formatted YYYY-MM-DD"}
	}
	if toDate != nil && strings.TrimSpace(*toDate) != "" && !utils.ValidDate(*toDate) {
		return domain.ValidationError{Field: "toDate", Msg: "must be formatted YYYY-MM-DD"}
	}
	return nil
}
