package repositories

import (
	"database/sql"
	"testing"
)

func TestDeriveEventType(t *testing.T) {
	cases := []struct {
		name string
		raw  sql.NullString
		want string
	}{
		{"null column", sql.NullString{}, "Event"},
		{"conference", sql.NullString{String: `["conference"]`, Valid: true}, "Conference"},
		{"meetup inside longer label", sql.NullString{String: `["Tech Meetup","other"]`, Valid: true}, "Meetup"},
		{"workshop uppercase", sql.NullString{String: `["WORKSHOP"]`, Valid: true}, "Workshop"},
		{"webinar", sql.NullString{String: `["webinar"]`, Valid: true}, "Webinar"},
		{"unrecognized", sql.NullString{String: `["hackathon"]`, Valid: true}, "Event"},
	}
	for _, tc := range cases {
		if got := deriveEventType(tc.raw); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}
