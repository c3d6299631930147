package domain

import "testing"

func TestSanitizeClampsPaging(t *testing.T) {
	cases := []struct {
		name     string
		in       PagedRequest
		wantPage int
		wantSize int
	}{
		{"zero page", PagedRequest{PageNumber: 0, PageSize: 10}, 1, 10},
		{"negative page", PagedRequest{PageNumber: -3, PageSize: 10}, 1, 10},
		{"zero size defaults", PagedRequest{PageNumber: 2, PageSize: 0}, 2, 25},
		{"oversized page capped", PagedRequest{PageNumber: 2, PageSize: 9000}, 2, 500},
		{"valid untouched", PagedRequest{PageNumber: 4, PageSize: 50}, 4, 50},
	}
	for _, tc := range cases {
		tc.in.Sanitize([]string{"Rank"}, "Rank")
		if tc.in.PageNumber != tc.wantPage {
			t.Fatalf("%s: page got %d want %d", tc.name, tc.in.PageNumber, tc.wantPage)
		}
		if tc.in.PageSize != tc.wantSize {
			t.Fatalf("%s: size got %d want %d", tc.name, tc.in.PageSize, tc.wantSize)
		}
	}
}

func TestSanitizeSortDirection(t *testing.T) {
	cases := map[string]SortDirection{
		"Descending": Descending,
		"descending": Descending,
		"DESC":       Descending,
		"desc":       Descending,
		"Ascending":  Ascending,
		"asc":        Ascending,
		"":           Ascending,
		"sideways":   Ascending,
	}
	for in, want := range cases {
		r := PagedRequest{SortDirection: SortDirection(in)}
		r.Sanitize([]string{"Rank"}, "Rank")
		if r.SortDirection != want {
			t.Fatalf("direction %q: got %s want %s", in, r.SortDirection, want)
		}
	}
	if Descending.SQL() != "DESC" || Ascending.SQL() != "ASC" {
		t.Fatalf("SQL keywords wrong: %s / %s", Descending.SQL(), Ascending.SQL())
	}
}

func TestSanitizeSortColumnWhitelist(t *testing.T) {
	r := PagedRequest{SortColumn: "Rank; DROP TABLE entity"}
	r.Sanitize([]string{"Rank", "Name"}, "Rank")
	if r.SortColumn != "Rank" {
		t.Fatalf("unlisted sort column should fall back, got %q", r.SortColumn)
	}

	r = PagedRequest{SortColumn: "Name"}
	r.Sanitize([]string{"Rank", "Name"}, "Rank")
	if r.SortColumn != "Name" {
		t.Fatalf("whitelisted sort column should survive, got %q", r.SortColumn)
	}
}

func TestOffset(t *testing.T) {
	r := PagedRequest{PageNumber: 3, PageSize: 25}
	if r.Offset() != 50 {
		t.Fatalf("offset got %d want 50", r.Offset())
	}
	r = PagedRequest{PageNumber: 1, PageSize: 25}
	if r.Offset() != 0 {
		t.Fatalf("first page offset got %d want 0", r.Offset())
	}
}

func TestNewPagedResultEnvelope(t *testing.T) {
	req := PagedRequest{PageNumber: 2, PageSize: 10}
	res := NewPagedResult([]int{1, 2, 3}, 33, req)

	if res.TotalPages != 4 {
		t.Fatalf("totalPages got %d want 4", res.TotalPages)
	}
	if !res.HasPreviousPage {
		t.Fatalf("page 2 should have a previous page")
	}
	if !res.HasNextPage {
		t.Fatalf("page 2 of 4 should have a next page")
	}
	if res.TotalCount != 33 {
		t.Fatalf("totalCount got %d want 33", res.TotalCount)
	}
}

func TestNewPagedResultEdges(t *testing.T) {
	// last page: no next
	res := NewPagedResult([]int{1, 2, 3}, 23, PagedRequest{PageNumber: 3, PageSize: 10})
	if res.HasNextPage {
		t.Fatalf("last page must not report a next page")
	}

	// exact multiple: 30/10 = 3 pages, not 4
	res = NewPagedResult([]int{1}, 30, PagedRequest{PageNumber: 3, PageSize: 10})
	if res.TotalPages != 3 {
		t.Fatalf("totalPages got %d want 3", res.TotalPages)
	}
	if res.HasNextPage {
		t.Fatalf("page 3 of 3 must not report a next page")
	}

	// empty set
	res = NewPagedResult([]int{}, 0, PagedRequest{PageNumber: 1, PageSize: 25})
	if res.TotalPages != 0 || res.HasNextPage || res.HasPreviousPage {
		t.Fatalf("empty result envelope wrong: %+v", res)
	}

	// nil items normalize to an empty slice for JSON
	res = NewPagedResult[int](nil, 0, PagedRequest{PageNumber: 1, PageSize: 25})
	if res.Items == nil {
		t.Fatalf("nil items should become an empty slice")
	}

	// past-the-end page keeps the real total
	res = NewPagedResult([]int{}, 42, PagedRequest{PageNumber: 99, PageSize: 25})
	if res.TotalCount != 42 {
		t.Fatalf("past-the-end page must keep totalCount, got %d", res.TotalCount)
	}
	if res.HasNextPage {
		t.Fatalf("past-the-end page must not report a next page")
	}
	if !res.HasPreviousPage {
		t.Fatalf("past-the-end page should report a previous page")
	}
}
