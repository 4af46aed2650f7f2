package infrastructure

import (
	"strings"
	"testing"

	"foodieConsole/internal/modules/restaurants/domain"
)

func TestDecodeListPage_Variants(t *testing.T) {
	cases := []struct {
		name        string
		body        string
		query       domain.PagedQuery
		wantItems   int
		wantCurrent int
		wantTotal   int
	}{
		{
			name:        "restaurants envelope",
			body:        `{"restaurants":[{"_id":"a"},{"_id":"b"}],"currentPage":1,"totalPages":4}`,
			query:       domain.PagedQuery{Page: 1},
			wantItems:   2,
			wantCurrent: 1,
			wantTotal:   4,
		},
		{
			name:        "data envelope with item total",
			body:        `{"data":{"items":[{"id":"a"}],"total":25}}`,
			query:       domain.PagedQuery{Page: 3, Limit: 10},
			wantItems:   1,
			wantCurrent: 3,
			wantTotal:   3,
		},
		{
			name:        "bare array",
			body:        `[{"_id":"a"}]`,
			query:       domain.PagedQuery{Page: 1},
			wantItems:   1,
			wantCurrent: 1,
			wantTotal:   1,
		},
		{
			name:        "string paging values",
			body:        `{"restaurants":[],"currentPage":"2","totalPages":"2"}`,
			query:       domain.PagedQuery{Page: 2},
			wantItems:   0,
			wantCurrent: 2,
			wantTotal:   2,
		},
		{
			name:        "zero pages reported",
			body:        `{"restaurants":[],"currentPage":1,"totalPages":0}`,
			query:       domain.PagedQuery{Page: 1},
			wantItems:   0,
			wantCurrent: 1,
			wantTotal:   1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := decodeListPage(strings.NewReader(tc.body), tc.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(page.Items) != tc.wantItems {
				t.Fatalf("expected %d items, got %d", tc.wantItems, len(page.Items))
			}
			if page.CurrentPage != tc.wantCurrent || page.TotalPages != tc.wantTotal {
				t.Fatalf("expected %d/%d, got %d/%d", tc.wantCurrent, tc.wantTotal, page.CurrentPage, page.TotalPages)
			}
		})
	}
}

func TestDecodeListPage_RejectsScalar(t *testing.T) {
	if _, err := decodeListPage(strings.NewReader(`"oops"`), domain.PagedQuery{}); err == nil {
		t.Fatal("expected error for scalar payload")
	}
}

func TestDecodeRestaurant_FallsBackToID(t *testing.T) {
	record, err := decodeRestaurant(strings.NewReader(`{"data":{"id":"x-1","name":"Noodles","openingHours":"10-22"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != "x-1" || record.OpeningHours != "10-22" {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestDecodeRestaurant_EmptyBody(t *testing.T) {
	record, err := decodeRestaurant(strings.NewReader("  "))
	if err != nil || record != nil {
		t.Fatalf("expected nil record without error, got %+v %v", record, err)
	}
}
