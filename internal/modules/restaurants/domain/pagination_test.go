package domain

import "testing"

func TestPagedQueryNormalize(t *testing.T) {
	cases := []struct {
		input    PagedQuery
		expected PagedQuery
	}{
		{input: PagedQuery{}, expected: PagedQuery{Page: 1, Limit: DefaultPageSize}},
		{input: PagedQuery{Page: -3, Limit: 500}, expected: PagedQuery{Page: 1, Limit: 100}},
		{input: PagedQuery{Page: 4, Limit: 25}, expected: PagedQuery{Page: 4, Limit: 25}},
	}
	for _, c := range cases {
		if got := c.input.Normalize(); got != c.expected {
			t.Fatalf("Normalize(%#v) expected %#v got %#v", c.input, c.expected, got)
		}
	}
}

func TestPagedQueryToURLValues(t *testing.T) {
	values := PagedQuery{Page: 2}.ToURLValues()
	if got := values.Get("page"); got != "2" {
		t.Fatalf("expected page=2, got %s", got)
	}
	if got := values.Get("limit"); got != "10" {
		t.Fatalf("expected limit=10, got %s", got)
	}
}

func TestPaginationAccepts(t *testing.T) {
	p := Pagination{CurrentPage: 1, TotalPages: TotalPagesFor(25, 10)}
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	for page, expected := range map[int]bool{0: false, 1: true, 3: true, 4: false, -2: false} {
		if got := p.Accepts(page); got != expected {
			t.Fatalf("Accepts(%d) expected %v got %v", page, expected, got)
		}
	}
}

func TestTotalPagesFor(t *testing.T) {
	cases := map[[2]int]int{
		{0, 10}:  1,
		{10, 10}: 1,
		{11, 10}: 2,
		{25, 10}: 3,
		{5, 0}:   1,
	}
	for input, expected := range cases {
		if got := TotalPagesFor(input[0], input[1]); got != expected {
			t.Fatalf("TotalPagesFor(%d, %d) expected %d got %d", input[0], input[1], expected, got)
		}
	}
}
