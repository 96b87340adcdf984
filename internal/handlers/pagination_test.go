package handlers

import "testing"

func TestParsePaginationParamsDefaults(t *testing.T) {
	page, limit, err := parsePaginationParams("", "", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || limit != 2 {
		t.Fatalf("expected page=1 limit=2, got page=%d limit=%d", page, limit)
	}
}

func TestParsePaginationParamsExplicit(t *testing.T) {
	page, limit, err := parsePaginationParams("3", "50", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 3 || limit != 50 {
		t.Fatalf("expected page=3 limit=50, got page=%d limit=%d", page, limit)
	}
}

func TestParsePaginationParamsRejectsBadValues(t *testing.T) {
	cases := [][2]string{
		{"0", ""},
		{"-1", ""},
		{"abc", ""},
		{"", "0"},
		{"", "-5"},
		{"", "1.5"},
	}
	for _, tc := range cases {
		if _, _, err := parsePaginationParams(tc[0], tc[1], 2); err == nil {
			t.Fatalf("expected error for page=%q limit=%q", tc[0], tc[1])
		}
	}
}
