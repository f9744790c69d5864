package handlers

import "testing"

func TestParsePaginationParamsDefaults(t *testing.T) {
	limit, skip, err := parsePaginationParams("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 50 || skip != 0 {
		t.Errorf("expected defaults 50/0, got %d/%d", limit, skip)
	}
}

func TestParsePaginationParamsClampsLimit(t *testing.T) {
	limit, _, err := parsePaginationParams("500", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 100 {
		t.Errorf("expected limit clamped to 100, got %d", limit)
	}
}

func TestParsePaginationParamsRejectsBadInput(t *testing.T) {
	cases := []struct {
		limit string
		skip  string
	}{
		{"abc", ""},
		{"0", ""},
		{"-1", ""},
		{"", "-5"},
		{"", "ten"},
	}
	for _, tc := range cases {
		if _, _, err := parsePaginationParams(tc.limit, tc.skip); err == nil {
			t.Errorf("expected error for limit=%q skip=%q", tc.limit, tc.skip)
		}
	}
}
