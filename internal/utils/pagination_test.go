package utils

import (
	"net/url"
	"testing"

	"github.com/mkhalitov/bookshelf/models"
)

func TestPageRequestFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.PageRequest
	}{
		{"defaults when absent", "", models.PageRequest{Page: 1, Limit: 10, Offset: 0}},
		{"explicit values", "page=3&limit=20", models.PageRequest{Page: 3, Limit: 20, Offset: 40}},
		{"limit capped at 50", "page=1&limit=500", models.PageRequest{Page: 1, Limit: 50, Offset: 0}},
		{"zero page falls back", "page=0&limit=10", models.PageRequest{Page: 1, Limit: 10, Offset: 0}},
		{"negative values fall back", "page=-2&limit=-5", models.PageRequest{Page: 1, Limit: 10, Offset: 0}},
		{"garbage values fall back", "page=abc&limit=xyz", models.PageRequest{Page: 1, Limit: 10, Offset: 0}},
		{"offset from page and limit", "page=4&limit=5", models.PageRequest{Page: 4, Limit: 5, Offset: 15}},
		{"overflowing page clamps offset", "page=9223372036854775807&limit=50", models.PageRequest{Page: 9223372036854775807, Limit: 50, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("bad test query: %v", err)
			}

			got := PageRequestFromQuery(values)

			if got != tt.want {
				t.Errorf("PageRequestFromQuery(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}
