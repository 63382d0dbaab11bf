package utils

import (
	"net/url"
	"strconv"

	"github.com/mkhalitov/bookshelf/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

// PageRequestFromQuery builds a normalized page request from the "page" and
// "limit" URL query parameters. Missing, malformed or out-of-range values
// fall back to safe defaults instead of producing an error:
//   - page below 1 (or unparsable) becomes 1
//   - limit below 1 (or unparsable) becomes 10, limit above 50 becomes 50
//   - a computed offset below 0 (page*limit past the int range) becomes 0
func PageRequestFromQuery(query url.Values) models.PageRequest {
	page := parsePositiveInt(query.Get("page"), defaultPage)
	limit := parsePositiveInt(query.Get("limit"), defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return models.PageRequest{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
