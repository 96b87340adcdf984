package handlers

import (
	"errors"
	"strconv"
	"strings"
)

var errInvalidPagination = errors.New("invalid pagination params")

// parsePaginationParams reads page and limit, both optional positive
// integers. Page defaults to 1 and limit to defaultLimit.
func parsePaginationParams(pageStr, limitStr string, defaultLimit int64) (int64, int64, error) {
	page := int64(1)
	limit := defaultLimit
	if limit < 1 {
		limit = 1
	}

	if pageStr = strings.TrimSpace(pageStr); pageStr != "" {
		p, err := strconv.ParseInt(pageStr, 10, 64)
		if err != nil || p < 1 {
			return 0, 0, errInvalidPagination
		}
		page = p
	}

	if limitStr = strings.TrimSpace(limitStr); limitStr != "" {
		l, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || l < 1 {
			return 0, 0, errInvalidPagination
		}
		limit = l
	}

	return page, limit, nil
}
