package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MaxUpstreamPage is the highest page TMDB will serve
const MaxUpstreamPage = 500

// ParsePage reads ?page=, defaulting to 1 when omitted
func ParsePage(query url.Values) (int, error) {
	raw := strings.TrimSpace(query.Get("page"))
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 || page > MaxUpstreamPage {
		return 0, fmt.Errorf("page must be an integer between 1 and %d", MaxUpstreamPage)
	}

	return page, nil
}

// ParsePositiveInt parses a path or query value that must be a positive integer
func ParsePositiveInt(raw, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return n, nil
}
