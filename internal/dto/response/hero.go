package response

import "cinetrack/internal/tmdb"

type HeroItem struct {
	tmdb.Media
	Runtime int      `json:"runtime,omitempty"`
	Genres  []string `json:"genres"`
	Tagline string   `json:"tagline,omitempty"`
	LogoURL string   `json:"logo_url,omitempty"`
}
