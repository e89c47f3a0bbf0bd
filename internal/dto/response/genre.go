package response

import "cinetrack/internal/tmdb"

type GenreResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func GenresToResponse(genres []tmdb.Genre) []GenreResponse {
	out := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, GenreResponse{ID: g.ID, Name: g.Name})
	}
	return out
}
