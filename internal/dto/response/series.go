package response

import "cinetrack/internal/tmdb"

type SeasonSummaryResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	AirDate      string `json:"air_date"`
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	PosterURL    string `json:"poster_url"`
}

type SeriesDetailResponse struct {
	tmdb.Media
	Genres           []GenreResponse                `json:"genres"`
	Tagline          string                         `json:"tagline"`
	Status           string                         `json:"status"`
	Homepage         string                         `json:"homepage"`
	LastAirDate      string                         `json:"last_air_date"`
	NumberOfSeasons  int                            `json:"number_of_seasons"`
	NumberOfEpisodes int                            `json:"number_of_episodes"`
	EpisodeRunTime   []int                          `json:"episode_run_time"`
	OriginalLanguage string                         `json:"original_language"`
	Networks         []string                       `json:"networks"`
	CreatedBy        []string                       `json:"created_by"`
	Seasons          []SeasonSummaryResponse        `json:"seasons"`
	Cast             []PersonResponse               `json:"cast"`
	Videos           []VideoResponse                `json:"videos"`
	Similar          []tmdb.Media                   `json:"similar"`
	WatchProviders   map[string]tmdb.ProviderRegion `json:"watch_providers"`
}

type EpisodeResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	AirDate       string  `json:"air_date"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	StillURL      string  `json:"still_url"`
	Runtime       int     `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
}

type SeasonResponse struct {
	ID           int               `json:"id"`
	SeriesID     int               `json:"series_id"`
	Name         string            `json:"name"`
	Overview     string            `json:"overview"`
	AirDate      string            `json:"air_date"`
	SeasonNumber int               `json:"season_number"`
	PosterURL    string            `json:"poster_url"`
	Episodes     []EpisodeResponse `json:"episodes"`
}

func SeasonSummariesToResponse(seasons []tmdb.SeasonSummary) []SeasonSummaryResponse {
	out := make([]SeasonSummaryResponse, 0, len(seasons))
	for _, s := range seasons {
		out = append(out, SeasonSummaryResponse{
			ID:           s.ID,
			Name:         s.Name,
			Overview:     s.Overview,
			AirDate:      s.AirDate,
			SeasonNumber: s.SeasonNumber,
			EpisodeCount: s.EpisodeCount,
			PosterURL:    tmdb.BuildImageURL(s.PosterPath, tmdb.PosterSize),
		})
	}
	return out
}

func SeasonToResponse(seriesID int, season tmdb.SeasonDetails) SeasonResponse {
	episodes := make([]EpisodeResponse, 0, len(season.Episodes))
	for _, e := range season.Episodes {
		episodes = append(episodes, EpisodeResponse{
			ID:            e.ID,
			Name:          e.Name,
			Overview:      e.Overview,
			AirDate:       e.AirDate,
			EpisodeNumber: e.EpisodeNumber,
			SeasonNumber:  e.SeasonNumber,
			StillURL:      tmdb.BuildImageURL(e.StillPath, tmdb.BackdropSize),
			Runtime:       e.Runtime,
			VoteAverage:   e.VoteAverage,
		})
	}

	return SeasonResponse{
		ID:           season.ID,
		SeriesID:     seriesID,
		Name:         season.Name,
		Overview:     season.Overview,
		AirDate:      season.AirDate,
		SeasonNumber: season.SeasonNumber,
		PosterURL:    tmdb.BuildImageURL(season.PosterPath, tmdb.PosterSize),
		Episodes:     episodes,
	}
}

func CreatorNames(creators []tmdb.Creator) []string {
	out := make([]string, 0, len(creators))
	for _, c := range creators {
		out = append(out, c.Name)
	}
	return out
}
