package tmdb

// Page is the paging wrapper TMDB puts around every list endpoint.
type Page[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// RawMedia covers both movie and TV list entries; movies fill Title and
// ReleaseDate, series fill Name and FirstAirDate.
type RawMedia struct {
	ID            int     `json:"id"`
	MediaType     string  `json:"media_type,omitempty"`
	Title         string  `json:"title,omitempty"`
	Name          string  `json:"name,omitempty"`
	OriginalTitle string  `json:"original_title,omitempty"`
	OriginalName  string  `json:"original_name,omitempty"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date,omitempty"`
	FirstAirDate  string  `json:"first_air_date,omitempty"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	GenreIDs      []int   `json:"genre_ids,omitempty"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GenreList struct {
	Genres []Genre `json:"genres"`
}

type Company struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LogoPath string `json:"logo_path"`
}

type MovieDetails struct {
	RawMedia
	Genres           []Genre   `json:"genres"`
	Runtime          int       `json:"runtime"`
	Tagline          string    `json:"tagline"`
	Status           string    `json:"status"`
	ImdbID           string    `json:"imdb_id"`
	Homepage         string    `json:"homepage"`
	Budget           int64     `json:"budget"`
	Revenue          int64     `json:"revenue"`
	OriginalLanguage string    `json:"original_language"`
	Companies        []Company `json:"production_companies"`
	Images           *Images   `json:"images,omitempty"`
}

type SeasonSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	AirDate      string `json:"air_date"`
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	PosterPath   string `json:"poster_path"`
}

type Creator struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
}

type TVDetails struct {
	RawMedia
	Genres           []Genre         `json:"genres"`
	Tagline          string          `json:"tagline"`
	Status           string          `json:"status"`
	Homepage         string          `json:"homepage"`
	LastAirDate      string          `json:"last_air_date"`
	NumberOfSeasons  int             `json:"number_of_seasons"`
	NumberOfEpisodes int             `json:"number_of_episodes"`
	EpisodeRunTime   []int           `json:"episode_run_time"`
	OriginalLanguage string          `json:"original_language"`
	Seasons          []SeasonSummary `json:"seasons"`
	Networks         []Company       `json:"networks"`
	CreatedBy        []Creator       `json:"created_by"`
}

type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

type CrewMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department"`
	ProfilePath string `json:"profile_path"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type Video struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
}

type Videos struct {
	Results []Video `json:"results"`
}

type Image struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	Language    *string `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
}

type Images struct {
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
	Logos     []Image `json:"logos"`
}

type Provider struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path"`
	DisplayPriority int    `json:"display_priority"`
}

type ProviderRegion struct {
	Link     string     `json:"link"`
	Flatrate []Provider `json:"flatrate,omitempty"`
	Rent     []Provider `json:"rent,omitempty"`
	Buy      []Provider `json:"buy,omitempty"`
}

type WatchProviders struct {
	Results map[string]ProviderRegion `json:"results"`
}

type Episode struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	AirDate       string  `json:"air_date"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	StillPath     string  `json:"still_path"`
	Runtime       int     `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
}

type SeasonDetails struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	AirDate      string    `json:"air_date"`
	SeasonNumber int       `json:"season_number"`
	PosterPath   string    `json:"poster_path"`
	Episodes     []Episode `json:"episodes"`
}
