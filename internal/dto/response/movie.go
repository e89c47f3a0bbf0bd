package response

import "cinetrack/internal/tmdb"

// MediaPage is one page of normalized catalog results with TMDB's paging.
type MediaPage struct {
	Results      []tmdb.Media
	Page         int
	TotalPages   int
	TotalResults int
}

func NewMediaPage(page tmdb.Page[tmdb.RawMedia], kind tmdb.Kind) *MediaPage {
	return &MediaPage{
		Results:      tmdb.NormalizeList(page.Results, kind),
		Page:         page.Page,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}
}

type PersonResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Character  string `json:"character,omitempty"`
	Job        string `json:"job,omitempty"`
	ProfileURL string `json:"profile_url"`
}

type VideoResponse struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type ImageResponse struct {
	FilePath    string  `json:"file_path"`
	URL         string  `json:"url"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	Language    string  `json:"language,omitempty"`
}

type ImageGalleryResponse struct {
	Backdrops []ImageResponse `json:"backdrops"`
	Posters   []ImageResponse `json:"posters"`
	Logos     []ImageResponse `json:"logos"`
}

type MovieDetailResponse struct {
	tmdb.Media
	Genres              []GenreResponse                `json:"genres"`
	Runtime             int                            `json:"runtime"`
	Tagline             string                         `json:"tagline"`
	Status              string                         `json:"status"`
	ImdbID              string                         `json:"imdb_id"`
	Homepage            string                         `json:"homepage"`
	Budget              int64                          `json:"budget"`
	Revenue             int64                          `json:"revenue"`
	OriginalLanguage    string                         `json:"original_language"`
	ProductionCompanies []string                       `json:"production_companies"`
	Cast                []PersonResponse               `json:"cast"`
	Directors           []PersonResponse               `json:"directors"`
	Videos              []VideoResponse                `json:"videos"`
	Images              ImageGalleryResponse           `json:"images"`
	Similar             []tmdb.Media                   `json:"similar"`
	WatchProviders      map[string]tmdb.ProviderRegion `json:"watch_providers"`
}

const maxCast = 20

func CastToResponse(cast []tmdb.CastMember) []PersonResponse {
	out := make([]PersonResponse, 0, min(len(cast), maxCast))
	for i, c := range cast {
		if i == maxCast {
			break
		}
		out = append(out, PersonResponse{
			ID:         c.ID,
			Name:       c.Name,
			Character:  c.Character,
			ProfileURL: tmdb.BuildImageURL(c.ProfilePath, tmdb.ProfileSize),
		})
	}
	return out
}

// CrewToResponse keeps only crew members with the given job.
func CrewToResponse(crew []tmdb.CrewMember, job string) []PersonResponse {
	out := []PersonResponse{}
	for _, c := range crew {
		if c.Job != job {
			continue
		}
		out = append(out, PersonResponse{
			ID:         c.ID,
			Name:       c.Name,
			Job:        c.Job,
			ProfileURL: tmdb.BuildImageURL(c.ProfilePath, tmdb.ProfileSize),
		})
	}
	return out
}

func VideosToResponse(videos []tmdb.Video) []VideoResponse {
	out := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, VideoResponse{
			Key:      v.Key,
			Name:     v.Name,
			Site:     v.Site,
			Type:     v.Type,
			Official: v.Official,
		})
	}
	return out
}

func ImagesToResponse(images tmdb.Images) ImageGalleryResponse {
	return ImageGalleryResponse{
		Backdrops: imageList(images.Backdrops, tmdb.BackdropSize),
		Posters:   imageList(images.Posters, tmdb.PosterSize),
		Logos:     imageList(images.Logos, tmdb.LogoSize),
	}
}

func imageList(images []tmdb.Image, size string) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		resp := ImageResponse{
			FilePath:    img.FilePath,
			URL:         tmdb.BuildImageURL(img.FilePath, size),
			Width:       img.Width,
			Height:      img.Height,
			AspectRatio: img.AspectRatio,
		}
		if img.Language != nil {
			resp.Language = *img.Language
		}
		out = append(out, resp)
	}
	return out
}

func CompanyNames(companies []tmdb.Company) []string {
	out := make([]string, 0, len(companies))
	for _, c := range companies {
		out = append(out, c.Name)
	}
	return out
}

// ProvidersOrEmpty never returns nil so the field renders as {}.
func ProvidersOrEmpty(providers tmdb.WatchProviders) map[string]tmdb.ProviderRegion {
	if providers.Results == nil {
		return map[string]tmdb.ProviderRegion{}
	}
	return providers.Results
}
