package adaptor

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"cinetrack/internal/dto/response"
	"cinetrack/pkg/utils"

	"go.uber.org/zap"
)

// pageFetcher is any catalog call that takes a validated page number.
type pageFetcher func(ctx context.Context, page int) (*response.MediaPage, error)

// servePage validates ?page= and writes the paginated envelope TMDB lists share.
func servePage(w http.ResponseWriter, r *http.Request, log *zap.Logger, operation string, fetch pageFetcher) {
	page, err := utils.ParsePage(r.URL.Query())
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	result, err := fetch(r.Context(), page)
	if err != nil {
		writeServiceError(w, log, err, operation)
		return
	}

	utils.ResponsePaginated(w, result.Results, result.Page, result.TotalPages, result.TotalResults)
}

// searchQuery returns the trimmed ?query= value, answering 400 when it is blank.
func searchQuery(w http.ResponseWriter, query url.Values) (string, bool) {
	q := strings.TrimSpace(query.Get("query"))
	if q == "" {
		utils.ResponseBadRequest(w, "query is required", nil)
		return "", false
	}
	return q, true
}

// pathID parses a positive integer path parameter, answering 400 otherwise.
func pathID(w http.ResponseWriter, raw, name string) (int, bool) {
	id, err := utils.ParsePositiveInt(raw, name)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return 0, false
	}
	return id, true
}
