package utils

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// PaginatedResponse mirrors TMDB paging at the top level of the envelope
type PaginatedResponse struct {
	Success      bool `json:"success"`
	Data         any  `json:"data"`
	Page         int  `json:"page"`
	TotalPages   int  `json:"total_pages"`
	TotalResults int  `json:"total_results"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ResponseJSON writes a success envelope with custom status code
func ResponseJSON(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ResponseError writes a failure envelope with custom status code
func ResponseError(w http.ResponseWriter, code int, message string, errors any) {
	writeJSON(w, code, Response{
		Success: false,
		Error:   message,
		Errors:  errors,
	})
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, message, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, message, data)
}

// returns 200 OK with page metadata next to data
func ResponsePaginated(w http.ResponseWriter, data any, page, totalPages, totalResults int) {
	writeJSON(w, http.StatusOK, PaginatedResponse{
		Success:      true,
		Data:         data,
		Page:         page,
		TotalPages:   totalPages,
		TotalResults: totalResults,
	})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseError(w, http.StatusBadRequest, message, errors)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message, nil)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusForbidden, message, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message, nil)
}

// returns 429 Too Many Requests
func ResponseTooManyRequests(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusTooManyRequests, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message, nil)
}
