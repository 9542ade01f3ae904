package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookcatalog/internal/usecase"
)

type resultResponse struct {
	Result interface{} `json:"result"`
}

type errorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// JSONResult writes the success envelope: {"result": ...} with status 200.
func JSONResult(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resultResponse{Result: v})
}

// JSONErrorMessage writes the error envelope: {"errorMessage": "..."}.
func JSONErrorMessage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{ErrorMessage: message})
}

// writeDomainError maps a domain error kind to its transport status code:
// 404 for missing resources, 409 for domain-rule violations, 400 for
// malformed input.
func writeDomainError(w http.ResponseWriter, err error) {
	JSONErrorMessage(w, statusForError(err), "Error: "+err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidRange),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
