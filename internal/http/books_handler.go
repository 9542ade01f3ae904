package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"bookcatalog/internal/usecase"

	"github.com/rs/zerolog"
)

// BooksHandler serves the whole-catalog operations on /books.
type BooksHandler struct {
	repo usecase.CatalogRepository
	log  zerolog.Logger
}

func NewBooksHandler(repo usecase.CatalogRepository, log zerolog.Logger) *BooksHandler {
	return &BooksHandler{repo: repo, log: log}
}

// Health handles GET /books/health.
func (h *BooksHandler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// List handles GET /books. Results are sorted ascending by title.
func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logWith(h.log, r)

	params, err := parseFilterParams(r)
	if err != nil {
		log.Error().Err(err).Msg("can't list books")
		writeDomainError(w, err)
		return
	}

	books, err := h.repo.List(r.Context(), params)
	if err != nil {
		log.Error().Err(err).Msg("can't list books")
		writeDomainError(w, err)
		return
	}

	log.Info().Msgf("total books found for requested filters is %d", len(books))
	JSONResult(w, books)
}

// Count handles GET /books/total.
func (h *BooksHandler) Count(w http.ResponseWriter, r *http.Request) {
	log := logWith(h.log, r)

	params, err := parseFilterParams(r)
	if err != nil {
		log.Error().Err(err).Msg("can't count books")
		writeDomainError(w, err)
		return
	}

	count, err := h.repo.Count(r.Context(), params)
	if err != nil {
		log.Error().Err(err).Msg("can't count books")
		writeDomainError(w, err)
		return
	}

	log.Info().Msgf("total books found for requested filters is %d", count)
	JSONResult(w, count)
}

// parseFilterParams builds the filter criteria from the optional query
// parameters. Malformed numeric bounds are a bad request; genre case rules
// are enforced later by the filter engine.
func parseFilterParams(r *http.Request) (usecase.FilterParams, error) {
	q := r.URL.Query()
	params := usecase.FilterParams{Author: q.Get("author")}

	if raw := q.Get("price-bigger-than"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, badFilterParam("price-bigger-than", raw)
		}
		params.PriceBiggerThan = &v
	}
	if raw := q.Get("price-less-than"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, badFilterParam("price-less-than", raw)
		}
		params.PriceLessThan = &v
	}
	if raw := q.Get("year-bigger-than"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return params, badFilterParam("year-bigger-than", raw)
		}
		params.YearBiggerThan = &v
	}
	if raw := q.Get("year-less-than"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return params, badFilterParam("year-less-than", raw)
		}
		params.YearLessThan = &v
	}
	if raw := q.Get("genres"); raw != "" {
		params.Genres = strings.Split(raw, ",")
	}

	return params, nil
}

func badFilterParam(name, value string) error {
	return fmt.Errorf("filter parameter %s has non-numeric value [%s]: %w", name, value, usecase.ErrBadRequest)
}
