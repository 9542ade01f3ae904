package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"bookcatalog/internal/sequence"
	"bookcatalog/internal/usecase"

	"github.com/rs/zerolog"
)

// BookHandler serves the single-book operations on /book.
type BookHandler struct {
	repo usecase.CatalogRepository
	log  zerolog.Logger
}

func NewBookHandler(repo usecase.CatalogRepository, log zerolog.Logger) *BookHandler {
	return &BookHandler{repo: repo, log: log}
}

type CreateBookRequest struct {
	Title  string   `json:"title" validate:"required"`
	Author string   `json:"author" validate:"required"`
	Year   int      `json:"year"`
	Price  float64  `json:"price"`
	Genres []string `json:"genres"`
}

// logWith tags catalog events with the request's audit sequence number.
func logWith(log zerolog.Logger, r *http.Request) zerolog.Logger {
	if entry, ok := sequence.FromContext(r.Context()); ok {
		return log.With().Uint64("request", entry.Seq).Logger()
	}
	return log
}

// Create handles POST /book.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logWith(h.log, r)

	var req CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONErrorMessage(w, http.StatusBadRequest, "Error: invalid request body")
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONErrorMessage(w, http.StatusBadRequest, validationMessage(errs))
		return
	}

	log.Info().Msgf("creating new book with title [%s]", req.Title)

	id, err := h.repo.Create(r.Context(), usecase.CreateParams{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
		Price:  req.Price,
		Genres: req.Genres,
	})
	if err != nil {
		log.Error().Err(err).Msgf("can't create book [%s]", req.Title)
		writeDomainError(w, err)
		return
	}

	log.Debug().Msgf("new book [%s] assigned id %d", req.Title, id)
	JSONResult(w, id)
}

// Get handles GET /book?id=.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logWith(h.log, r)

	id, err := parseIDParam(r)
	if err != nil {
		log.Error().Err(err).Msg("can't fetch book")
		JSONErrorMessage(w, http.StatusNotFound, "Error: "+err.Error())
		return
	}

	book, err := h.repo.Get(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msgf("can't fetch book id %d", id)
		writeDomainError(w, err)
		return
	}

	log.Debug().Msgf("fetching book id %d details", id)
	JSONResult(w, book)
}

// UpdatePrice handles PUT /book?id=&price=.
func (h *BookHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	log := logWith(h.log, r)

	id, err := parseIDParam(r)
	if err != nil {
		log.Error().Err(err).Msg("can't update book price")
		JSONErrorMessage(w, http.StatusNotFound, "Error: "+err.Error())
		return
	}

	priceRaw := r.URL.Query().Get("price")
	if priceRaw == "" {
		JSONErrorMessage(w, http.StatusNotFound, "Error: missing required query parameter [price]")
		return
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		JSONErrorMessage(w, http.StatusBadRequest, fmt.Sprintf("Error: price [%s] must be a number", priceRaw))
		return
	}

	old, err := h.repo.UpdatePrice(r.Context(), id, price)
	if err != nil {
		log.Error().Err(err).Msgf("can't update price for book id %d", id)
		writeDomainError(w, err)
		return
	}

	log.Info().Msgf("update book id [%d] price to %v", id, price)
	log.Debug().Msgf("book id [%d] price change: %v --> %v", id, old, price)
	JSONResult(w, old)
}

// Delete handles DELETE /book?id=.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logWith(h.log, r)

	id, err := parseIDParam(r)
	if err != nil {
		log.Error().Err(err).Msg("can't delete book")
		JSONErrorMessage(w, http.StatusNotFound, "Error: "+err.Error())
		return
	}

	remaining, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msgf("can't delete book id %d", id)
		writeDomainError(w, err)
		return
	}

	log.Info().Msgf("removing book id [%d]", id)
	log.Debug().Msgf("after removing book id [%d] there are %d books in the system", id, remaining)
	JSONResult(w, remaining)
}

func parseIDParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, fmt.Errorf("missing required query parameter [id]")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("no such book with id %s", raw)
	}
	return id, nil
}
