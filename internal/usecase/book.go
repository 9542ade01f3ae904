package usecase

import (
	"context"
	"errors"

	"bookcatalog/internal/entity"
)

// Domain error kinds. The HTTP layer maps these to status codes:
// ErrNotFound -> 404, ErrBadRequest -> 400, the rest -> 409.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidRange = errors.New("year is not in the accepted range [1940 -> 2100]")
	ErrInvalidPrice = errors.New("price must be a positive number")
	ErrDuplicate    = errors.New("already exists in the system")
	ErrBadRequest   = errors.New("malformed request input")
)

// CreateParams carries the fields of a new book before validation.
type CreateParams struct {
	Title  string
	Author string
	Year   int
	Price  float64
	Genres []string
}

// FilterParams holds the optional query criteria. Nil/empty fields impose no
// constraint; supplied criteria combine with logical AND.
type FilterParams struct {
	Author          string
	PriceBiggerThan *float64
	PriceLessThan   *float64
	YearBiggerThan  *int
	YearLessThan    *int
	Genres          []string
}

// CatalogRepository defines the contract for catalog storage.
type CatalogRepository interface {
	// Create validates the params, assigns the next id and stores the book.
	Create(ctx context.Context, p CreateParams) (int, error)
	// Get returns the book with the given id.
	Get(ctx context.Context, id int) (entity.Book, error)
	// UpdatePrice replaces a book's price and returns the previous value.
	UpdatePrice(ctx context.Context, id int, price float64) (float64, error)
	// Delete removes a book and returns how many books remain.
	Delete(ctx context.Context, id int) (int, error)
	// List returns the matching books sorted ascending by title.
	List(ctx context.Context, p FilterParams) ([]entity.Book, error)
	// Count returns how many books match the filters.
	Count(ctx context.Context, p FilterParams) (int, error)
}
