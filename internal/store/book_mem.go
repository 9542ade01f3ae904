package store

// Repository implementation (in-memory)

import (
	"context"
	"fmt"
	"sync"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"
)

// BookMem owns the book collection and the next-id counter. All access goes
// through the mutex so concurrent handlers never see a torn catalog and ids
// are never assigned twice. Ids are monotonic and never reused after deletion.
type BookMem struct {
	mu     sync.Mutex
	books  []entity.Book
	nextID int
}

func NewBookMem() *BookMem {
	return &BookMem{nextID: 1}
}

func (r *BookMem) Create(_ context.Context, p usecase.CreateParams) (int, error) {
	if !entity.YearInRange(p.Year) {
		return 0, fmt.Errorf("can't create new book with year %d, %w", p.Year, usecase.ErrInvalidRange)
	}
	if p.Price <= 0 {
		return 0, fmt.Errorf("can't create new book with negative price, %w", usecase.ErrInvalidPrice)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.books {
		if b.Title == p.Title {
			return 0, fmt.Errorf("book with the title [%s] %w", p.Title, usecase.ErrDuplicate)
		}
	}

	book := entity.Book{
		ID:     r.nextID,
		Title:  p.Title,
		Author: entity.NormalizeAuthor(p.Author),
		Year:   p.Year,
		Price:  p.Price,
		Genres: p.Genres,
	}
	r.books = append(r.books, book)
	r.nextID++
	return book.ID, nil
}

func (r *BookMem) Get(_ context.Context, id int) (entity.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Book{}, fmt.Errorf("no such book with id %d, %w", id, usecase.ErrNotFound)
}

// UpdatePrice resolves the target by its stored id, not by position in the
// collection. See DESIGN.md for the resolution-policy decision.
func (r *BookMem) UpdatePrice(_ context.Context, id int, price float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ID != id {
			continue
		}
		if price <= 0 {
			return 0, fmt.Errorf("price update for book %d must be positive, %w", id, usecase.ErrInvalidPrice)
		}
		old := r.books[i].Price
		r.books[i].Price = price
		return old, nil
	}
	return 0, fmt.Errorf("no such book with id %d, %w", id, usecase.ErrNotFound)
}

func (r *BookMem) Delete(_ context.Context, id int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return len(r.books), nil
		}
	}
	return 0, fmt.Errorf("no such book with id %d, %w", id, usecase.ErrNotFound)
}

func (r *BookMem) List(_ context.Context, p usecase.FilterParams) ([]entity.Book, error) {
	books, err := catalog.Filter(r.snapshot(), p)
	if err != nil {
		return nil, err
	}
	catalog.SortByTitle(books)
	return books, nil
}

func (r *BookMem) Count(_ context.Context, p usecase.FilterParams) (int, error) {
	books, err := catalog.Filter(r.snapshot(), p)
	if err != nil {
		return 0, err
	}
	return len(books), nil
}

// snapshot copies the collection under the lock so reads filter a consistent
// view instead of iterating live state.
func (r *BookMem) snapshot() []entity.Book {
	r.mu.Lock()
	defer r.mu.Unlock()

	books := make([]entity.Book, len(r.books))
	copy(books, r.books)
	return books
}
