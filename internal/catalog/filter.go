// Package catalog implements the filter engine: a pure reduction of a catalog
// snapshot to the subset matching a set of optional criteria.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"
)

// ValidateGenres checks the genre-filter precondition: every requested token
// must be entirely upper-case. Violations abort filtering before it starts.
func ValidateGenres(genres []string) error {
	for _, g := range genres {
		if g != strings.ToUpper(g) {
			return fmt.Errorf("wrong case for genres: %w", usecase.ErrBadRequest)
		}
	}
	return nil
}

// Filter returns the books satisfying every supplied criterion. The input
// slice is never mutated and the result order follows the input order.
func Filter(books []entity.Book, p usecase.FilterParams) ([]entity.Book, error) {
	if err := ValidateGenres(p.Genres); err != nil {
		return nil, err
	}

	matched := make([]entity.Book, 0, len(books))
	for _, b := range books {
		if matches(b, p) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func matches(b entity.Book, p usecase.FilterParams) bool {
	if p.Author != "" && b.Author != entity.NormalizeAuthor(p.Author) {
		return false
	}
	if p.PriceBiggerThan != nil && b.Price < *p.PriceBiggerThan {
		return false
	}
	if p.PriceLessThan != nil && b.Price > *p.PriceLessThan {
		return false
	}
	if p.YearBiggerThan != nil && b.Year < *p.YearBiggerThan {
		return false
	}
	if p.YearLessThan != nil && b.Year > *p.YearLessThan {
		return false
	}
	if len(p.Genres) > 0 && !intersects(b.Genres, p.Genres) {
		return false
	}
	return true
}

// intersects reports whether the book's genre set shares at least one token
// with the requested list (OR semantics within this single criterion).
func intersects(bookGenres, requested []string) bool {
	for _, g := range bookGenres {
		for _, want := range requested {
			if g == want {
				return true
			}
		}
	}
	return false
}

// SortByTitle orders books ascending by title. Filtering itself is
// order-independent; a defined order is restored only at the listing boundary.
func SortByTitle(books []entity.Book) {
	sort.Slice(books, func(i, j int) bool {
		return books[i].Title < books[j].Title
	})
}
