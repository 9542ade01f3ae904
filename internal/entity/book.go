package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Accepted publication year range for new books.
const (
	MinYear = 1940
	MaxYear = 2100
)

// Book represents one catalog entry.
type Book struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Year   int      `json:"year"`
	Price  float64  `json:"price"`
	Genres []string `json:"genres"`
}

var titleCaser = cases.Title(language.English)

// NormalizeAuthor lower-cases the author name and capitalizes each word.
// Stored authors are always in this form; titles and genres are kept as supplied.
func NormalizeAuthor(author string) string {
	return titleCaser.String(strings.ToLower(author))
}

// YearInRange reports whether a publication year is acceptable for creation.
func YearInRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}
