package http

import (
	"net/http"
)

// NewMux wires the route table. Method dispatch for the paths shared by
// several verbs goes through MethodMux; metrics is optional.
func NewMux(book *BookHandler, books *BooksHandler, logs *LogsHandler, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/book", MethodMux(map[string]http.Handler{
		http.MethodPost:   http.HandlerFunc(book.Create),
		http.MethodGet:    http.HandlerFunc(book.Get),
		http.MethodPut:    http.HandlerFunc(book.UpdatePrice),
		http.MethodDelete: http.HandlerFunc(book.Delete),
	}))

	mux.HandleFunc("/books", books.List)
	mux.HandleFunc("/books/total", books.Count)
	mux.HandleFunc("/books/health", books.Health)

	mux.Handle("/logs/level", MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(logs.GetLevel),
		http.MethodPut: http.HandlerFunc(logs.SetLevel),
	}))

	if metrics != nil {
		mux.Handle("/metrics", metrics)
	}

	return mux
}
