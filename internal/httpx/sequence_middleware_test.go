package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/internal/sequence"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	seq := sequence.New()

	var seenEntries []sequence.Entry
	handler := SequenceMiddleware(seq, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry, ok := sequence.FromContext(r.Context())
		require.True(t, ok, "handler must see its entry record")
		seenEntries = append(seenEntries, entry)
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	require.Len(t, seenEntries, 3)
	for i, entry := range seenEntries {
		assert.Equal(t, uint64(i+1), entry.Seq)
	}

	out := buf.String()
	assert.Contains(t, out, "incoming request | #1 | resource: /books | HTTP verb GET")
	assert.Contains(t, out, "incoming request | #3")
}

func TestSequenceMiddlewareCompletionRecord(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	seq := sequence.New()

	handler := SequenceMiddleware(seq, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/book", nil))

	out := buf.String()
	assert.Contains(t, out, "request #1 duration:")
	assert.Contains(t, out, `"status":404`)
}
