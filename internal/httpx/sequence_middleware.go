package httpx

import (
	"net/http"
	"time"

	"bookcatalog/internal/sequence"

	"github.com/rs/zerolog"
)

// SequenceMiddleware stamps every request with the next sequence number and
// its entry timestamp, logs the entry record, and logs the completion record
// with the elapsed milliseconds once the handler returns. The sequence number
// is read back from the request context, never from the shared counter, so
// concurrent requests always pair their own entry and completion records.
func SequenceMiddleware(seq *sequence.Sequencer, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			entry := sequence.Entry{Seq: seq.Next(), Start: time.Now()}

			log.Info().
				Uint64("request", entry.Seq).
				Msgf("incoming request | #%d | resource: %s | HTTP verb %s", entry.Seq, r.URL.Path, r.Method)

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r.WithContext(sequence.NewContext(r.Context(), entry)))

			log.Debug().
				Uint64("request", entry.Seq).
				Int("status", rw.statusCode).
				Msgf("request #%d duration: %dms", entry.Seq, entry.Elapsed())
		})
	}
}
