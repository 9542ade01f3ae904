package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	apphttp "bookcatalog/internal/http"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/logging"
	"bookcatalog/internal/sequence"
	"bookcatalog/internal/store"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8574")
	logDir := getEnv("LOG_DIR", "logs")
	rateRPS := getEnvFloat("RATE_RPS", 50)
	rateBurst := getEnvInt("RATE_BURST", 100)

	registry, err := logging.NewRegistry(logging.Config{Dir: logDir})
	if err != nil {
		log.Fatalf("cannot open log sinks: %v", err)
	}
	defer registry.Close()

	requestLog := registry.Logger(logging.RequestLogger)
	booksLog := registry.Logger(logging.BooksLogger)

	repo := store.NewBookMem()
	sequencer := sequence.New()

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector())
	metrics := httpx.NewMetrics(promRegistry)

	mux := apphttp.NewMux(
		apphttp.NewBookHandler(repo, booksLog),
		apphttp.NewBooksHandler(repo, booksLog),
		apphttp.NewLogsHandler(registry),
		promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}),
	)

	rateLimiter := httpx.NewRateLimitMiddleware(rateRPS, rateBurst)

	var handler http.Handler = mux
	handler = rateLimiter.Middleware(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = metrics.Middleware(handler)
	handler = httpx.SequenceMiddleware(sequencer, requestLog)(handler)
	handler = httpx.RecoveryMiddleware(requestLog)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Fatalf("invalid value for %s: %s", key, v)
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Fatalf("invalid value for %s: %s", key, v)
	}
	return def
}
