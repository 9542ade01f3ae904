package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"
)

type bookPayload struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Year   int      `json:"year"`
	Price  float64  `json:"price"`
	Genres []string `json:"genres"`
}

// Seeds a running catalog server with sample books over HTTP.
func main() {
	baseURL := os.Getenv("SEED_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8574"
	}

	count := 50
	log.Printf("Seeding %d books into %s...", count, baseURL)

	genres := []string{"SCI-FI", "FICTION", "HISTORY", "ROMANCE", "MYSTERY", "BIOGRAPHY", "PHILOSOPHY"}
	authors := []string{"frank herbert", "isaac asimov", "ursula le guin", "andy weir", "octavia butler", "stanislaw lem"}

	client := &http.Client{Timeout: 5 * time.Second}
	created := 0
	for i := 0; i < count; i++ {
		payload := bookPayload{
			Title:  fmt.Sprintf("Sample Book %d", i+1),
			Author: authors[rand.Intn(len(authors))],
			Year:   1950 + rand.Intn(75),
			Price:  5 + float64(rand.Intn(40)) + 0.99,
			Genres: []string{genres[rand.Intn(len(genres))]},
		}

		body, err := json.Marshal(payload)
		if err != nil {
			log.Fatalf("Failed to encode book: %v", err)
		}

		resp, err := client.Post(baseURL+"/book", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("Failed to create book: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			log.Printf("Server rejected [%s]: %s", payload.Title, resp.Status)
			continue
		}
		created++
	}

	log.Printf("Successfully created %d/%d books!", created, count)
}
