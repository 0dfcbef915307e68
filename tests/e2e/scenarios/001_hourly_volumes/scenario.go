package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
const (
	totalEvents = 4800 // events served by the fake events API
)

var (
	hours     = []string{"09", "10", "11", "12"}
	modelKeys = []string{"gpt-4o", "claude-3", "", "-"} // "" = no model, "-" = no nested content
	names     = []string{"request", "request", "request", "response", "user_evaluation", "request"}
)

// ### End - fixed configs

type logEvent struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	OwnerID   int64  `json:"owner_id"`
}

type eventsOut struct {
	Data  []logEvent `json:"data"`
	Count int        `json:"count"`
}

type matrixResponse struct {
	Volumes map[string]map[string]int64 `json:"volumes"`
	Total   int64                       `json:"total"`
}

// main runs the e2e scenario: 001_hourly_volumes
//
// This scenario serves a deterministic event log from a fake events API and
// checks the volume matrix the lm-events service computes from it. Start the
// service with upstream.base_url pointing at UPSTREAM_ADDR before running.
//
// What it tests:
//   - Paged collection through GET /api/v1/events/ with skip/limit
//   - Only request events are counted
//   - Model keys: named model, "model" without a name, "other" without nested content
//   - Malformed content is skipped without failing the report
//   - Hour buckets in UTC
//
// Expected results:
//   - Four hour buckets on DATE_UTC (09:00 to 12:00)
//   - 800 requests per model key and 200 per bucket, less the malformed ones
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	upstreamAddr := getEnv("UPSTREAM_ADDR", "localhost:8000")
	dateUTC := getEnv("DATE_UTC", "2025-12-28")
	malformedEvery := getEnvInt("MALFORMED_EVERY", 97) // every Nth request event carries invalid JSON

	fmt.Println("Starting e2e scenario: 001_hourly_volumes")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("UPSTREAM_ADDR: %s\n", upstreamAddr)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("TOTAL_EVENTS: %d\n", totalEvents)
	fmt.Println()

	events, expected := generateEvents(dateUTC, malformedEvery)
	var pagesServed int64

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/events/", func(w http.ResponseWriter, r *http.Request) {
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		end := min(skip+limit, len(events))
		if skip > end {
			skip = end
		}
		atomic.AddInt64(&pagesServed, 1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(eventsOut{Data: events[skip:end], Count: len(events)})
	})

	listener, err := net.Listen("tcp", upstreamAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to listen on %s: %v\n", upstreamAddr, err)
		os.Exit(1)
	}
	upstream := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := upstream.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "ERROR: Fake events API failed: %v\n", err)
			os.Exit(1)
		}
	}()
	defer upstream.Close()

	got, err := fetchMatrix(baseURL, totalEvents)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Pages served: %d\n", atomic.LoadInt64(&pagesServed))
	fmt.Printf("Requests counted: %d\n", got.Total)
	fmt.Printf("Model keys: %d\n", len(got.Volumes))

	if !reflect.DeepEqual(expected, got.Volumes) {
		fmt.Fprintf(os.Stderr, "ERROR: volume matrix mismatch\nwant: %v\ngot:  %v\n", expected, got.Volumes)
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

// generateEvents returns the event log and the matrix it must aggregate to.
func generateEvents(dateUTC string, malformedEvery int) ([]logEvent, map[string]map[string]int64) {
	events := make([]logEvent, 0, totalEvents)
	expected := map[string]map[string]int64{}
	requests := 0

	for i := 0; i < totalEvents; i++ {
		name := names[i%len(names)]
		hour := hours[(i/len(names))%len(hours)]
		model := modelKeys[(i/(len(names)*len(hours)))%len(modelKeys)]
		ts := fmt.Sprintf("%sT%s:%02d:%02d", dateUTC, hour, i%60, (i*7)%60)

		content, key := eventContent(name, model)
		if name == "request" {
			requests++
			if malformedEvery > 0 && requests%malformedEvery == 0 {
				content = `{"content": {"model": `
				key = ""
			}
		}
		if key != "" {
			bucket := fmt.Sprintf("%s %s:00", dateUTC, hour)
			if expected[key] == nil {
				expected[key] = map[string]int64{}
			}
			expected[key][bucket]++
		}

		events = append(events, logEvent{ID: int64(i + 1), Name: name, Content: content, Timestamp: ts, OwnerID: 1})
	}
	return events, expected
}

// eventContent returns the serialized content and, for requests, the model
// key it must be counted under.
func eventContent(name, model string) (string, string) {
	switch name {
	case "request":
		switch model {
		case "-":
			return `{"method":"POST","url":"https://api.example.com/v1/embeddings"}`, "other"
		case "":
			return `{"method":"POST","url":"https://api.example.com/v1/chat","content":{"messages":[]}}`, "model"
		default:
			return fmt.Sprintf(`{"method":"POST","url":"https://api.example.com/v1/chat","content":{"model":%q}}`, model), model
		}
	case "response":
		return `{"status_code":200,"content":{"choices":[]}}`, ""
	default:
		return `{"value":1}`, ""
	}
}

func fetchMatrix(baseURL string, limit int) (*matrixResponse, error) {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(fmt.Sprintf("%s/volumes/matrix?limit=%d", baseURL, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to call volumes: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("volumes returned status %d", resp.StatusCode)
	}
	var out matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode volumes: %w", err)
	}
	return &out, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
