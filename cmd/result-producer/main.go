package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
)

// ResultEvent mirrors the wire format consumed by the result feed
type ResultEvent struct {
	MatchID       string    `json:"match_id"`
	WinnerID      string    `json:"winner_id,omitempty"`
	ResultType    string    `json:"result_type"`
	MarginRuns    int       `json:"margin_runs,omitempty"`
	MarginWickets int       `json:"margin_wickets,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// matchSpec is one "matchID:team1ID:team2ID" entry from the -matches flag
type matchSpec struct {
	MatchID string
	Team1ID string
	Team2ID string
}

func parseMatches(raw string) ([]matchSpec, error) {
	var specs []matchSpec
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid match spec %q, want matchID:team1ID:team2ID", entry)
		}
		specs = append(specs, matchSpec{MatchID: parts[0], Team1ID: parts[1], Team2ID: parts[2]})
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no match specs given")
	}
	return specs, nil
}

// randomResult picks an outcome for a match. Most matches are decided, a
// small share are tied or washed out.
func randomResult(spec matchSpec) ResultEvent {
	event := ResultEvent{
		MatchID:   spec.MatchID,
		Timestamp: time.Now(),
	}

	roll := rand.Intn(100)
	switch {
	case roll < 55:
		event.ResultType = "won-by-runs"
		event.MarginRuns = rand.Intn(120) + 1
	case roll < 85:
		event.ResultType = "won-by-wickets"
		event.MarginWickets = rand.Intn(9) + 1
	case roll < 93:
		event.ResultType = "tied"
	case roll < 98:
		event.ResultType = "no-result"
	default:
		event.ResultType = "abandoned"
	}

	if event.ResultType == "won-by-runs" || event.ResultType == "won-by-wickets" {
		if rand.Intn(2) == 0 {
			event.WinnerID = spec.Team1ID
		} else {
			event.WinnerID = spec.Team2ID
		}
	}
	return event
}

func main() {
	// Command line flags
	brokers := flag.String("brokers", "localhost:9094", "Kafka brokers (comma-separated)")
	topic := flag.String("topic", "match-results", "Kafka topic")
	matches := flag.String("matches", "", "Match specs as matchID:team1ID:team2ID (comma-separated)")
	rate := flag.Int("rate", 10, "Results per second")
	count := flag.Int("count", 0, "Total results to send (0 = one per match)")
	flag.Parse()

	specs, err := parseMatches(*matches)
	if err != nil {
		log.Fatalf("Failed to parse -matches: %v", err)
	}

	brokerList := strings.Split(*brokers, ",")

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("  Match Result Producer")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("  Brokers:  %s\n", *brokers)
	fmt.Printf("  Topic:    %s\n", *topic)
	fmt.Printf("  Matches:  %d\n", len(specs))
	fmt.Printf("  Rate:     %d/sec\n", *rate)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	// Configure Sarama producer
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Flush.Frequency = 100 * time.Millisecond
	config.Producer.Flush.Messages = 100
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true

	// Create producer
	producer, err := sarama.NewAsyncProducer(brokerList, config)
	if err != nil {
		log.Fatalf("Failed to create producer: %v", err)
	}
	defer producer.Close()

	// Handle producer errors and successes
	var successCount, errorCount int64
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for range producer.Successes() {
			atomic.AddInt64(&successCount, 1)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range producer.Errors() {
			atomic.AddInt64(&errorCount, 1)
			log.Printf("Producer error: %v", err)
		}
	}()

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})

	sendEvent := func(event ResultEvent) {
		data, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal event: %v", err)
			return
		}

		msg := &sarama.ProducerMessage{
			Topic: *topic,
			Key:   sarama.StringEncoder(event.MatchID),
			Value: sarama.ByteEncoder(data),
		}

		select {
		case producer.Input() <- msg:
		case <-done:
			return
		}
	}

	finish := func() {
		close(done)
		producer.AsyncClose()
		wg.Wait()
		fmt.Printf("\n✓ Completed. Sent: %d, Errors: %d\n",
			atomic.LoadInt64(&successCount), atomic.LoadInt64(&errorCount))
	}

	total := *count
	if total == 0 {
		total = len(specs)
	}

	interval := time.Second / time.Duration(*rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sent := 0
	for sent < total {
		select {
		case <-sigChan:
			fmt.Println("\n\nShutting down...")
			finish()
			return

		case <-ticker.C:
			spec := specs[sent%len(specs)]
			sendEvent(randomResult(spec))
			sent++
			if sent%100 == 0 || sent == total {
				fmt.Printf("\r  Progress: %d/%d results", sent, total)
			}
		}
	}
	fmt.Println()
	finish()
}
