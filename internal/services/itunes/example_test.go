package itunes_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/killallgit/podcast-catalog/internal/services/itunes"
)

func ExampleClient_Search() {
	// Conservative limits, the public API allows roughly 20 calls a minute
	client := itunes.NewClient(itunes.Config{
		RequestsPerMinute: 20,
		BurstSize:         2,
		Timeout:           10 * time.Second,
	})

	results, err := client.Search(context.Background(), "thmanyah", &itunes.SearchOptions{Limit: 5})
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	for _, entry := range results.Entries {
		fmt.Printf("%d %s (%s)\n", entry.TrackID, entry.TrackName, entry.FeedURL)
	}
}
