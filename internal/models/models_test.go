package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPodcast_HasFeed(t *testing.T) {
	assert.False(t, (&Podcast{}).HasFeed())
	assert.True(t, (&Podcast{FeedURL: "https://feeds.example.com/thmanyah.xml"}).HasFeed())
}

func TestPodcast_JSONShape(t *testing.T) {
	podcast := Podcast{
		ID:            1,
		TrackID:       100,
		TrackName:     "Fnjan",
		ArtistName:    "Thmanyah",
		Genres:        []string{"Society & Culture", "Podcasts"},
		SearchKeyword: "thmanyah",
	}

	raw, err := json.Marshal(podcast)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, float64(100), decoded["trackId"])
	assert.Equal(t, "thmanyah", decoded["searchKeyword"])
	assert.Equal(t, false, decoded["isFavorite"])
	assert.Equal(t, []any{"Society & Culture", "Podcasts"}, decoded["genres"])
	assert.NotContains(t, decoded, "feedUrl")
	assert.NotContains(t, decoded, "episodes")
}

func TestEpisode_JSONShape(t *testing.T) {
	number := 12
	episode := Episode{
		ID:            5,
		PodcastID:     1,
		Title:         "Ep1",
		PubDate:       time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		EpisodeNumber: &number,
	}

	raw, err := json.Marshal(episode)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, float64(12), decoded["episodeNumber"])
	assert.Equal(t, "2024-01-02T00:00:00Z", decoded["pubDate"])
	assert.NotContains(t, decoded, "seasonNumber")
	assert.NotContains(t, decoded, "podcast")
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 2)
	assert.IsType(t, &Podcast{}, all[0])
	assert.IsType(t, &Episode{}, all[1])
}
