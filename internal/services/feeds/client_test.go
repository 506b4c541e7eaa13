package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd" xmlns:content="http://purl.org/rss/1.0/modules/content/">
  <channel>
    <title>Fnjan</title>
    <item>
      <title>Ep1</title>
      <pubDate>Tue, 02 Jan 2024 08:00:00 GMT</pubDate>
      <enclosure url="https://cdn.example.com/ep1.mp3" length="12345" type="audio/mpeg"/>
      <content:encoded><![CDATA[<p>First <b>episode</b></p>]]></content:encoded>
      <itunes:duration>01:02:03</itunes:duration>
      <itunes:episode>12</itunes:episode>
      <itunes:season>3</itunes:season>
      <itunes:episodeType>full</itunes:episodeType>
      <itunes:explicit>no</itunes:explicit>
      <itunes:image href="https://cdn.example.com/ep1.jpg"/>
    </item>
    <item>
      <title></title>
      <pubDate>Mon, 01 Jan 2024 08:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Ep0</title>
      <description>Plain description</description>
      <itunes:episode>bonus</itunes:episode>
    </item>
  </channel>
</rss>`

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "CatalogTest/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	client := NewClient(Config{Timeout: 5 * time.Second, UserAgent: "CatalogTest/1.0"})
	items, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, items, 3)

	first := items[0]
	assert.Equal(t, "Ep1", first.Title)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), *first.PublishedAt)
	assert.Equal(t, "https://cdn.example.com/ep1.mp3", first.EnclosureURL)
	assert.Equal(t, "audio/mpeg", first.EnclosureType)
	assert.Equal(t, int64(12345), first.EnclosureLength)
	assert.Equal(t, "01:02:03", first.Duration)
	assert.Equal(t, "First episode", first.Snippet)
	assert.Contains(t, first.Content, "<b>episode</b>")
	require.NotNil(t, first.Episode)
	assert.Equal(t, 12, *first.Episode)
	require.NotNil(t, first.Season)
	assert.Equal(t, 3, *first.Season)
	assert.Equal(t, "full", first.EpisodeType)
	assert.False(t, first.Explicit)
	assert.Equal(t, "https://cdn.example.com/ep1.jpg", first.Image)

	// order is preserved and malformed items are still returned
	assert.Empty(t, items[1].Title)
	assert.Equal(t, "Ep0", items[2].Title)
	assert.Nil(t, items[2].PublishedAt)
	assert.Nil(t, items[2].Episode)
	assert.Equal(t, "Plain description", items[2].Content)
}

func TestClient_FetchFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not a feed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html><body>nope</body></html>"))
			},
		},
		{
			name: "slow upstream",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(2 * time.Second):
				case <-r.Context().Done():
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(Config{Timeout: 100 * time.Millisecond})
			items, err := client.Fetch(context.Background(), server.URL)
			assert.Error(t, err)
			assert.Nil(t, items)
		})
	}
}

func TestClient_FetchEmptyURL(t *testing.T) {
	_, err := NewClient(Config{}).Fetch(context.Background(), "")
	assert.Error(t, err)
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"12", intPtr(12)},
		{" 7 ", intPtr(7)},
		{"42abc", intPtr(42)},
		{"abc", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, leadingInt(tt.in))
		})
	}
}

func intPtr(n int) *int { return &n }
