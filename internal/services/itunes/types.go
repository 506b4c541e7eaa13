package itunes

import "time"

// searchResponse is the envelope returned by /search and /lookup
type searchResponse struct {
	ResultCount int            `json:"resultCount"`
	Results     []searchResult `json:"results"`
}

// searchResult mirrors a single podcast record from the directory
type searchResult struct {
	WrapperType string `json:"wrapperType"`
	Kind        string `json:"kind"`

	CollectionID           int64    `json:"collectionId"`
	TrackID                int64    `json:"trackId"`
	ArtistName             string   `json:"artistName"`
	CollectionName         string   `json:"collectionName"`
	TrackName              string   `json:"trackName"`
	TrackViewURL           string   `json:"trackViewUrl"`
	FeedURL                string   `json:"feedUrl"`
	ArtworkURL30           string   `json:"artworkUrl30"`
	ArtworkURL60           string   `json:"artworkUrl60"`
	ArtworkURL100          string   `json:"artworkUrl100"`
	ArtworkURL600          string   `json:"artworkUrl600"`
	CollectionPrice        *float64 `json:"collectionPrice"`
	TrackPrice             *float64 `json:"trackPrice"`
	ReleaseDate            string   `json:"releaseDate"`
	CollectionExplicitness string   `json:"collectionExplicitness"`
	TrackExplicitness      string   `json:"trackExplicitness"`
	TrackCount             *int     `json:"trackCount"`
	Country                string   `json:"country"`
	Currency               string   `json:"currency"`
	PrimaryGenreName       string   `json:"primaryGenreName"`
	ContentAdvisoryRating  string   `json:"contentAdvisoryRating"`
	Genres                 []string `json:"genres"`
}

// Entry is one podcast returned by the directory, keyed by TrackID
type Entry struct {
	TrackID                int64      `json:"trackId"`
	TrackName              string     `json:"trackName"`
	ArtistName             string     `json:"artistName"`
	CollectionName         string     `json:"collectionName,omitempty"`
	TrackViewURL           string     `json:"trackViewUrl"`
	ArtworkURL30           string     `json:"artworkUrl30,omitempty"`
	ArtworkURL60           string     `json:"artworkUrl60,omitempty"`
	ArtworkURL100          string     `json:"artworkUrl100,omitempty"`
	ArtworkURL600          string     `json:"artworkUrl600,omitempty"`
	CollectionPrice        *float64   `json:"collectionPrice,omitempty"`
	TrackPrice             *float64   `json:"trackPrice,omitempty"`
	ReleaseDate            *time.Time `json:"releaseDate,omitempty"`
	CollectionExplicitness string     `json:"collectionExplicitness,omitempty"`
	TrackExplicitness      string     `json:"trackExplicitness,omitempty"`
	TrackCount             *int       `json:"trackCount,omitempty"`
	Country                string     `json:"country"`
	Currency               string     `json:"currency,omitempty"`
	PrimaryGenreName       string     `json:"primaryGenreName,omitempty"`
	ContentAdvisoryRating  string     `json:"contentAdvisoryRating,omitempty"`
	FeedURL                string     `json:"feedUrl,omitempty"`
	Genres                 []string   `json:"genres"`
}

// SearchResults represents search results from iTunes
type SearchResults struct {
	Query      string   `json:"query"`
	TotalCount int      `json:"totalCount"`
	Entries    []*Entry `json:"entries"`
}

// SearchOptions represents options for searching
type SearchOptions struct {
	Media   string // podcast, music, etc.
	Entity  string // podcast, podcastEpisode
	Country string // US, SA, etc.
	Limit   int    // capped at MaxLimit
}
