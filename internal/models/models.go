package models

import (
	"time"

	"gorm.io/datatypes"
)

// Podcast is a catalog entry reconciled from the iTunes Search API.
// TrackID is the external identifier and is unique across the catalog.
type Podcast struct {
	ID uint `json:"id" gorm:"primaryKey"`

	TrackID        int64  `json:"trackId" gorm:"uniqueIndex;not null"`
	TrackName      string `json:"trackName" gorm:"not null"`
	ArtistName     string `json:"artistName"`
	CollectionName string `json:"collectionName,omitempty"`
	TrackViewURL   string `json:"trackViewUrl" gorm:"column:track_view_url"`

	ArtworkURL30  string `json:"artworkUrl30,omitempty" gorm:"column:artwork_url30"`
	ArtworkURL60  string `json:"artworkUrl60,omitempty" gorm:"column:artwork_url60"`
	ArtworkURL100 string `json:"artworkUrl100,omitempty" gorm:"column:artwork_url100"`
	ArtworkURL600 string `json:"artworkUrl600,omitempty" gorm:"column:artwork_url600"`

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

	// Empty when the directory has no feed; such a podcast never gets episodes
	FeedURL string                      `json:"feedUrl,omitempty" gorm:"column:feed_url"`
	Genres  datatypes.JSONSlice[string] `json:"genres"`

	SearchKeyword string `json:"searchKeyword" gorm:"index"`
	IsFavorite    bool   `json:"isFavorite" gorm:"not null;default:false;index"`

	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`

	Episodes []Episode `json:"episodes,omitempty" gorm:"foreignKey:PodcastID;constraint:OnDelete:CASCADE"`
}

// HasFeed reports whether the podcast can produce episodes
func (p *Podcast) HasFeed() bool {
	return p.FeedURL != ""
}

// Episode is a feed item ingested for a podcast. Only IsFavorite changes after creation.
type Episode struct {
	ID uint `json:"id" gorm:"primaryKey"`

	PodcastID uint     `json:"podcastId" gorm:"not null;uniqueIndex:idx_episode_podcast_title,priority:1"`
	Podcast   *Podcast `json:"podcast,omitempty" gorm:"foreignKey:PodcastID"`

	Title   string    `json:"title" gorm:"not null;uniqueIndex:idx_episode_podcast_title,priority:2"`
	PubDate time.Time `json:"pubDate" gorm:"index"`

	AudioURL        string `json:"audioUrl,omitempty" gorm:"column:audio_url"`
	EnclosureType   string `json:"enclosureType,omitempty"`
	EnclosureLength int64  `json:"enclosureLength,omitempty"`
	Duration        string `json:"duration,omitempty"`

	Description      string `json:"description,omitempty" gorm:"type:text"`
	ShortDescription string `json:"shortDescription,omitempty" gorm:"type:text"`

	EpisodeNumber *int   `json:"episodeNumber,omitempty"`
	SeasonNumber  *int   `json:"seasonNumber,omitempty"`
	EpisodeType   string `json:"episodeType,omitempty"` // full, trailer, bonus
	Explicit      bool   `json:"explicit"`
	Image         string `json:"image,omitempty"`

	IsFavorite bool `json:"isFavorite" gorm:"not null;default:false;index"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// All returns every model managed by migrations, parents first
func All() []any {
	return []any{&Podcast{}, &Episode{}}
}
