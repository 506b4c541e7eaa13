package feeds

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	log "github.com/sirupsen/logrus"
)

// Item is one feed entry reduced to the fields the catalog consumes
type Item struct {
	Title           string
	PublishedAt     *time.Time
	EnclosureURL    string
	EnclosureType   string
	EnclosureLength int64
	Duration        string
	Content         string
	Snippet         string
	Episode         *int
	Season          *int
	EpisodeType     string
	Explicit        bool
	Image           string
}

// Config holds configuration for the feed client
type Config struct {
	Timeout   time.Duration // Default: 15s
	UserAgent string
}

// Client fetches and parses RSS, Atom and JSON feeds
type Client struct {
	httpClient *http.Client
	config     Config
}

// NewClient creates a feed client
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "PodcastCatalog/1.0"
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
	}
}

// Fetch downloads the feed and returns its items in feed order.
// Any network or parse failure fails the whole call.
func (c *Client) Fetch(ctx context.Context, feedURL string) ([]Item, error) {
	if strings.TrimSpace(feedURL) == "" {
		return nil, errors.New("feed url cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.Client = c.httpClient
	parser.UserAgent = c.config.UserAgent

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) {
			return nil, fmt.Errorf("fetch feed %s: unexpected status %d", feedURL, httpErr.StatusCode)
		}
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		items = append(items, toItem(item))
	}

	log.WithFields(log.Fields{
		"feed":  feedURL,
		"items": len(items),
	}).Debug("feed fetched")

	return items, nil
}

func toItem(src *gofeed.Item) Item {
	item := Item{
		Title:       strings.TrimSpace(src.Title),
		PublishedAt: src.PublishedParsed,
		Content:     src.Content,
	}
	if item.PublishedAt == nil {
		item.PublishedAt = src.UpdatedParsed
	}
	if item.PublishedAt != nil {
		t := item.PublishedAt.UTC()
		item.PublishedAt = &t
	}
	if item.Content == "" {
		item.Content = src.Description
	}
	item.Snippet = plainText(item.Content)

	for _, enclosure := range src.Enclosures {
		if enclosure == nil || enclosure.URL == "" {
			continue
		}
		item.EnclosureURL = enclosure.URL
		item.EnclosureType = enclosure.Type
		item.EnclosureLength, _ = strconv.ParseInt(enclosure.Length, 10, 64)
		break
	}

	if src.Image != nil {
		item.Image = src.Image.URL
	}

	if ext := src.ITunesExt; ext != nil {
		item.Duration = ext.Duration
		item.Episode = leadingInt(ext.Episode)
		item.Season = leadingInt(ext.Season)
		item.EpisodeType = ext.EpisodeType
		item.Explicit = isExplicit(ext.Explicit)
		if ext.Image != "" {
			item.Image = ext.Image
		}
	}

	return item
}

// plainText strips markup and collapses whitespace
func plainText(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// leadingInt parses the integer prefix of s, so "12" and "12a" both yield 12
func leadingInt(s string) *int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (unicode.IsDigit(rune(s[end])) || (end == 0 && (s[0] == '-' || s[0] == '+'))) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

func isExplicit(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "explicit":
		return true
	default:
		return false
	}
}
