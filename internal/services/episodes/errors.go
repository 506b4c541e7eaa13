package episodes

import "fmt"

// FetchError reports a feed that could not be retrieved or parsed
type FetchError struct {
	PodcastID uint
	FeedURL   string
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching feed for podcast %d (%s): %v", e.PodcastID, e.FeedURL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
