package itunes

import (
	"strings"
	"time"
)

// toEntry converts a raw directory record into an Entry
func toEntry(result *searchResult) *Entry {
	if result == nil {
		return nil
	}

	trackID := result.TrackID
	if trackID == 0 {
		trackID = result.CollectionID
	}

	genres := result.Genres
	if genres == nil {
		genres = []string{}
	}

	return &Entry{
		TrackID:                trackID,
		TrackName:              result.TrackName,
		ArtistName:             result.ArtistName,
		CollectionName:         result.CollectionName,
		TrackViewURL:           result.TrackViewURL,
		ArtworkURL30:           result.ArtworkURL30,
		ArtworkURL60:           result.ArtworkURL60,
		ArtworkURL100:          result.ArtworkURL100,
		ArtworkURL600:          result.ArtworkURL600,
		CollectionPrice:        result.CollectionPrice,
		TrackPrice:             result.TrackPrice,
		ReleaseDate:            parseReleaseDate(result.ReleaseDate),
		CollectionExplicitness: result.CollectionExplicitness,
		TrackExplicitness:      result.TrackExplicitness,
		TrackCount:             result.TrackCount,
		Country:                result.Country,
		Currency:               result.Currency,
		PrimaryGenreName:       result.PrimaryGenreName,
		ContentAdvisoryRating:  result.ContentAdvisoryRating,
		FeedURL:                strings.TrimSpace(result.FeedURL),
		Genres:                 genres,
	}
}

func toSearchResults(query string, resp *searchResponse) *SearchResults {
	results := &SearchResults{
		Query:   query,
		Entries: []*Entry{},
	}
	if resp == nil {
		return results
	}

	results.TotalCount = resp.ResultCount
	results.Entries = make([]*Entry, 0, len(resp.Results))
	for i := range resp.Results {
		// entity=podcast can still return artist wrappers for some terms
		if resp.Results[i].WrapperType != "" && resp.Results[i].WrapperType != "track" {
			continue
		}
		results.Entries = append(results.Entries, toEntry(&resp.Results[i]))
	}

	return results
}

// parseReleaseDate accepts RFC3339 with or without seconds; anything else is dropped
func parseReleaseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
