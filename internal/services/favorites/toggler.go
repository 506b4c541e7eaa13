package favorites

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/killallgit/podcast-catalog/internal/database"
	apperrors "github.com/killallgit/podcast-catalog/pkg/errors"
)

// DefaultMaxRetries bounds how many lost compare-and-swap races a toggle tolerates
const DefaultMaxRetries = 5

// FlagStore exposes a boolean favorite flag with an atomic conditional write.
// Both methods return database.ErrNotFound for unknown ids.
type FlagStore interface {
	GetFavorite(ctx context.Context, id uint) (bool, error)
	// CompareAndSetFavorite writes next only while the stored value equals expected.
	// It reports false when the row has moved on.
	CompareAndSetFavorite(ctx context.Context, id uint, expected, next bool) (bool, error)
}

// Toggler flips favorite flags with optimistic retries
type Toggler struct {
	maxRetries int
}

// NewToggler creates a Toggler. Non-positive maxRetries uses DefaultMaxRetries.
func NewToggler(maxRetries int) *Toggler {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Toggler{maxRetries: maxRetries}
}

// Toggle inverts the flag for id and returns the value it wrote.
// resource names the entity in errors, e.g. "podcast".
func (t *Toggler) Toggle(ctx context.Context, store FlagStore, resource string, id uint) (bool, error) {
	for attempt := 1; attempt <= t.maxRetries; attempt++ {
		current, err := store.GetFavorite(ctx, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return false, apperrors.NotFound(resource, id)
			}
			return false, apperrors.DatabaseError("read favorite", err)
		}

		swapped, err := store.CompareAndSetFavorite(ctx, id, current, !current)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return false, apperrors.NotFound(resource, id)
			}
			return false, apperrors.DatabaseError("write favorite", err)
		}
		if swapped {
			return !current, nil
		}

		log.WithFields(log.Fields{
			"resource": resource,
			"id":       id,
			"attempt":  attempt,
		}).Debug("favorite changed concurrently, retrying")

		if err := ctx.Err(); err != nil {
			return false, err
		}
	}

	return false, apperrors.Conflict(resource, id,
		fmt.Sprintf("favorite flag changed concurrently %d times", t.maxRetries))
}
