package leaderboard

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

// LocalClient serves the leaderboard from a SQLite store.
type LocalClient struct {
	store *storage.Store
}

// NewLocalClient wraps an open store.
func NewLocalClient(store *storage.Store) *LocalClient {
	return &LocalClient{store: store}
}

// SubmitScore validates the name and keeps the player's best score.
func (c *LocalClient) SubmitScore(ctx context.Context, name string, score int) error {
	name, err := ValidateName(name)
	if err != nil {
		return err
	}
	if score < 0 {
		return fmt.Errorf("leaderboard: negative score %d", score)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.store.SubmitBest(name, score); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// FetchTopScores returns the deduplicated ranking.
func (c *LocalClient) FetchTopScores(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := c.store.TopScores(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = Entry{Name: r.Name, Score: r.Score, CreatedAt: r.CreatedAt}
	}
	return entries, nil
}
