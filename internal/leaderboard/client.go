// Package leaderboard connects the runner to a ranked score store.
//
// A Client submits a player's final score and fetches the ranked list. The
// local client talks to SQLite directly; the HTTP client talks to a server
// built from NewHandler. Reporter adapts any Client into the simulation's
// fire-and-forget score sink.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	// ErrInvalidName is returned for player names that fail validation.
	ErrInvalidName = errors.New("leaderboard: invalid player name")
	// ErrUnavailable is returned when the backing store cannot be reached.
	ErrUnavailable = errors.New("leaderboard: unavailable")
)

// Name length bounds, in characters.
const (
	MinNameLen = 3
	MaxNameLen = 30
)

// Entry is one ranked leaderboard row.
type Entry struct {
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Client is the leaderboard collaborator.
type Client interface {
	// SubmitScore records a final score. Only an improvement on the player's
	// best changes the stored ranking.
	SubmitScore(ctx context.Context, name string, score int) error
	// FetchTopScores returns up to limit entries, best first.
	FetchTopScores(ctx context.Context, limit int) ([]Entry, error)
}

// ValidateName trims raw and checks it is 3-30 characters of letters,
// digits, spaces, underscores, dots or dashes.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(name)
	if n < MinNameLen || n > MaxNameLen {
		return "", fmt.Errorf("%w: must be %d-%d characters", ErrInvalidName, MinNameLen, MaxNameLen)
	}
	for _, r := range name {
		if !validNameRune(r) {
			return "", fmt.Errorf("%w: character %q not allowed", ErrInvalidName, r)
		}
	}
	return name, nil
}

func validNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '_', r == '.', r == '-':
		return true
	}
	return false
}
