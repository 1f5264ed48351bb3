package sessions

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("session not found")

// Store persists sessions between requests. Concurrent saves of the same
// session are resolved last-write-wins.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
