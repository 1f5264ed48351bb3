// Package sessions keeps per-browser state between requests: who is signed
// in and which advanced filters were last applied to the task listing.
package sessions

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"task-tracker.com/task-tracker/internal/filters"
)

type Session struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId,omitempty"`
	UserName  string         `json:"userName,omitempty"`
	UserEmail string         `json:"userEmail,omitempty"`
	IsAdmin   bool           `json:"isAdmin,omitempty"`
	Filters   *filters.State `json:"taskFilters,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`

	dirty     bool
	destroyed bool
}

func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// SaveFilterState replaces the remembered filters with the whitelisted
// fields of params.
func (s *Session) SaveFilterState(params url.Values) {
	state := filters.StateFromValues(params)
	s.Filters = &state
	s.dirty = true
}

// FilterState returns the remembered filters, or the empty state when none
// were saved.
func (s *Session) FilterState() filters.State {
	if s.Filters == nil {
		return filters.DefaultState()
	}
	return *s.Filters
}

func (s *Session) ClearFilterState() {
	if s.Filters == nil {
		return
	}
	s.Filters = nil
	s.dirty = true
}

type Identity struct {
	UserID  string
	Name    string
	Email   string
	IsAdmin bool
}

// SignIn binds the session to a user under a fresh id so a session id seen
// before login is never authenticated.
func (s *Session) SignIn(id Identity) (previousID string) {
	previousID = s.ID
	s.ID = uuid.NewString()
	s.UserID = id.UserID
	s.UserName = id.Name
	s.UserEmail = id.Email
	s.IsAdmin = id.IsAdmin
	s.dirty = true
	return previousID
}

// SignOut marks the session for deletion at the end of the request.
func (s *Session) SignOut() {
	s.destroyed = true
}

func (s *Session) Authenticated() bool {
	return s.UserID != "" && !s.destroyed
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool {
	return s.dirty
}

func (s *Session) Destroyed() bool {
	return s.destroyed
}

// MarkClean is called by stores after a successful save.
func (s *Session) MarkClean() {
	s.dirty = false
}
