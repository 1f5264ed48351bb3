package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/sessions"
)

const sessionKey = "session"

type SessionConfig struct {
	Store      sessions.Store
	CookieName string
	Secure     bool
	TTL        time.Duration
	Logger     *slog.Logger
}

// Session loads the request's session from its cookie, or starts a new one,
// and persists it right before the response header is written. Sessions
// nobody changed are not written back.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			var s *sessions.Session
			if cookie, err := c.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
				loaded, err := cfg.Store.Load(ctx, cookie.Value)
				switch {
				case err == nil:
					s = loaded
				case !errors.Is(err, sessions.ErrNotFound):
					cfg.Logger.ErrorContext(ctx, "failed to load session", slog.Any("error", err))
				}
			}
			if s == nil {
				s = sessions.New()
			}
			loadedID := s.ID

			c.Set(sessionKey, s)
			c.Response().Before(func() {
				persistSession(c, cfg, s, loadedID)
			})

			return next(c)
		}
	}
}

func persistSession(c echo.Context, cfg SessionConfig, s *sessions.Session, loadedID string) {
	ctx := c.Request().Context()

	if s.Destroyed() {
		for _, id := range []string{loadedID, s.ID} {
			if err := cfg.Store.Delete(ctx, id); err != nil {
				cfg.Logger.ErrorContext(ctx, "failed to delete session", slog.Any("error", err))
			}
		}
		c.SetCookie(sessionCookie(cfg, "", -1))
		return
	}

	if !s.Dirty() {
		return
	}

	if s.ID != loadedID {
		if err := cfg.Store.Delete(ctx, loadedID); err != nil {
			cfg.Logger.ErrorContext(ctx, "failed to delete rotated session", slog.Any("error", err))
		}
	}
	if err := cfg.Store.Save(ctx, s); err != nil {
		cfg.Logger.ErrorContext(ctx, "failed to save session", slog.Any("error", err))
		return
	}
	c.SetCookie(sessionCookie(cfg, s.ID, int(cfg.TTL/time.Second)))
}

func sessionCookie(cfg SessionConfig, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// CurrentSession returns the session Session attached to c.
func CurrentSession(c echo.Context) *sessions.Session {
	s, _ := c.Get(sessionKey).(*sessions.Session)
	return s
}
