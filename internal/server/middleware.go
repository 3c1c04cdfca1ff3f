package server

import (
	"errors"
	"log/slog"
	"net/http"

	"codefolio/internal/controller"
	"codefolio/internal/session"

	"github.com/gin-gonic/gin"
)

// identify resolves the session cookie, if any, into the request context.
// Public pages use it to adjust navigation; requireAuth builds on it.
func (s *Server) identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		rec, err := s.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrInvalidSession) {
				slog.Error("session lookup failed", "error", err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			// Stale or tampered cookie; proceed as a guest.
			c.Next()
			return
		}

		c.Set(controller.CtxUserID, rec.UserID)
		c.Set(controller.CtxUsername, rec.Username)
		c.Next()
	}
}

// requireAuth gates a route on a live session; a guest is flashed a warning
// and redirected to the login form, never faulted.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Protected pages must not be served from a cache.
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")

		if controller.SessionUserID(c) == 0 {
			controller.SetFlash(c, "warning", "You need to be logged in to access this page.")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
