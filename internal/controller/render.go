package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys set by the session middleware for an authenticated request.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

// SessionUserID returns the authenticated user's id, or 0 for a guest.
func SessionUserID(c *gin.Context) int64 {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// SessionUsername returns the authenticated user's name, or "" for a guest.
func SessionUsername(c *gin.Context) string {
	v, ok := c.Get(CtxUsername)
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}

// render draws a page, injecting the pending flash notice and the current
// session identity every template's navigation needs.
func render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = PopFlash(c)
	}
	data["CurrentUser"] = SessionUsername(c)
	c.HTML(status, page, data)
}

// NotFoundPage renders the uniform not-found page. Used both for unknown
// routes and for requests naming an entity that does not resolve.
func NotFoundPage(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Page Not Found"})
	c.Abort()
}

// serverError handles an unexpected persistence fault: log it and fail the
// request. Nothing below the handler attempts recovery.
func serverError(c *gin.Context, err error) {
	slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
	c.AbortWithStatus(http.StatusInternalServerError)
}
