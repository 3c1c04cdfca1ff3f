package controller

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookie = "codefolio_flash"

// Flash is a one-shot notice shown on the next rendered page. Categories
// mirror the usual alert levels: success, info, warning, danger.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// SetFlash stores a notice in a short-lived cookie, to be consumed by the
// next render after a redirect.
func SetFlash(c *gin.Context, category, message string) {
	payload, err := json.Marshal(Flash{Category: category, Message: message})
	if err != nil {
		return
	}
	value := base64.RawURLEncoding.EncodeToString(payload)
	c.SetCookie(flashCookie, value, 60, "/", "", false, true)
}

// PopFlash reads and clears the pending notice, if any.
func PopFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	payload, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var flash Flash
	if err := json.Unmarshal(payload, &flash); err != nil {
		return nil
	}
	return &flash
}

// redirect is a SeeOther redirect, the pattern every write handler follows.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
