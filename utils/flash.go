package utils

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash categories, matching the alert styles of the templates.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

func readFlashes(c *gin.Context) []Flash {
	if pending, ok := c.Get(flashCookie); ok {
		return pending.([]Flash)
	}
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil
	}
	return flashes
}

func writeFlashes(c *gin.Context, flashes []Flash) {
	c.Set(flashCookie, flashes)
	c.SetSameSite(http.SameSiteLaxMode)
	if len(flashes) == 0 {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
		return
	}
	data, _ := json.Marshal(flashes)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(data), 0, "/", "", false, true)
}

// AddFlash queues a message for the next rendered page.
func AddFlash(c *gin.Context, category, message string) {
	writeFlashes(c, append(readFlashes(c), Flash{Category: category, Message: message}))
}

// PopFlashes returns the queued messages and clears them.
func PopFlashes(c *gin.Context) []Flash {
	flashes := readFlashes(c)
	if len(flashes) > 0 {
		writeFlashes(c, nil)
	}
	return flashes
}
