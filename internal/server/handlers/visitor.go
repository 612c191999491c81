package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// VisitorCookie carries the anonymous visitor id between requests.
	VisitorCookie = "olupo_visitor"
	visitorKey    = "visitor_id"
	visitorMaxAge = 30 * 24 * 60 * 60
)

// Visitor assigns every request a visitor id, reusing the cookie when it
// holds a valid one.
func Visitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookie)
		if err == nil {
			_, err = uuid.Parse(id)
		}
		if err != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, id, visitorMaxAge, "/", "", false, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

func visitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}
