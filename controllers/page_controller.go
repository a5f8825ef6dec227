package controllers

import (
	"net/http"

	"github.com/mikespe/calcalc2.0/utils"

	"github.com/gin-gonic/gin"
)

// Page serves the single-page app shell. Which pages are reachable is
// decided by the route gate middleware, not here.
func Page(c *gin.Context) {
	c.File("web/index.html")
}

// Home routes the bare domain by token presence only.
func Home(c *gin.Context) {
	if cookie, err := c.Cookie(utils.AuthCookieName); err == nil && cookie != "" {
		c.Redirect(http.StatusFound, "/calendar")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
