package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// intQuery parses an integer query parameter with a default and inclusive
// bounds. A violation writes a 422 response and reports !ok; handlers must
// return immediately in that case.
func intQuery(c *gin.Context, name string, fallback, min, max int) (value int, ok bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < min || parsed > max {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": name + " must be an integer between " +
				strconv.Itoa(min) + " and " + strconv.Itoa(max),
		})
		return 0, false
	}
	return parsed, true
}

// internalError renders the blanket 500 shape: the raw error string plus the
// request path.
func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
		"path":  c.Request.URL.Path,
	})
}
