package middleware

import (
	"github.com/gin-gonic/gin"
)

// HandleError aborts the request with a json error body. Details are
// attached when present, for binding failures and similar.
func HandleError(c *gin.Context, statusCode int, message string, details interface{}) {
	body := gin.H{
		"error": message,
	}

	if details != nil {
		if err, ok := details.(error); ok {
			details = err.Error()
		}

		body["details"] = details
	}

	c.AbortWithStatusJSON(statusCode, body)
}
