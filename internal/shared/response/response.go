package response

import "github.com/gin-gonic/gin"

// The wire contract for this service is fixed: mutations return a
// {"message": ...} object, reads return the document or sequence as-is, and
// errors return a flat {code, message, details} object. Helpers here exist so
// handlers never assemble those shapes by hand.

// Message writes a {"message": ...} acknowledgement body.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// JSON writes data as the entire response body.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Error writes the error body shared by every failure response.
func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, gin.H{
		"code":    errorCode,
		"message": message,
		"details": details,
	})
}
