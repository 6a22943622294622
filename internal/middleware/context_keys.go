package middleware

import "github.com/gin-gonic/gin"

// subjectKey is the key used to store the authenticated subject in the
// request context. Using a custom type prevents collisions.
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated token subject from the
// Gin context. It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	subjectVal := c.Request.Context().Value(subjectKey)
	if subjectVal == nil {
		return "", false
	}

	subject, ok := subjectVal.(string)
	if !ok {
		return "", false
	}

	return subject, true
}
