package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go-blog-api/models"

	"github.com/gin-gonic/gin"
)

// HTTPHelper shapes error responses. Success payloads are written directly by
// the handlers since the API returns plain resources.
type HTTPHelper struct{}

// SendValidationError returns the field-keyed messages verbatim with a 400.
func (u *HTTPHelper) SendValidationError(c *gin.Context, fieldErrors map[string][]string) {
	c.JSON(http.StatusBadRequest, gin.H{"fieldErrors": fieldErrors})
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// SendBindingError shapes a JSON decode failure. A type mismatch is a
// client-fixable field error, so it surfaces under the offending field just
// like the validator's output; anything else is a malformed body.
func (u *HTTPHelper) SendBindingError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		u.SendValidationError(c, map[string][]string{
			typeErr.Field: {fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String())},
		})
		return
	}
	u.SendBadRequest(c, err.Error())
}

// SendError maps the service error taxonomy onto HTTP statuses. Unknown
// errors are store/transaction failures and surface as a 500 with the
// message kept for operator diagnosis.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthorized), errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	case errors.Is(err, models.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
