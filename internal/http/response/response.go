package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
	// Per-item validation details, present only on malformed requests.
	Errors any `json:"errors,omitempty"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondMalformed reports a 400 with the per-field or per-item detail
// payload alongside the generic message.
func RespondMalformed(c *gin.Context, details any) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{
		Error: APIError{
			Message: "request malformed",
			Code:    "invalid_request",
		},
		Errors: details,
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
