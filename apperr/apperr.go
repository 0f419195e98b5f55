package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error carries an HTTP status code alongside a user-facing message.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given status code and message.
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Wrap attaches a cause to a sentinel error without mutating it.
func Wrap(base *Error, err error) *Error {
	return &Error{Code: base.Code, Message: base.Message, Err: err}
}

// Respond writes err as the standard JSON error body. Unrecognized errors
// become a 500 without leaking their message.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

var (
	ErrBadRequest     = New(http.StatusBadRequest, "bad request", nil)
	ErrUnauthorized   = New(http.StatusUnauthorized, "unauthorized", nil)
	ErrForbidden      = New(http.StatusForbidden, "forbidden", nil)
	ErrNotFound       = New(http.StatusNotFound, "not found", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "internal server error", nil)

	ErrInvalidCredentials = New(http.StatusUnauthorized, "invalid email or password", nil)
	ErrInvalidToken       = New(http.StatusUnauthorized, "invalid or expired token", nil)

	ErrEmptyCart      = New(http.StatusBadRequest, "cannot create order from an empty cart", nil)
	ErrCartNotFound   = New(http.StatusNotFound, "cart not found", nil)
	ErrDuplicateEmail = New(http.StatusConflict, "user with this email already exists", nil)
)
