package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/outfitter/pkg/errors"
)

const (
	codeInternal       = "internal_error"
	codeUploadTooLarge = "upload_too_large"

	defaultMaxUploadBytes = 10 << 20
	multipartOverhead     = 64 << 10
)

// HTTPError is a transport-level failure raised by the handlers themselves, before any
// domain service was involved (bad ids, malformed bodies, rate limiting).
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error { return e.Err }

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func badRequest(message string, err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, message, err)
}

func errUploadTooLarge(err error) *HTTPError {
	return NewHTTPError(http.StatusRequestEntityTooLarge, codeUploadTooLarge, "upload exceeds size limit", err)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// asHTTPError resolves whatever a handler recorded. Domain errors expose only their
// message; anything unrecognised becomes an opaque 500.
func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return NewHTTPError(statusFor(appErr.Code), appErr.Code, appErr.Message, err)
	}
	return NewHTTPError(http.StatusInternalServerError, codeInternal, "something went wrong", err)
}

// statusFor maps domain error codes onto HTTP statuses.
func statusFor(code string) int {
	switch code {
	case apperrors.CodeInvalidInput:
		return http.StatusBadRequest
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeWeatherUnavailable, apperrors.CodeStorageError:
		return http.StatusBadGateway
	case apperrors.CodeInventoryUnavailable, apperrors.CodeCalendarUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func writeError(c *gin.Context, httpErr *HTTPError) {
	message := httpErr.Message
	if message == "" {
		message = httpErr.Error()
	}
	c.JSON(httpErr.Status, errorBody{Error: errorDetail{Code: httpErr.Code, Message: message}})
}
