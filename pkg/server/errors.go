package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/fineswap/vertag/pkg/errors"
	"github.com/fineswap/vertag/pkg/serializer"
)

// ErrorResponse is the structured error document written by all handlers.
type ErrorResponse struct {
	Code      apperrors.ErrorCode `json:"code"`
	Message   string              `json:"message"`
	Details   map[string]any      `json:"details,omitempty"`
	RequestID string              `json:"requestId"`
	Timestamp time.Time           `json:"timestamp"`
	Retryable bool                `json:"retryable"`
}

// WriteError writes a structured error response with the given status and
// code. The request ID comes from the request context when the middleware
// chain has stamped one.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code apperrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr classifies err by the structured error code in its
// chain and writes the matching HTTP status. Context carried by a
// structured error lands in the details map, caller-supplied details win
// on conflict, and the error text is recorded under "error".
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	message string, details map[string]any) {

	code := apperrors.CodeOf(err)

	merged := make(map[string]any, len(details)+2)
	var se *apperrors.StructuredError
	if errors.As(err, &se) {
		for k, v := range se.Context {
			merged[k] = v
		}
	}
	for k, v := range details {
		merged[k] = v
	}
	if err != nil {
		merged["error"] = err.Error()
	}

	WriteError(w, r, statusForCode(code), code, message, retryableForCode(code), merged)
}

// statusForCode maps structured error codes to HTTP status codes.
func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apperrors.ErrCodeUpstream:
		return http.StatusBadGateway
	case apperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// retryableForCode reports whether a client may retry the failed request
// without changing it.
func retryableForCode(code apperrors.ErrorCode) bool {
	switch code {
	case apperrors.ErrCodeTimeout,
		apperrors.ErrCodeRateLimitExceeded,
		apperrors.ErrCodeUpstream,
		apperrors.ErrCodeUnavailable,
		apperrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}
