package failure

import (
	"errors"
	"net/http"
)

// Failure carries an HTTP status code alongside the message so handlers can
// map service errors straight onto responses.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam        = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
	InvalidLimitParam       = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps err as a 400 Failure. Returns nil when err is nil.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a 400 Failure with the given message.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a 401 Failure with the given message.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError wraps err as a 500 Failure. Returns nil when err is nil.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a 501 Failure naming the missing method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a 404 Failure with the given message.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// Conflict returns a 409 Failure, used for state-transition and overlap
// violations.
func Conflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
	}
}

// Forbidden returns a 403 Failure with the given message.
func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode extracts the status code from an error, defaulting to 500 for
// errors that are not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
