// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is used for request tracking when a handler returns no error.
	CategoryNoError Category = iota
	// CategoryDataError The client sends some invalid data in the request,
	// for example, missing or incorrect content in the payload or parameters.
	// Could also represent a generic client error.
	CategoryDataError
	// CategoryUnauthorized The client is not authorized to access the requested resource
	CategoryUnauthorized
	// CategoryForbidden The client is not authenticated to access the requested resource
	CategoryForbidden
	// CategoryResourceNotFound The client is attempting to access a resource that does not exist
	CategoryResourceNotFound
	// CategoryNotSupported The requested functionality is not supported
	CategoryNotSupported
	// CategoryRateLimited The client exceeded its request budget for the current window
	CategoryRateLimited
	// CategoryDependencyFailure The chain (RPC node or contract) failed the request
	CategoryDependencyFailure
	// CategoryCacheUnavailable The key-value store backing caches, nonces and counters is unreachable
	CategoryCacheUnavailable
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
	// CategoryRequestTimeout The request did not complete within the server deadline
	CategoryRequestTimeout
)

// Machine readable codes written into the response envelope.
const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidSignature  = "INVALID_SIGNATURE"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeNotSupported      = "NOT_SUPPORTED"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeBlockchainError   = "BLOCKCHAIN_ERROR"
	CodeCacheUnavailable  = "CACHE_UNAVAILABLE"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeRequestTimeout    = "REQUEST_TIMEOUT"
)

func (c Category) String() string {
	switch c {
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryForbidden:
		return "CategoryForbidden"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryNotSupported:
		return "CategoryNotSupported"
	case CategoryRateLimited:
		return "CategoryRateLimited"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryCacheUnavailable:
		return "CategoryCacheUnavailable"
	case CategoryRequestTimeout:
		return "CategoryRequestTimeout"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	Code     string
	Message  string
	Details  map[string]any
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is implements the custom condition to check an error is equal to a service error
func (err ServiceError) Is(target error) bool {
	return err.Message == target.Error()
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// IsInternalError checks that provided error is a Internal system error
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && (svcErr.Category < CategoryDependencyFailure) {
		return false
	}
	return true
}

// GeneralError returns a general service error
// this error mesage sent to the user is "Internal Server Error"
// the error passed is logged in the logger
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// BadRequestError returns an error with category DataError
// the error message provided is returned to the user
// the error object provided is logged in logger
func BadRequestError(err error, message string) error {
	if err == nil {
		err = errors.New("bad request:" + message)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Message:  message,
		Err:      err,
	}
}

// ValidationError is a BadRequestError carrying per-field details.
func ValidationError(err error, message string, details map[string]any) error {
	if err == nil {
		err = errors.New("validation failed:" + message)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Message:  message,
		Details:  details,
		Err:      err,
	}
}

// ForbiddenError returns a an error with category CategoryForbidden
// the error message provided is returned to the user
// the error object provided is logged in logger
func ForbiddenError(err error, message string) error {
	if err == nil {
		err = errors.New("request forbidden")
	}
	return &ServiceError{
		Category: CategoryForbidden,
		Message:  message,
		Err:      err,
	}
}

// UnAuthorizedError returns an error with category CategoryUnauthorized
// the error message provided is returned to the user
// the error object provided is logged in logger
func UnAuthorizedError(err error, message string) error {
	if err == nil {
		err = errors.New("unauthorized")
	}
	return &ServiceError{
		Category: CategoryUnauthorized,
		Message:  message,
		Err:      err,
	}
}

// InvalidSignatureError is an unauthorized error for failed wallet signature checks.
func InvalidSignatureError(err error, message string) error {
	if err == nil {
		err = errors.New("invalid signature")
	}
	return &ServiceError{
		Category: CategoryUnauthorized,
		Code:     CodeInvalidSignature,
		Message:  message,
		Err:      err,
	}
}

// RateLimitError returns an error with category CategoryRateLimited
func RateLimitError(message string) error {
	return &ServiceError{
		Category: CategoryRateLimited,
		Message:  message,
		Err:      errors.New("rate limit exceeded"),
	}
}

// BlockchainError returns an error with category CategoryDependencyFailure.
// The message is returned to the user, err is only logged.
func BlockchainError(err error, message string) error {
	if err == nil {
		err = errors.New("blockchain error:" + message)
	}
	return &ServiceError{
		Category: CategoryDependencyFailure,
		Message:  message,
		Err:      err,
	}
}

// CacheUnavailableError returns an error with category CategoryCacheUnavailable
func CacheUnavailableError(err error) error {
	if err == nil {
		err = errors.New("cache unavailable")
	}
	return &ServiceError{
		Category: CategoryCacheUnavailable,
		Message:  "Cache service unavailable",
		Err:      err,
	}
}

// RequestTimeoutError returns an error with category CategoryRequestTimeout
func RequestTimeoutError(err error) error {
	if err == nil {
		err = errors.New("request timed out")
	}
	return &ServiceError{
		Category: CategoryRequestTimeout,
		Message:  "Request timed out",
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryNotSupported:
		return http.StatusMethodNotAllowed
	case CategoryRateLimited:
		return http.StatusTooManyRequests
	case CategoryDependencyFailure, CategoryCacheUnavailable:
		return http.StatusServiceUnavailable
	case CategoryGeneralError:
		return http.StatusInternalServerError
	case CategoryRequestTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the envelope code, falling back to the category default.
func (err ServiceError) ErrorCode() string {
	if err.Code != "" {
		return err.Code
	}
	switch err.Category {
	case CategoryDataError:
		return CodeBadRequest
	case CategoryUnauthorized:
		return CodeUnauthorized
	case CategoryForbidden:
		return CodeForbidden
	case CategoryResourceNotFound:
		return CodeNotFound
	case CategoryNotSupported:
		return CodeNotSupported
	case CategoryRateLimited:
		return CodeRateLimitExceeded
	case CategoryDependencyFailure:
		return CodeBlockchainError
	case CategoryCacheUnavailable:
		return CodeCacheUnavailable
	case CategoryRequestTimeout:
		return CodeRequestTimeout
	default:
		return CodeInternalError
	}
}
