package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrOwnerNotFound is returned when no owner matches the given email or id.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrListingNotFound is returned when a listing does not exist.
	ErrListingNotFound = errors.New("listing not found")
	// ErrEmailRegistered is returned when registering an email that is already taken.
	ErrEmailRegistered = errors.New("email already registered")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingFields is returned when a required listing field is absent.
	ErrMissingFields = errors.New("all fields are required")
	// ErrNotListingOwner is returned when the submitted email is not the listing owner's.
	ErrNotListingOwner = errors.New("unauthorized to modify this property")
	// ErrEmptyMessage is returned when a contact message has no text.
	ErrEmptyMessage = errors.New("message text is required")
	// ErrTooManyImages is returned when an upload exceeds the per-request file ceiling.
	ErrTooManyImages = errors.New("too many images")
	// ErrUnsupportedImage is returned when an uploaded file is not an allowed image format.
	ErrUnsupportedImage = errors.New("unsupported image format")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate email and bad
// credentials map to 400, matching the contract existing clients depend on.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrOwnerNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "OWNER_NOT_FOUND")
	case ErrListingNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "LISTING_NOT_FOUND")
	case ErrEmailRegistered:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_REGISTERED")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case ErrMissingFields:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case ErrNotListingOwner:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_LISTING_OWNER")
	case ErrEmptyMessage:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_MESSAGE")
	case ErrTooManyImages:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TOO_MANY_IMAGES")
	case ErrUnsupportedImage:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNSUPPORTED_IMAGE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
