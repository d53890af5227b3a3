package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeInternal       = "INTERNAL_ERROR"
	ErrCodeDatabaseError  = "DATABASE_ERROR"
	ErrCodeDuplicateEntry = "DUPLICATE_ENTRY"

	// Configuration and pricing failures. These are recoverable: the
	// offending mutation is rejected and prior state is retained.
	ErrCodeInvalidDimensions       = "INVALID_DIMENSIONS"
	ErrCodeMissingTierSelection    = "MISSING_TIER_SELECTION"
	ErrCodeUnknownAxis             = "UNKNOWN_AXIS"
	ErrCodeUnknownOption           = "UNKNOWN_OPTION"
	ErrCodeInvalidQuantity         = "INVALID_QUANTITY"
	ErrCodeIncompleteConfiguration = "INCOMPLETE_CONFIGURATION"
	ErrCodeUploadRejected          = "UPLOAD_REJECTED"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func DuplicateEntryError(message string) *AppError {
	return NewAppError(ErrCodeDuplicateEntry, message, http.StatusConflict)
}

func InvalidDimensionsError(message string) *AppError {
	return NewAppError(ErrCodeInvalidDimensions, message, http.StatusBadRequest)
}

func MissingTierSelectionError(message string) *AppError {
	return NewAppError(ErrCodeMissingTierSelection, message, http.StatusBadRequest)
}

func UnknownAxisError(axisType string) *AppError {
	return NewAppError(ErrCodeUnknownAxis, fmt.Sprintf("Unknown customization axis '%s'", axisType), http.StatusBadRequest)
}

func UnknownOptionError(axisType, value string) *AppError {
	return NewAppError(ErrCodeUnknownOption, fmt.Sprintf("Unknown option '%s' for axis '%s'", value, axisType), http.StatusBadRequest)
}

func InvalidQuantityError(message string) *AppError {
	return NewAppError(ErrCodeInvalidQuantity, message, http.StatusBadRequest)
}

func IncompleteConfigurationError(message string) *AppError {
	return NewAppError(ErrCodeIncompleteConfiguration, message, http.StatusBadRequest)
}

func UploadRejectedError(message string) *AppError {
	return NewAppError(ErrCodeUploadRejected, message, http.StatusUnprocessableEntity)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code == code
	}

	return false
}
