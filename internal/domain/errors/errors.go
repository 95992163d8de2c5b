// Package errors defines the failures use cases report to the transports.
// Each carries the HTTP status and stable code it is rendered with.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is an error a client is allowed to see.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is the common AppError. Two BaseErrors with the same code match
// under errors.Is, so a copy made by WithDetails still matches its sentinel.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches any BaseError with the same code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage adds context in front of the message. For a 400 the context is
// what the client receives as details.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	c := *e
	c.details = details

	return &c
}

var (
	ErrParentNotFound         = NewBaseError(http.StatusNotFound, "PARENT_NOT_FOUND", "parent not found", "")
	ErrEmailAlreadyRegistered = NewBaseError(http.StatusBadRequest, "EMAIL_ALREADY_REGISTERED", "email already registered", "")
	ErrInvalidCredentials     = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password", "")
	ErrPasswordHashFailed     = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "password processing failed", "")

	ErrTeenNotFound        = NewBaseError(http.StatusNotFound, "SUBJECT_NOT_FOUND", "teen not found", "")
	ErrDeviceAlreadyLinked = NewBaseError(http.StatusConflict, "DEVICE_ALREADY_LINKED", "device is already linked to a teen", "")

	ErrLocationNotFound = NewBaseError(http.StatusNotFound, "LOCATION_NOT_FOUND", "no location data found", "")
	ErrGeofenceNotFound = NewBaseError(http.StatusNotFound, "GEOFENCE_NOT_FOUND", "geofence not found", "")
	ErrAlertNotFound    = NewBaseError(http.StatusNotFound, "ALERT_NOT_FOUND", "alert not found", "")

	// ErrDeviceNotFound is a parent's push device, not the teen's phone.
	ErrDeviceNotFound = NewBaseError(http.StatusNotFound, "DEVICE_NOT_FOUND", "device not found", "")

	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed", "")

	// ErrStorageUnavailable marks a failed read or write against the backing store.
	ErrStorageUnavailable = NewBaseError(http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "storage unavailable", "")
	ErrInternalError      = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", "")
)

// StorageError carries a backing store failure. It matches
// ErrStorageUnavailable and unwraps to the driver error.
type StorageError struct {
	err     error
	details string
}

// NewStorageError wraps a repository failure. details names the operation
// and is logged, never sent.
func NewStorageError(err error, details string) AppError {
	return &StorageError{err: err, details: details}
}

func (e *StorageError) Error() string {
	if e.err == nil {
		return ErrStorageUnavailable.Message()
	}

	return ErrStorageUnavailable.Message() + ": " + e.err.Error()
}

func (e *StorageError) Unwrap() error { return e.err }

func (e *StorageError) Is(target error) bool { return target == ErrStorageUnavailable }

func (e *StorageError) HTTPCode() int     { return ErrStorageUnavailable.HTTPCode() }
func (e *StorageError) ErrorCode() string { return ErrStorageUnavailable.ErrorCode() }
func (e *StorageError) Message() string   { return ErrStorageUnavailable.Message() }
func (e *StorageError) Details() string   { return e.details }
