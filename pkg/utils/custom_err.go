package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password validation failed")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrTripNotFound       = errors.New("trip not found")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrTripTooLong        = errors.New("trip duration must not exceed 365 days")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidBudget      = errors.New("budget must be a non-negative number")
	ErrInvalidStatus      = errors.New("invalid trip status")
	ErrForbidden          = errors.New("forbidden")
)
