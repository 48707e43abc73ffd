package service

import "errors"

// Sentinel errors handlers map onto HTTP statuses.
var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrInvalidID            = errors.New("invalid application id")
	ErrNoUpdateFields       = errors.New("no fields provided to update")
	ErrNoFileUploaded       = errors.New("no file uploaded")
	ErrFileNotInApplication = errors.New("file not found in the application")

	ErrDuplicateTransaction       = errors.New("transaction id already exists")
	ErrPaymentApplicationNotFound = errors.New("application not found for this payment")
	ErrValidation                 = errors.New("validation failed")
)
