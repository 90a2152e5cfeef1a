package apperrors

import "errors"

// ErrNotFound indicates that a requested entry could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrStorageUnavailable indicates the database could not be reached or initialized.
var ErrStorageUnavailable = errors.New("storage unavailable")
