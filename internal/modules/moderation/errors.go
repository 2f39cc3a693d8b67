package moderation

import "errors"

var (
	ErrValidation = errors.New("validation_failed")
	ErrNotFound   = errors.New("not_found")
	ErrConflict   = errors.New("conflict")
)
