package favorites

import "errors"

var (
	ErrAuthRequired = errors.New("auth_required")
	ErrNotFound     = errors.New("not_found")
)
