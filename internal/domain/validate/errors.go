package validate

import "errors"

var (
	ErrFormat = errors.New("invalid format")
	ErrRange  = errors.New("value out of range")
	ErrEmpty  = errors.New("value is required")
)
