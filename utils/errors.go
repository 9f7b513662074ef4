package utils

import "errors"

var (
	ErrEmptyURL      = errors.New("URL cannot be empty")
	ErrInvalidURL    = errors.New("invalid URL format")
	ErrInvalidScheme = errors.New("URL scheme must be http or https")
	ErrEmptyHost     = errors.New("URL host cannot be empty")
)

var (
	ErrSlugTooShort      = errors.New("custom code is too short")
	ErrSlugTooLong       = errors.New("custom code is too long")
	ErrSlugInvalidStart  = errors.New("custom code must start with a letter or digit")
	ErrSlugInvalidEnd    = errors.New("custom code must end with a letter or digit")
	ErrSlugInvalidFormat = errors.New("custom code may only contain letters, digits, hyphens, and underscores")
	ErrSlugPureNumber    = errors.New("custom code cannot be purely numeric")
	ErrSlugReserved      = errors.New("custom code is a reserved word")
)
