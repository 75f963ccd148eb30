package video

import "errors"

var (
	ErrVideoNotFound    = errors.New("video not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrVideoURLRequired = errors.New("video URL is required")
	ErrInvalidPrice     = errors.New("price cannot be negative")
)
