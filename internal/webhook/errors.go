package webhook

import "errors"

var (
	ErrNoPayload   = errors.New("No payload received")
	ErrInvalidJSON = errors.New("Invalid JSON payload")
)
