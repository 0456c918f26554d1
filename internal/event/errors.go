package event

import "errors"

var (
	ErrInvalidPage    = errors.New("page must be a positive integer")
	ErrPageOutOfRange = errors.New("page is out of range")
	ErrInvalidAction  = errors.New("event action must be PUSH, PULL_REQUEST or MERGE")
)
