package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert event")
	ErrFailedToCount  = errors.New("failed to count events")
	ErrFailedToList   = errors.New("failed to list events")
)
