package activity

import "errors"

var (
	ErrInvalidActivityID = errors.New("activity id is not a well-formed composite key")
	ErrNotFound          = errors.New("activity record not found")
)
