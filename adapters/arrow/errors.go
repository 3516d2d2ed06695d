package arrowadapter

import "errors"

// Common errors returned by the arrow adapter.
var (
	// ErrNoTable is returned when a required Arrow table is nil.
	ErrNoTable = errors.New("arrow table is nil")

	// ErrEmptyData is returned when there are no rows to build a table from.
	ErrEmptyData = errors.New("data is empty")
)
