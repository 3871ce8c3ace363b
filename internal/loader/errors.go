package loader

import "errors"

// ErrMissingColumn is returned when a required CSV column is absent from
// the header row.
var ErrMissingColumn = errors.New("loader: missing required column")
