package specgrid

import "errors"

var (
	// ErrUnknownLabel indicates a label that does not belong to the cell's category.
	ErrUnknownLabel = errors.New("specgrid: label not valid for category")

	// ErrNonFinite indicates a NaN or ±Inf value stored in the grid.
	ErrNonFinite = errors.New("specgrid: NaN or Inf value")

	// ErrBadKey indicates an unparsable category, side or label key.
	ErrBadKey = errors.New("specgrid: malformed key")
)
