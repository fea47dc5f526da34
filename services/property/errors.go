package property

import "errors"

var (
	// ErrPropertyNotFound means the data source has no record for the address.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrSquareFootageNotFound means a page was retrieved but held no plausible figure.
	ErrSquareFootageNotFound = errors.New("square footage not found on property page")
	// ErrLookupTimeout means the upstream source did not answer in time.
	ErrLookupTimeout = errors.New("property lookup timed out")
)
