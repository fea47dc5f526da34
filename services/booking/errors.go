package booking

import "errors"

var (
	// ErrSlotUnavailable means the search horizon holds no free slot.
	ErrSlotUnavailable = errors.New("no available time slot could be found")
	// ErrSlotConflict means an explicitly requested slot overlaps an existing booking.
	ErrSlotConflict = errors.New("requested time slot is already booked")
	// ErrOutsideBusinessHours means an explicitly requested slot is outside the business hours window.
	ErrOutsideBusinessHours = errors.New("requested time slot is outside business hours")
	// ErrInvalidDuration means the estimated hours are not a positive number.
	ErrInvalidDuration = errors.New("estimated hours must be a positive number")
	// ErrInvalidDays means an availability window of zero or fewer days was requested.
	ErrInvalidDays = errors.New("availability window must cover at least one day")
)
