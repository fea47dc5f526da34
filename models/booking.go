package models

import "time"

// BookedInterval is an existing commitment on the cleaning calendar.
// Start is inclusive, End is exclusive.
type BookedInterval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Booking is a persisted calendar entry created by the booking flow.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Address        string    `bson:"address" json:"address"`
	EstimatedHours float64   `bson:"estimated_hours" json:"estimatedHours"`
	Start          time.Time `bson:"start" json:"startTime"`
	End            time.Time `bson:"end" json:"endTime"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// Interval returns the calendar interval occupied by the booking.
func (b Booking) Interval() BookedInterval {
	return BookedInterval{Start: b.Start, End: b.End}
}

// BookingRequest is the validated input of the booking flow.
type BookingRequest struct {
	Name               string
	Email              string
	Address            string
	EstimatedHours     float64
	PreferredStartDate time.Time
}

// BookingRequestInput is the JSON body accepted by the book endpoint.
// Exactly one of PreferredStartDate and StartTime is used; StartTime wins when both are present.
type BookingRequestInput struct {
	Name               string  `json:"name" binding:"required"`
	Email              string  `json:"email" binding:"required,email"`
	Address            string  `json:"address" binding:"required"`
	EstimatedHours     float64 `json:"estimatedHours" binding:"required,gt=0"`
	PreferredStartDate string  `json:"preferredStartDate"`
	StartTime          string  `json:"startTime"`
}

const BookingStatusBooked = "booked"
