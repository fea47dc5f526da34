package models

import (
	"errors"
	"time"
)

// SlotTimeLayout is the ISO-8601 layout used for slot timestamps (UTC, millisecond precision).
const SlotTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// SlotResult is a successfully placed job.
type SlotResult struct {
	Status    string `json:"status"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// NewSlotResult serialises a booked slot in UTC.
func NewSlotResult(start, end time.Time) SlotResult {
	return SlotResult{
		Status:    BookingStatusBooked,
		StartTime: start.UTC().Format(SlotTimeLayout),
		EndTime:   end.UTC().Format(SlotTimeLayout),
	}
}

// DayAvailability lists the free hour-aligned start times of one calendar day.
type DayAvailability struct {
	Date   string   `json:"date"`
	Starts []string `json:"starts"`
}

// BusinessCalendarPolicy describes when jobs may be placed.
type BusinessCalendarPolicy struct {
	WorkStartHour     int
	WorkEndHour       int
	WorkDays          map[time.Weekday]bool
	SearchHorizonDays int
	Location          *time.Location
}

// DefaultCalendarPolicy is Monday to Friday, 09:00-17:00 UTC, 30 days ahead.
func DefaultCalendarPolicy() BusinessCalendarPolicy {
	return BusinessCalendarPolicy{
		WorkStartHour: 9,
		WorkEndHour:   17,
		WorkDays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
		},
		SearchHorizonDays: 30,
		Location:          time.UTC,
	}
}

func (p BusinessCalendarPolicy) Validate() error {
	if p.WorkStartHour < 0 || p.WorkStartHour > 23 || p.WorkEndHour < 0 || p.WorkEndHour > 23 {
		return errors.New("work hours must be between 0 and 23")
	}
	if p.WorkStartHour >= p.WorkEndHour {
		return errors.New("work start hour must be before work end hour")
	}
	if len(p.WorkDays) == 0 {
		return errors.New("at least one work day is required")
	}
	if p.SearchHorizonDays <= 0 {
		return errors.New("search horizon must be positive")
	}
	return nil
}

// Loc returns the policy time zone, defaulting to UTC.
func (p BusinessCalendarPolicy) Loc() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
