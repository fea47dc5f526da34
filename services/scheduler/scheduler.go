// Package scheduler places cleaning jobs on the business calendar.
//
// Every function here is pure: booked intervals and the calendar policy are
// passed in on each call and are never mutated, so callers may share them
// between goroutines.
package scheduler

import (
	"math"
	"time"

	"cleanquote/models"
)

const startLabelLayout = "15:04"

// FindNextAvailableSlot returns the earliest conflict-free slot of
// ceil(durationHours) hours starting on or after the work-start hour of the
// preferred day. The second return value is false when the search horizon is
// exhausted.
func FindNextAvailableSlot(
	durationHours float64,
	preferredStartDate time.Time,
	booked []models.BookedInterval,
	policy models.BusinessCalendarPolicy,
) (models.SlotResult, bool) {
	start, end, ok := NextSlot(durationHours, preferredStartDate, booked, policy)
	if !ok {
		return models.SlotResult{}, false
	}
	return models.NewSlotResult(start, end), true
}

// NextSlot is FindNextAvailableSlot without serialisation.
func NextSlot(
	durationHours float64,
	preferredStartDate time.Time,
	booked []models.BookedInterval,
	policy models.BusinessCalendarPolicy,
) (time.Time, time.Time, bool) {
	hours := wholeHours(durationHours)
	if hours <= 0 {
		return time.Time{}, time.Time{}, false
	}

	loc := policy.Loc()
	day := startOfWorkDay(preferredStartDate.In(loc), 0, policy)

	for i := 0; i < policy.SearchHorizonDays; i++ {
		if !policy.WorkDays[day.Weekday()] {
			day = startOfWorkDay(day, 1, policy)
			continue
		}
		for h := policy.WorkStartHour; h < policy.WorkEndHour; h++ {
			slotStart := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, loc)
			slotEnd := slotStart.Add(time.Duration(hours) * time.Hour)
			if !FitsBusinessDay(slotStart, slotEnd, policy) {
				continue
			}
			if Overlaps(slotStart, slotEnd, booked) {
				continue
			}
			return slotStart, slotEnd, true
		}
		day = startOfWorkDay(day, 1, policy)
	}
	return time.Time{}, time.Time{}, false
}

// DailyAvailability lists, for each of the given number of days starting at
// from, the hour-aligned start times at which a job of durationHours would fit.
// Start times earlier than from are not offered. Days outside the policy's
// work days are present with no start times.
func DailyAvailability(
	from time.Time,
	days int,
	durationHours float64,
	booked []models.BookedInterval,
	policy models.BusinessCalendarPolicy,
) []models.DayAvailability {
	loc := policy.Loc()
	from = from.In(loc)
	hours := wholeHours(durationHours)
	if days <= 0 {
		return []models.DayAvailability{}
	}

	out := make([]models.DayAvailability, 0, days)
	for i := 0; i < days; i++ {
		day := startOfWorkDay(from, i, policy)
		entry := models.DayAvailability{Date: day.Format("2006-01-02"), Starts: []string{}}
		if policy.WorkDays[day.Weekday()] && hours > 0 {
			for h := policy.WorkStartHour; h < policy.WorkEndHour; h++ {
				slotStart := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, loc)
				if slotStart.Before(from) {
					continue
				}
				slotEnd := slotStart.Add(time.Duration(hours) * time.Hour)
				if FitsBusinessDay(slotStart, slotEnd, policy) && !Overlaps(slotStart, slotEnd, booked) {
					entry.Starts = append(entry.Starts, slotStart.Format(startLabelLayout))
				}
			}
		}
		out = append(out, entry)
	}
	return out
}

// Overlaps reports whether [start, end) intersects any booked interval.
// Touching boundaries do not conflict.
func Overlaps(start, end time.Time, booked []models.BookedInterval) bool {
	for _, b := range booked {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}

// FitsBusinessDay reports whether a slot ends on the same calendar day as it
// starts, no later than the work-end hour.
func FitsBusinessDay(start, end time.Time, policy models.BusinessCalendarPolicy) bool {
	loc := policy.Loc()
	s, e := start.In(loc), end.In(loc)
	sy, sm, sd := s.Date()
	ey, em, ed := e.Date()
	if sy != ey || sm != em || sd != ed {
		return false
	}
	limit := time.Date(ey, em, ed, policy.WorkEndHour, 0, 0, 0, loc)
	return !e.After(limit)
}

// WithinBusinessHours reports whether [start, end) lies on a work day inside
// the business hours window.
func WithinBusinessHours(start, end time.Time, policy models.BusinessCalendarPolicy) bool {
	s := start.In(policy.Loc())
	if !policy.WorkDays[s.Weekday()] || !end.After(start) {
		return false
	}
	open := time.Date(s.Year(), s.Month(), s.Day(), policy.WorkStartHour, 0, 0, 0, policy.Loc())
	return !s.Before(open) && FitsBusinessDay(start, end, policy)
}

// WholeHours rounds a requested duration up to whole hours.
func WholeHours(durationHours float64) int {
	return wholeHours(durationHours)
}

func wholeHours(durationHours float64) int {
	if durationHours <= 0 || math.IsNaN(durationHours) || math.IsInf(durationHours, 0) {
		return 0
	}
	return int(math.Ceil(durationHours))
}

// startOfWorkDay returns the work-start instant offset days after t's calendar day.
func startOfWorkDay(t time.Time, offset int, policy models.BusinessCalendarPolicy) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+offset, policy.WorkStartHour, 0, 0, 0, policy.Loc())
}
