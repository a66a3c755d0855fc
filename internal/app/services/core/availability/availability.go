// Package availability decides whether a requested slot fits the daily
// operational window and whether it collides with reservations already on
// the day's timeline. Every slot lasts exactly SlotDurationMinutes and
// intervals are half-open, so a slot starting exactly where another ends is
// not a conflict.
package availability

import (
	"sort"

	"lavanderia-service/internal/app/models"
	"lavanderia-service/internal/pkg/dto/responses"
	"lavanderia-service/internal/pkg/utils"
)

const (
	OpenMinutesOfDay    = 540  // 09:00
	CloseMinutesOfDay   = 1200 // 20:00
	SlotDurationMinutes = 60
)

// Result reports the outcome of a conflict scan. When Available is false,
// Conflict holds the first colliding reservation in store order and
// NextAvailable holds that reservation's end time as HH:MM. The reported
// time is only guaranteed free of that one reservation, not of the whole
// day.
type Result struct {
	Available     bool
	Conflict      *models.Reservation
	NextAvailable string
}

// IsOperational reports whether a slot may start at the given minute of the
// day. The window is start-inclusive and end-exclusive, so 19:59 is
// accepted even though the slot runs past closing.
func IsOperational(minutesOfDay int) bool {
	return minutesOfDay >= OpenMinutesOfDay && minutesOfDay < CloseMinutesOfDay
}

// CheckAvailability scans the day's reservations in iteration order and
// stops at the first overlap with the requested start.
func CheckAvailability(reservations []models.Reservation, requestedStartMinutes int) Result {
	requestedEnd := requestedStartMinutes + SlotDurationMinutes

	for i := range reservations {
		existingStart, err := utils.ParseClockMinutes(reservations[i].Time)
		if err != nil {
			continue
		}
		existingEnd := existingStart + SlotDurationMinutes

		if requestedStartMinutes < existingEnd && requestedEnd > existingStart {
			return Result{
				Available:     false,
				Conflict:      &reservations[i],
				NextAvailable: utils.FormatClockMinutes(existingEnd),
			}
		}
	}
	return Result{Available: true}
}

// BuildDaySchedule partitions the day into occupied slots and the free
// sub-intervals of the operational window between them, both in
// chronological order. A day without reservations yields empty sequences;
// callers treat that as the whole window being free.
func BuildDaySchedule(dateKey string, reservations []models.Reservation) *responses.DaySchedule {
	schedule := &responses.DaySchedule{
		Date:      dateKey,
		Available: []responses.TimeInterval{},
		Occupied:  []responses.TimeInterval{},
	}
	if len(reservations) == 0 {
		return schedule
	}

	starts := make([]int, 0, len(reservations))
	for i := range reservations {
		start, err := utils.ParseClockMinutes(reservations[i].Time)
		if err != nil {
			continue
		}
		starts = append(starts, start)
	}
	sort.Ints(starts)

	cursor := OpenMinutesOfDay
	for _, start := range starts {
		end := start + SlotDurationMinutes
		schedule.Occupied = append(schedule.Occupied, responses.TimeInterval{
			Start: utils.FormatClockMinutes(start),
			End:   utils.FormatClockMinutes(end),
		})
		if freeEnd := min(start, CloseMinutesOfDay); freeEnd > cursor && cursor < CloseMinutesOfDay {
			schedule.Available = append(schedule.Available, responses.TimeInterval{
				Start: utils.FormatClockMinutes(cursor),
				End:   utils.FormatClockMinutes(freeEnd),
			})
		}
		if end > cursor {
			cursor = end
		}
	}
	if cursor < CloseMinutesOfDay {
		schedule.Available = append(schedule.Available, responses.TimeInterval{
			Start: utils.FormatClockMinutes(cursor),
			End:   utils.FormatClockMinutes(CloseMinutesOfDay),
		})
	}
	return schedule
}
