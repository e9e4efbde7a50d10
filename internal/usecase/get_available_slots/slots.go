package get_available_slots

import (
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

// generateSlots builds the day grid: candidate start times stepping from
// opening by the fixed slot step. A candidate whose full inspection
// footprint (start + durationMinutes) would run past closing is dropped.
// Candidates overlapping the lunch break are kept with IsBreak=true so the
// grid stays visually complete, but they are never available.
func generateSlots(wh *domain.WorkingHours, durationMinutes int) ([]Slot, error) {
	slots := make([]Slot, 0)

	current := wh.OpenTime
	for current.IsBefore(wh.CloseTime) {
		footprintEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// past midnight, nothing further fits
			break
		}
		if footprintEnd.IsAfter(wh.CloseTime) {
			break
		}

		slots = append(slots, Slot{
			StartTime:       current,
			IsBreak:         overlapsBreak(wh, current, footprintEnd),
			MaxAppointments: wh.MaxAppointments,
		})

		next, err := current.AddMinutes(wh.SlotDuration)
		if err != nil {
			break
		}
		current = next
	}

	return slots, nil
}

// overlapsBreak reports whether the interval [start, end) truly overlaps
// the lunch break. Touching boundaries do not count: an inspection ending
// exactly at break start, or starting exactly at break end, is fine.
func overlapsBreak(wh *domain.WorkingHours, start, end types.TimeString) bool {
	if !wh.HasBreak() {
		return false
	}
	return start.IsBefore(*wh.BreakEnd) && end.IsAfter(*wh.BreakStart)
}

// fillOccupancy counts, for every slot, the active appointments whose
// intervals truly overlap the slot's inspection footprint, and resolves
// availability. Boundary-touching intervals do not overlap.
func fillOccupancy(slots []Slot, durationMinutes int, appointments []*domain.Appointment, now time.Time, sameDay bool) []Slot {
	nowTime := types.NewTimeString(now)

	for i := range slots {
		slot := &slots[i]

		footprintEnd, err := slot.StartTime.AddMinutes(durationMinutes)
		if err != nil {
			slot.Available = false
			continue
		}

		for _, appt := range appointments {
			if !appt.IsActive() {
				continue
			}
			if appt.StartTime.IsBefore(footprintEnd) && appt.EndTime.IsAfter(slot.StartTime) {
				slot.AppointmentsCount++
			}
		}

		slot.Available = !slot.IsBreak &&
			slot.AppointmentsCount < slot.MaxAppointments &&
			!(sameDay && slot.StartTime.IsBefore(nowTime))
	}

	return slots
}

// isSameDay reports whether the two instants fall on the same calendar day
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether date is before today, ignoring the time
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
