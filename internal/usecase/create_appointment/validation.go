package create_appointment

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

// Romanian mobile/landline numbers, with or without the +4 prefix
var phonePattern = regexp.MustCompile(`^(\+4)?0\d{9}$`)

// Registration plates after normalization: county code, digits, letters
// (e.g. B123ABC, CJ07XYZ) or the red temporary format
var platePattern = regexp.MustCompile(`^[A-Z]{1,2}\d{2,6}[A-Z]{0,3}$`)

// validateRequest validates the request data
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if !phonePattern.MatchString(normalizePhone(req.ClientPhone)) {
		return fmt.Errorf("%w: invalid phone number %q", ErrInvalidInput, req.ClientPhone)
	}

	// The plate is optional at booking (the client may not know it by
	// heart), but when supplied it must be a valid registration
	if req.VehiclePlate != "" && !platePattern.MatchString(normalizePlate(req.VehiclePlate)) {
		return fmt.Errorf("%w: invalid vehicle plate %q", ErrInvalidInput, req.VehiclePlate)
	}

	if !req.VehicleCategory.IsValid() {
		return fmt.Errorf("%w: unknown vehicle category %q", ErrInvalidInput, req.VehicleCategory)
	}

	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes < domain.MinSlotDurationMinutes || *req.DurationMinutes > domain.MaxSlotDurationMinutes {
			return fmt.Errorf("%w: duration must be between %d and %d minutes",
				ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
		}
	}

	if req.VehicleYear != nil && (*req.VehicleYear < 1900 || *req.VehicleYear > time.Now().Year()+1) {
		return fmt.Errorf("%w: implausible vehicle year %d", ErrInvalidInput, *req.VehicleYear)
	}

	if req.ServiceNotes != nil && len(*req.ServiceNotes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: serviceNotes exceeds %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// normalizePhone strips spaces, dots and dashes
func normalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', '-':
			return -1
		}
		return r
	}, phone)
}

// normalizePlate uppercases and strips spaces and dashes
func normalizePlate(plate string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-':
			return -1
		}
		return r
	}, strings.ToUpper(plate))
}

// validateSlotFits checks the requested start against the day grid: it must
// lie on a slot boundary, within working hours, the inspection footprint
// must end by closing time, and it must not overlap the lunch break.
func validateSlotFits(wh *domain.WorkingHours, startTime types.TimeString, durationMinutes int) error {
	if startTime.IsBefore(wh.OpenTime) {
		return fmt.Errorf("%w: before opening time %s", ErrInvalidTimeSlot, wh.OpenTime)
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	openMinutes, err := wh.OpenTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if (startMinutes-openMinutes)%wh.SlotDuration != 0 {
		return fmt.Errorf("%w: start time %s is off the %d-minute grid", ErrInvalidTimeSlot, startTime, wh.SlotDuration)
	}

	footprintEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return fmt.Errorf("%w: inspection would run past midnight", ErrInvalidTimeSlot)
	}
	if footprintEnd.IsAfter(wh.CloseTime) {
		return fmt.Errorf("%w: inspection would end after closing time %s", ErrInvalidTimeSlot, wh.CloseTime)
	}

	if wh.HasBreak() && startTime.IsBefore(*wh.BreakEnd) && footprintEnd.IsAfter(*wh.BreakStart) {
		return fmt.Errorf("%w: inspection would overlap the break %s-%s", ErrInvalidTimeSlot, *wh.BreakStart, *wh.BreakEnd)
	}

	return nil
}

// validateBookingTime rejects same-day slots that already started
func validateBookingTime(date time.Time, startTime types.TimeString, now time.Time) error {
	if !isSameDay(date, now) {
		return nil
	}

	if startTime.IsBefore(types.NewTimeString(now)) {
		return ErrTooLateToBook
	}

	return nil
}

// countOverlappingAppointments counts active appointments truly overlapping
// the requested footprint. Boundary-touching intervals do not overlap.
func countOverlappingAppointments(
	startTime types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
) (int, error) {
	footprintEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.StartTime.IsBefore(footprintEnd) && appt.EndTime.IsAfter(startTime) {
			count++
		}
	}

	return count, nil
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
