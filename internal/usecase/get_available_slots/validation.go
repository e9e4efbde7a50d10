package get_available_slots

import (
	"fmt"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
)

// validateRequest validates the request data
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceType != nil && !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, *req.ServiceType)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes < domain.MinSlotDurationMinutes || *req.DurationMinutes > domain.MaxSlotDurationMinutes {
			return fmt.Errorf("%w: duration must be between %d and %d minutes",
				ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
		}
	}

	return nil
}

// resolveDuration picks the inspection duration: explicit override first,
// then the service type default, then the slot step itself.
func resolveDuration(req *Request, wh *domain.WorkingHours) int {
	if req.DurationMinutes != nil {
		return *req.DurationMinutes
	}
	if req.ServiceType != nil {
		return req.ServiceType.DefaultDuration()
	}
	return wh.SlotDuration
}
