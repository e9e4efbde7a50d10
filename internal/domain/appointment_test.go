package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	all := []AppointmentStatus{
		StatusPending, StatusConfirmed, StatusInProgress,
		StatusRarBlocked, StatusCancelled, StatusCompleted, StatusNoShow,
	}

	legal := map[AppointmentStatus]map[AppointmentStatus]bool{
		StatusPending: {
			StatusConfirmed: true,
			StatusCancelled: true,
			StatusCompleted: true, // quick-admis shortcut
		},
		StatusConfirmed: {
			StatusInProgress: true,
			StatusRarBlocked: true,
			StatusCancelled:  true,
			StatusNoShow:     true,
			StatusCompleted:  true, // quick-admis shortcut
		},
		StatusInProgress: {
			StatusRarBlocked: true,
			StatusCompleted:  true,
		},
		StatusRarBlocked: {
			StatusCompleted: true,
		},
		StatusCancelled: {},
		StatusCompleted: {},
		StatusNoShow:    {},
	}

	for _, from := range all {
		for _, to := range all {
			expected := legal[from][to]
			assert.Equal(t, expected, from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.False(t, StatusRarBlocked.IsTerminal())
}

func TestAppointmentStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusNoShow.IsValid())
	assert.False(t, AppointmentStatus("UNKNOWN").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointment_IsActive(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		active bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusInProgress, true},
		{StatusRarBlocked, true},
		{StatusCompleted, true},
		{StatusCancelled, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		appt := &Appointment{Status: tt.status}
		assert.Equal(t, tt.active, appt.IsActive(), "status %s", tt.status)
	}
}

func TestAppointment_OperationGuards(t *testing.T) {
	byStatus := func(status AppointmentStatus) *Appointment {
		return &Appointment{Status: status}
	}

	t.Run("confirm only from pending", func(t *testing.T) {
		assert.True(t, byStatus(StatusPending).CanBeConfirmed())
		assert.False(t, byStatus(StatusConfirmed).CanBeConfirmed())
		assert.False(t, byStatus(StatusCancelled).CanBeConfirmed())
	})

	t.Run("cancel from pending or confirmed", func(t *testing.T) {
		assert.True(t, byStatus(StatusPending).CanBeCancelled())
		assert.True(t, byStatus(StatusConfirmed).CanBeCancelled())
		assert.False(t, byStatus(StatusInProgress).CanBeCancelled())
		assert.False(t, byStatus(StatusCompleted).CanBeCancelled())
	})

	t.Run("start only from confirmed", func(t *testing.T) {
		assert.True(t, byStatus(StatusConfirmed).CanStartInspection())
		assert.False(t, byStatus(StatusPending).CanStartInspection())
		assert.False(t, byStatus(StatusInProgress).CanStartInspection())
	})

	t.Run("rar block from confirmed or in progress", func(t *testing.T) {
		assert.True(t, byStatus(StatusConfirmed).CanBeRarBlocked())
		assert.True(t, byStatus(StatusInProgress).CanBeRarBlocked())
		assert.False(t, byStatus(StatusPending).CanBeRarBlocked())
		assert.False(t, byStatus(StatusRarBlocked).CanBeRarBlocked())
	})

	t.Run("complete from in progress or rar blocked", func(t *testing.T) {
		assert.True(t, byStatus(StatusInProgress).CanBeCompleted())
		assert.True(t, byStatus(StatusRarBlocked).CanBeCompleted())
		assert.False(t, byStatus(StatusConfirmed).CanBeCompleted())
		assert.False(t, byStatus(StatusPending).CanBeCompleted())
	})

	t.Run("quick admis skips the started states", func(t *testing.T) {
		assert.True(t, byStatus(StatusPending).CanQuickAdmis())
		assert.True(t, byStatus(StatusConfirmed).CanQuickAdmis())
		assert.True(t, byStatus(StatusInProgress).CanQuickAdmis())
		assert.False(t, byStatus(StatusRarBlocked).CanQuickAdmis())
		assert.False(t, byStatus(StatusCompleted).CanQuickAdmis())
	})

	t.Run("no show only from confirmed", func(t *testing.T) {
		assert.True(t, byStatus(StatusConfirmed).CanBeMarkedNoShow())
		assert.False(t, byStatus(StatusPending).CanBeMarkedNoShow())
	})

	t.Run("itp result only during inspection", func(t *testing.T) {
		assert.True(t, byStatus(StatusInProgress).CanSetItpResult())
		assert.True(t, byStatus(StatusRarBlocked).CanSetItpResult())
		assert.False(t, byStatus(StatusConfirmed).CanSetItpResult())
		assert.False(t, byStatus(StatusCompleted).CanSetItpResult())
	})

	t.Run("update blocked on terminal statuses", func(t *testing.T) {
		assert.True(t, byStatus(StatusPending).CanBeUpdated())
		assert.True(t, byStatus(StatusRarBlocked).CanBeUpdated())
		assert.False(t, byStatus(StatusCancelled).CanBeUpdated())
		assert.False(t, byStatus(StatusCompleted).CanBeUpdated())
		assert.False(t, byStatus(StatusNoShow).CanBeUpdated())
	})
}

func TestAppointmentStatus_LabelAndColor(t *testing.T) {
	all := []AppointmentStatus{
		StatusPending, StatusConfirmed, StatusInProgress,
		StatusRarBlocked, StatusCancelled, StatusCompleted, StatusNoShow,
	}

	seenLabels := make(map[string]bool)
	for _, s := range all {
		label := s.Label()
		assert.NotEmpty(t, label)
		assert.NotEqual(t, string(s), label, "status %s has no label", s)
		assert.False(t, seenLabels[label], "duplicate label %q", label)
		seenLabels[label] = true

		assert.Regexp(t, `^#[0-9a-f]{6}$`, s.Color(), "status %s", s)
	}
}
