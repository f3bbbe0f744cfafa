package availability

import (
	"time"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/httperr"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
)

// ===============================
// Domain Rules
// ===============================

// ValidateWindow checks the start/end pair of a slot. Both timestamps are
// required and the window must be chronological.
func ValidateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return httperr.ErrBusiness(CodeMissingTimes)
	}
	if !end.After(start) {
		return httperr.ErrBusiness(CodeInvalidTimeRange)
	}
	return nil
}

// ValidateCapacity rejects negative seat counts. Zero is allowed on update
// (a tutor may close a slot without deleting it).
func ValidateCapacity(capacity int) error {
	if capacity < 0 {
		return httperr.ErrBusiness(CodeInvalidCapacity)
	}
	return nil
}

// CanMutate gates tutor-side edits and deletion. A booked slot keeps its
// times and capacity until the end of its life.
func CanMutate(slot *models.Availability) error {
	if slot.IsBooked {
		return httperr.ErrBusiness(CodeInvalidState)
	}
	return nil
}

// NewSlot builds an open slot for an ad. Callers validate the window first.
func NewSlot(adID uint, start, end time.Time, capacity int) *models.Availability {
	return &models.Availability{
		AdID:         adID,
		StartTime:    start,
		EndTime:      end,
		UserID:       nil,
		IsBooked:     false,
		UserCapacity: capacity,
	}
}
