package availability

import (
	"context"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/audit"
	domain "github.com/TuneTutorsUK/tutor-scheduler/internal/domain/availability"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
)

// BookSlot is the student-facing transition from open to booked. The whole
// check-then-set lives in the repository's conditional update, so no lock is
// held here and a failed attempt leaves the slot untouched.
type BookSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookSlot {
	return &BookSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookSlot) Execute(
	ctx context.Context,
	slotID uint,
	bookingUserID uint,
) (*models.Availability, error) {

	slot, err := uc.repo.BookSlot(ctx, slotID, bookingUserID)
	if err != nil {
		return nil, err
	}

	ad, err := uc.repo.GetAdByID(ctx, slot.AdID)
	if err != nil {
		return slot, nil
	}

	uc.audit.Dispatch(audit.Event{
		TutorID:  ad.TutorID,
		UserID:   &bookingUserID,
		Action:   "slot_booked",
		Entity:   "availability",
		EntityID: &slot.AvailabilityID,
		Metadata: map[string]any{
			"remaining_capacity": slot.UserCapacity,
		},
	})

	return slot, nil
}
