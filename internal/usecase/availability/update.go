package availability

import (
	"context"
	"time"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/audit"
	domain "github.com/TuneTutorsUK/tutor-scheduler/internal/domain/availability"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
)

type UpdateSlotInput struct {
	TutorID uint
	SlotID  uint

	StartTime *time.Time
	EndTime   *time.Time
	Capacity  *int
}

type UpdateSlot struct {
	repo  domain.Repository
	guard *OwnerGuard
	audit *audit.Dispatcher
}

func NewUpdateSlot(
	repo domain.Repository,
	guard *OwnerGuard,
	audit *audit.Dispatcher,
) *UpdateSlot {
	return &UpdateSlot{
		repo:  repo,
		guard: guard,
		audit: audit,
	}
}

func (uc *UpdateSlot) Execute(
	ctx context.Context,
	in UpdateSlotInput,
) (*models.Availability, error) {

	slot, err := uc.repo.GetSlotByID(ctx, in.SlotID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.guard.RequireAdOwner(ctx, in.TutorID, slot.AdID); err != nil {
		return nil, err
	}

	if err := domain.CanMutate(slot); err != nil {
		return nil, err
	}

	if in.StartTime != nil {
		slot.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		slot.EndTime = *in.EndTime
	}
	if in.Capacity != nil {
		if err := domain.ValidateCapacity(*in.Capacity); err != nil {
			return nil, err
		}
		slot.UserCapacity = *in.Capacity
	}

	if err := domain.ValidateWindow(slot.StartTime, slot.EndTime); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TutorID:  in.TutorID,
		Action:   "slot_updated",
		Entity:   "availability",
		EntityID: &slot.AvailabilityID,
	})

	return slot, nil
}
