package availability

import (
	"context"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/audit"
	domain "github.com/TuneTutorsUK/tutor-scheduler/internal/domain/availability"
)

type DeleteSlot struct {
	repo  domain.Repository
	guard *OwnerGuard
	audit *audit.Dispatcher
}

func NewDeleteSlot(
	repo domain.Repository,
	guard *OwnerGuard,
	audit *audit.Dispatcher,
) *DeleteSlot {
	return &DeleteSlot{
		repo:  repo,
		guard: guard,
		audit: audit,
	}
}

func (uc *DeleteSlot) Execute(
	ctx context.Context,
	tutorID uint,
	slotID uint,
) error {

	slot, err := uc.repo.GetSlotByID(ctx, slotID)
	if err != nil {
		return err
	}

	if _, err := uc.guard.RequireAdOwner(ctx, tutorID, slot.AdID); err != nil {
		return err
	}

	if err := domain.CanMutate(slot); err != nil {
		return err
	}

	if err := uc.repo.DeleteSlot(ctx, slotID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		TutorID:  tutorID,
		Action:   "slot_deleted",
		Entity:   "availability",
		EntityID: &slotID,
	})

	return nil
}
