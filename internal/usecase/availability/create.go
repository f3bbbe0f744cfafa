package availability

import (
	"context"
	"time"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/audit"
	domain "github.com/TuneTutorsUK/tutor-scheduler/internal/domain/availability"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/httperr"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSlotInput struct {
	TutorID uint
	AdID    uint

	StartTime time.Time
	EndTime   time.Time
	Capacity  *int
}

// ======================================================
// USE CASE
// ======================================================

type CreateSlot struct {
	repo  domain.Repository
	guard *OwnerGuard
	audit *audit.Dispatcher
}

func NewCreateSlot(
	repo domain.Repository,
	guard *OwnerGuard,
	audit *audit.Dispatcher,
) *CreateSlot {
	return &CreateSlot{
		repo:  repo,
		guard: guard,
		audit: audit,
	}
}

func (uc *CreateSlot) Execute(
	ctx context.Context,
	in CreateSlotInput,
) (*models.Availability, error) {

	ad, err := uc.guard.RequireAdOwner(ctx, in.TutorID, in.AdID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateWindow(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	capacity := domain.DefaultCapacity
	if in.Capacity != nil {
		capacity = *in.Capacity
	}
	if err := domain.ValidateCapacity(capacity); err != nil {
		return nil, err
	}
	if capacity == 0 {
		return nil, httperr.ErrBusiness(domain.CodeInvalidCapacity)
	}

	slot := domain.NewSlot(ad.AdID, in.StartTime, in.EndTime, capacity)

	if err := uc.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TutorID:  in.TutorID,
		Action:   "slot_created",
		Entity:   "availability",
		EntityID: &slot.AvailabilityID,
	})

	return slot, nil
}
