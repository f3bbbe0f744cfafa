package availability

import (
	"context"

	domain "github.com/TuneTutorsUK/tutor-scheduler/internal/domain/availability"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
)

// ListAdSlots is the public browsing path: anyone may view the slots of an
// ad, open or booked. No tutor identity involved.
type ListAdSlots struct {
	repo domain.Repository
}

func NewListAdSlots(repo domain.Repository) *ListAdSlots {
	return &ListAdSlots{repo: repo}
}

func (uc *ListAdSlots) Execute(
	ctx context.Context,
	adID uint,
) ([]models.Availability, error) {
	return uc.repo.ListByAd(ctx, adID)
}

// ListMyAdSlots is the management-dashboard path: same shape as the public
// listing but reachable only for ads the caller owns.
type ListMyAdSlots struct {
	repo  domain.Repository
	guard *OwnerGuard
}

func NewListMyAdSlots(repo domain.Repository, guard *OwnerGuard) *ListMyAdSlots {
	return &ListMyAdSlots{repo: repo, guard: guard}
}

func (uc *ListMyAdSlots) Execute(
	ctx context.Context,
	tutorID uint,
	adID uint,
) ([]models.Availability, error) {

	if _, err := uc.guard.RequireAdOwner(ctx, tutorID, adID); err != nil {
		return nil, err
	}

	return uc.repo.ListByAd(ctx, adID)
}
