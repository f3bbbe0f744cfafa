package availability

import (
	"context"

	domain "github.com/TuneTutorsUK/tutor-scheduler/internal/domain/availability"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/httperr"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
)

// OwnerGuard authorizes tutor-scoped slot mutations against the ad's actual
// owner. The ad is fetched live on every call: ownership can change outside
// this subsystem, so it must never be cached between requests.
type OwnerGuard struct {
	catalog domain.Catalog
}

func NewOwnerGuard(catalog domain.Catalog) *OwnerGuard {
	return &OwnerGuard{catalog: catalog}
}

func (g *OwnerGuard) RequireAdOwner(
	ctx context.Context,
	tutorID uint,
	adID uint,
) (*models.Ad, error) {

	ad, err := g.catalog.GetAdByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	if ad.TutorID != tutorID {
		return nil, httperr.ErrBusiness(domain.CodeNotAdOwner)
	}

	return ad, nil
}
