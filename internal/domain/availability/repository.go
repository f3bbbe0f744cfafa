package availability

import (
	"context"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
)

// Catalog is the read side of the ad store. The ownership guard re-fetches
// the ad on every mutating call; ownership is never cached across requests.
type Catalog interface {
	GetAdByID(ctx context.Context, adID uint) (*models.Ad, error)
}

type Repository interface {
	Catalog

	// -------- Slots (read) --------
	ListByAd(ctx context.Context, adID uint) ([]models.Availability, error)
	GetSlotByID(ctx context.Context, slotID uint) (*models.Availability, error)

	// -------- Slots (tutor mutation) --------
	CreateSlot(ctx context.Context, slot *models.Availability) error
	SaveSlot(ctx context.Context, slot *models.Availability) error
	DeleteSlot(ctx context.Context, slotID uint) error

	// -------- Booking transition --------
	// BookSlot must apply the open->booked transition as one atomic
	// conditional update; concurrent calls for the last seat must not both
	// succeed. Returns CodeSlotNotFound, CodeAlreadyBooked or CodeNoCapacity
	// as business errors.
	BookSlot(ctx context.Context, slotID uint, bookingUserID uint) (*models.Availability, error)
}
