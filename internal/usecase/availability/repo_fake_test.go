package availability

import (
	"context"
	"sync"

	domain "github.com/TuneTutorsUK/tutor-scheduler/internal/domain/availability"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/httperr"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
)

// memRepo mirrors the gorm repository's contract, including the atomicity of
// BookSlot: the whole conditional update runs under one lock, the way the
// real implementation leans on a single conditional UPDATE.
type memRepo struct {
	mu     sync.Mutex
	ads    map[uint]*models.Ad
	slots  map[uint]*models.Availability
	nextID uint
}

func newMemRepo() *memRepo {
	return &memRepo{
		ads:   make(map[uint]*models.Ad),
		slots: make(map[uint]*models.Availability),
	}
}

func (r *memRepo) addAd(adID, tutorID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ads[adID] = &models.Ad{AdID: adID, TutorID: tutorID}
}

func (r *memRepo) GetAdByID(_ context.Context, adID uint) (*models.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ad, ok := r.ads[adID]
	if !ok {
		return nil, httperr.ErrBusiness(domain.CodeAdNotFound)
	}
	copied := *ad
	return &copied, nil
}

func (r *memRepo) ListByAd(_ context.Context, adID uint) ([]models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Availability{}
	for _, slot := range r.slots {
		if slot.AdID == adID {
			out = append(out, *slot)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].StartTime.Before(out[i].StartTime) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *memRepo) GetSlotByID(_ context.Context, slotID uint) (*models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[slotID]
	if !ok {
		return nil, httperr.ErrBusiness(domain.CodeSlotNotFound)
	}
	copied := *slot
	return &copied, nil
}

func (r *memRepo) CreateSlot(_ context.Context, slot *models.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	slot.AvailabilityID = r.nextID
	copied := *slot
	r.slots[slot.AvailabilityID] = &copied
	return nil
}

func (r *memRepo) SaveSlot(_ context.Context, slot *models.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.slots[slot.AvailabilityID]; !ok {
		return httperr.ErrBusiness(domain.CodeSlotNotFound)
	}
	copied := *slot
	r.slots[slot.AvailabilityID] = &copied
	return nil
}

func (r *memRepo) DeleteSlot(_ context.Context, slotID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.slots[slotID]; !ok {
		return httperr.ErrBusiness(domain.CodeSlotNotFound)
	}
	delete(r.slots, slotID)
	return nil
}

func (r *memRepo) BookSlot(_ context.Context, slotID uint, bookingUserID uint) (*models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[slotID]
	if !ok {
		return nil, httperr.ErrBusiness(domain.CodeSlotNotFound)
	}
	if slot.IsBooked {
		return nil, httperr.ErrBusiness(domain.CodeAlreadyBooked)
	}
	if slot.UserCapacity <= 0 {
		return nil, httperr.ErrBusiness(domain.CodeNoCapacity)
	}

	userID := bookingUserID
	slot.UserID = &userID
	slot.UserCapacity--
	if slot.UserCapacity == 0 {
		slot.IsBooked = true
	}

	copied := *slot
	return &copied, nil
}

var _ domain.Repository = (*memRepo)(nil)
