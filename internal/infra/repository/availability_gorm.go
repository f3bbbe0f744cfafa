package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/TuneTutorsUK/tutor-scheduler/internal/domain/availability"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/httperr"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// Catalog (Ad)
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetAdByID(
	ctx context.Context,
	adID uint,
) (*models.Ad, error) {

	var ad models.Ad
	if err := r.db.WithContext(ctx).First(&ad, adID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeAdNotFound)
		}
		return nil, err
	}
	return &ad, nil
}

// --------------------------------------------------
// Slots (read)
// --------------------------------------------------

func (r *AvailabilityGormRepository) ListByAd(
	ctx context.Context,
	adID uint,
) ([]models.Availability, error) {

	slots := []models.Availability{}
	if err := r.db.WithContext(ctx).
		Where("ad_id = ?", adID).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *AvailabilityGormRepository) GetSlotByID(
	ctx context.Context,
	slotID uint,
) (*models.Availability, error) {

	var slot models.Availability
	if err := r.db.WithContext(ctx).First(&slot, slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeSlotNotFound)
		}
		return nil, err
	}

	return &slot, nil
}

// --------------------------------------------------
// Slots (tutor mutation)
// --------------------------------------------------

func (r *AvailabilityGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.Availability,
) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *AvailabilityGormRepository) SaveSlot(
	ctx context.Context,
	slot *models.Availability,
) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *AvailabilityGormRepository) DeleteSlot(
	ctx context.Context,
	slotID uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Availability{}, slotID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(domain.CodeSlotNotFound)
	}
	return nil
}

// --------------------------------------------------
// Booking transition
// --------------------------------------------------

// BookSlot claims one seat with a single conditional UPDATE. The WHERE clause
// carries the open/capacity guard, so two racing requests for the last seat
// resolve at the database: one row update wins, the other sees zero rows.
// All SET expressions read the pre-update row, so is_booked flips exactly
// when the decremented capacity hits zero.
func (r *AvailabilityGormRepository) BookSlot(
	ctx context.Context,
	slotID uint,
	bookingUserID uint,
) (*models.Availability, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Availability{}).
		Where(
			"availability_id = ? AND is_booked = false AND user_capacity > 0",
			slotID,
		).
		Updates(map[string]interface{}{
			"user_id":       bookingUserID,
			"user_capacity": gorm.Expr("user_capacity - 1"),
			"is_booked":     gorm.Expr("(user_capacity - 1 = 0)"),
		})

	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Lost the race or bad id; one re-read to classify.
		slot, err := r.GetSlotByID(ctx, slotID)
		if err != nil {
			return nil, err
		}
		if slot.IsBooked {
			return nil, httperr.ErrBusiness(domain.CodeAlreadyBooked)
		}
		return nil, httperr.ErrBusiness(domain.CodeNoCapacity)
	}

	return r.GetSlotByID(ctx, slotID)
}

// Compile-time check
var _ domain.Repository = (*AvailabilityGormRepository)(nil)
