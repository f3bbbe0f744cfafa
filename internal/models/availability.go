package models

import "time"

// Availability is a bookable time window published for an ad. UserID is the
// student who booked it; nil means the slot is still open. UserCapacity counts
// the remaining seats, IsBooked flips only when it reaches zero.
type Availability struct {
	AvailabilityID uint `gorm:"primaryKey" json:"availability_id"`

	AdID uint `gorm:"index;not null" json:"ad_id"`
	Ad   Ad   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	UserID *uint `json:"user_id"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	IsBooked     bool `gorm:"not null;default:false" json:"is_booked"`
	UserCapacity int  `gorm:"not null;default:1" json:"user_capacity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Availability) TableName() string {
	return "availabilities"
}
