package models

import "time"

// Ad is a tutor's marketplace listing. Ownership (TutorID) is the anchor for
// every slot mutation: only the owning tutor may manage its availability.
type Ad struct {
	AdID uint `gorm:"primaryKey" json:"ad_id"`

	TutorID uint  `gorm:"index;not null" json:"tutor_id"`
	Tutor   Tutor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	InstrumentID uint       `gorm:"not null" json:"instrument_id"`
	Instrument   Instrument `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	LocationID *uint     `json:"location_id"`
	Location   *Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	AdDescription   string  `gorm:"size:255;not null" json:"ad_description"`
	YearsExperience int     `gorm:"default:0" json:"years_experience"`
	HourlyRate      float64 `gorm:"not null" json:"hourly_rate"`
	ImgURL          string  `gorm:"size:255" json:"img_url"`

	CreatedAt time.Time  `json:"created_at"`
	DestroyAt *time.Time `json:"destroy_at"`
}

func (Ad) TableName() string {
	return "ads"
}
