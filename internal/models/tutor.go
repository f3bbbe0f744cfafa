package models

import "time"

type Tutor struct {
	TutorID uint `gorm:"primaryKey" json:"tutor_id"`

	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     string `gorm:"size:255;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Phone         string `gorm:"size:20" json:"phone"`
	AvatarURL     string `gorm:"size:255" json:"avatar_url"`
	AccountStatus string `gorm:"size:50;default:'active'" json:"account_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Tutor) TableName() string {
	return "tutors"
}
