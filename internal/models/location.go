package models

type Location struct {
	LocationID uint   `gorm:"primaryKey" json:"location_id"`
	Name       string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (Location) TableName() string {
	return "locations"
}
