package models

type Instrument struct {
	InstrumentID uint   `gorm:"primaryKey" json:"instrument_id"`
	Name         string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (Instrument) TableName() string {
	return "instruments"
}
