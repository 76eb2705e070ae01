package model

import "time"

// CardSequenceModel mirrors 'card_sequences': one counter per (year, department prefix).
type CardSequenceModel struct {
	Year      int    `gorm:"primaryKey;autoIncrement:false"`
	Prefix    string `gorm:"type:varchar(8);primaryKey"`
	LastValue int64  `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CardSequenceModel) TableName() string {
	return "card_sequences"
}
