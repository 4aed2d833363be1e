package model

import (
	"time"
)

// Prediction represents one stored classification result
type Prediction struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement"`
	UserID            uint64    `gorm:"not null;index:idx_predictions_user_timestamp,priority:1"`
	CurrencyCode      string    `gorm:"type:varchar(10);not null"`
	Confidence        float64   `gorm:"not null"`
	NameEn            string    `gorm:"type:varchar(100);not null"`
	NameAr            string    `gorm:"type:varchar(100);not null"`
	DenominationValue *int      `gorm:"null"`
	IsCounterfeit     bool      `gorm:"not null;default:false"`
	ImagePath         string    `gorm:"type:varchar(255);not null"`
	Timestamp         time.Time `gorm:"not null;index:idx_predictions_user_timestamp,priority:2"`
}

// TableName specifies the table name for Prediction
func (Prediction) TableName() string {
	return "predictions"
}
