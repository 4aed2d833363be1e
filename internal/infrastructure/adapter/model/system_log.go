package model

import (
	"time"
)

// SystemLog is an audit row. It is only ever inserted.
type SystemLog struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    *uint64   `gorm:"index"`
	Action    string    `gorm:"type:varchar(100);not null;index"`
	Message   string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"not null"`
}

// TableName specifies the table name for SystemLog
func (SystemLog) TableName() string {
	return "system_logs"
}
