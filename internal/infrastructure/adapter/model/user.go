package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	FullName       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_users_full_name"`
	Email          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_email"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time `gorm:"not null"`

	Predictions []Prediction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SystemLogs  []SystemLog  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
