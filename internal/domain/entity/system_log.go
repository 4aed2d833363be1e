package entity

import (
	"time"
)

// Audit action tags
const (
	ActionRegister      = "REGISTER"
	ActionLogin         = "LOGIN"
	ActionPredict       = "PREDICT"
	ActionClearHistory  = "CLEAR_HISTORY"
	ActionDeleteProfile = "DELETE_PROFILE"
)

// SystemLog is an append-only audit record. It is never updated after creation.
type SystemLog struct {
	ID        uint64
	UserID    *uint64
	Action    string
	Message   string
	Timestamp time.Time
}
