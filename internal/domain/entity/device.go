package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a client device registered for push delivery. DeviceID is
// the client-chosen identifier and acts as the registration idempotency key;
// FCMToken is what Firebase actually addresses.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"`
	Platform  string    `json:"platform"` // ios or android
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
