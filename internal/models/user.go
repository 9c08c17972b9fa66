package models

import "time"

// User represents the single simulated session identity.
type User struct {
	ID           string    `json:"id" validate:"omitempty,uuid"`
	Email        string    `json:"email" validate:"required,email"`
	FullName     string    `json:"fullName" validate:"required"`
	Phone        string    `json:"phone,omitempty"`
	PreferredGym string    `json:"preferredGym,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProfileUpdate carries the fields a signed-in user may change. Empty fields
// are left untouched by the merge.
type ProfileUpdate struct {
	FullName     string `json:"fullName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	PreferredGym string `json:"preferredGym,omitempty"`
}
