// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and profile data.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It is stored lowercased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This field never stores a plaintext password.
	Password string `gorm:"size:255;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// AvatarPath is the stored avatar file name. Nil when no avatar was uploaded.
	AvatarPath *string `gorm:"size:512"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
