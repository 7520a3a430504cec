// Package entity defines the domain models for the movie feature.
package entity

import "time"

// Movie represents a single catalog entry.
type Movie struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:255;not null"`
	Description string  `gorm:"size:1024"`
	Genre       string  `gorm:"size:100;not null;index"`
	ReleaseYear int     `gorm:"not null"`
	Rating      float64 `gorm:"not null;default:0"`
	PosterPath  string  `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
