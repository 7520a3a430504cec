// Package entity defines the domain models for the comment feature.
package entity

import "time"

// Comment represents a viewer comment attached to a movie.
type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	MovieID   uint      `gorm:"not null;index"`
	Text      string    `gorm:"size:1024;not null"`
	Rating    int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
