// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// Entry represents a single movie on a user's to-watch list.
// A user can hold each movie at most once, enforced by the composite
// unique index over (user_id, movie_id).
type Entry struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_watchlist_user_movie"`
	MovieID   uint      `gorm:"not null;uniqueIndex:idx_watchlist_user_movie"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides gorm's default pluralization ("entries") with an
// unambiguous table name.
func (Entry) TableName() string {
	return "watchlist_entries"
}
