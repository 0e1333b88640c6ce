package models

import "gorm.io/gorm"

// Reaction is a single user's reaction on a media item. The unique index
// on (media_id, user_id) is what makes the toggle atomic: at most one live
// reaction exists per pair, regardless of concurrent requests.
type Reaction struct {
	gorm.Model

	MediaID      uint   `gorm:"not null;uniqueIndex:idx_reactions_media_user"`
	UserID       uint   `gorm:"not null;uniqueIndex:idx_reactions_media_user"`
	ReactionType string `gorm:"not null"` // free-form tag, e.g. "like", "fire"

	// Relationships
	Media Media `gorm:"foreignKey:MediaID"`
	User  User  `gorm:"foreignKey:UserID"`
}
