package models

import "gorm.io/gorm"

// A user may bookmark a location at most once; the composite unique index
// closes the check-then-insert race at the store level.
type Favorite struct {
	gorm.Model
	UserID     uint `gorm:"not null;uniqueIndex:idx_favorites_user_location" json:"user_id"`
	LocationID uint `gorm:"not null;uniqueIndex:idx_favorites_user_location" json:"location_id"`

	Location Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
}
