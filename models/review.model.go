package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	LocationID uint   `gorm:"not null;index" json:"location_id"`
	Rating     int    `gorm:"not null;default:5;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string `gorm:"type:text;default:''" json:"comment"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
