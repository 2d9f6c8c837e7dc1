package models

import "gorm.io/gorm"

type Location struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `gorm:"type:text;default:''" json:"description"`
	Lat          float64 `gorm:"not null" json:"lat"`
	Lng          float64 `gorm:"not null" json:"lng"`
	Address      string  `gorm:"default:''" json:"address"`
	Photo        string  `gorm:"default:''" json:"photo"`
	OpeningHours string  `gorm:"default:''" json:"opening_hours"`
	Contacts     string  `gorm:"default:''" json:"contacts"`
	CategoryID   *uint   `gorm:"index" json:"category_id"`
	OwnerID      *uint   `gorm:"index" json:"owner_id"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"-"`
}
