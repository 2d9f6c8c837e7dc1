package models

import "gorm.io/gorm"

// DefaultCategoryID is assigned to locations created without an explicit category.
const DefaultCategoryID uint = 1

type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Locations []Location `gorm:"foreignKey:CategoryID" json:"-"`
}
