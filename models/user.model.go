package models

import "gorm.io/gorm"

// Role values form a closed set; see middleware/permission.go for the checks.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleOwner     = "owner"
	RoleUser      = "user"
)

// ReservedAdminUsername is the bootstrap administrator account.
// It is seeded on migration and can never be deleted.
const ReservedAdminUsername = "admin1"

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:'user'" json:"role"`

	Locations []Location `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL" json:"-"`
	Reviews   []Review   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// ValidRole reports whether role is one of the known role strings.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleModerator, RoleOwner, RoleUser:
		return true
	}
	return false
}
