package middleware

import (
	"testing"

	"geodir/models"

	"github.com/stretchr/testify/assert"
)

func TestCanManageUsers(t *testing.T) {
	assert.True(t, CanManageUsers(models.RoleAdmin))
	assert.False(t, CanManageUsers(models.RoleModerator))
	assert.False(t, CanManageUsers(models.RoleOwner))
	assert.False(t, CanManageUsers(models.RoleUser))
}

func TestCanManageCategories(t *testing.T) {
	assert.True(t, CanManageCategories(models.RoleAdmin))
	assert.True(t, CanManageCategories(models.RoleModerator))
	assert.False(t, CanManageCategories(models.RoleOwner))
	assert.False(t, CanManageCategories(models.RoleUser))
}

func TestCanEditLocation(t *testing.T) {
	// Owners of the record may always edit it.
	assert.True(t, CanEditLocation(models.RoleUser, true))
	assert.True(t, CanEditLocation(models.RoleOwner, true))

	// Staff may edit anything.
	assert.True(t, CanEditLocation(models.RoleAdmin, false))
	assert.True(t, CanEditLocation(models.RoleModerator, false))

	assert.False(t, CanEditLocation(models.RoleUser, false))
	assert.False(t, CanEditLocation(models.RoleOwner, false))
}

func TestCanDeleteReview(t *testing.T) {
	assert.True(t, CanDeleteReview(models.RoleUser, true))
	assert.True(t, CanDeleteReview(models.RoleAdmin, false))
	assert.False(t, CanDeleteReview(models.RoleModerator, false))
	assert.False(t, CanDeleteReview(models.RoleUser, false))
}
