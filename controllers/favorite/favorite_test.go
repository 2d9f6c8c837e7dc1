package favoriteController_test

import (
	"fmt"
	"net/http"
	"testing"

	locationController "geodir/controllers/location"
	"geodir/models"
	"geodir/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesRequireAuth(t *testing.T) {
	app, _ := testutil.SetupApp(t)

	resp := testutil.Request(t, app, "GET", "/api/favorites", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, map[string]string{"error": "unauthorized"}, body)
}

func TestAddFavoriteTwice(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "u1", models.RoleUser)
	loc := testutil.CreateLocation(t, db, "L1", nil)
	token := testutil.TokenFor(t, user)

	resp := testutil.Request(t, app, "POST", fmt.Sprintf("/favorite/%d", loc.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Action string `json:"action"`
	}
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "added", body.Action)

	// Second add for the same pair conflicts.
	resp = testutil.Request(t, app, "POST", fmt.Sprintf("/favorite/%d", loc.ID), token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "error", body.Status)

	var count int64
	db.Model(&models.Favorite{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddFavoriteMissingLocation(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "u1", models.RoleUser)
	token := testutil.TokenFor(t, user)

	resp := testutil.Request(t, app, "POST", "/favorite/999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRemoveFavorite(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "u1", models.RoleUser)
	loc := testutil.CreateLocation(t, db, "L1", nil)
	require.NoError(t, db.Create(&models.Favorite{UserID: user.ID, LocationID: loc.ID}).Error)
	token := testutil.TokenFor(t, user)

	resp := testutil.Request(t, app, "DELETE", fmt.Sprintf("/favorite/%d", loc.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Action string `json:"action"`
	}
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "removed", body.Action)

	// Removing again answers 404.
	resp = testutil.Request(t, app, "DELETE", fmt.Sprintf("/favorite/%d", loc.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The bookmark can be re-added after removal.
	resp = testutil.Request(t, app, "POST", fmt.Sprintf("/favorite/%d", loc.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApiFavoritesSkipsOrphans(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "u1", models.RoleUser)
	loc := testutil.CreateLocation(t, db, "Alive", nil)
	require.NoError(t, db.Create(&models.Favorite{UserID: user.ID, LocationID: loc.ID}).Error)
	require.NoError(t, db.Create(&models.Favorite{UserID: user.ID, LocationID: 9999}).Error)

	token := testutil.TokenFor(t, user)
	resp := testutil.Request(t, app, "GET", "/api/favorites", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summaries []locationController.LocationSummary
	testutil.DecodeJSON(t, resp, &summaries)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Alive", summaries[0].Name)
}

func TestApiFavoritesScopedToCaller(t *testing.T) {
	app, db := testutil.SetupApp(t)
	u1 := testutil.CreateUser(t, db, "u1", models.RoleUser)
	u2 := testutil.CreateUser(t, db, "u2", models.RoleUser)
	loc := testutil.CreateLocation(t, db, "L1", nil)
	require.NoError(t, db.Create(&models.Favorite{UserID: u2.ID, LocationID: loc.ID}).Error)

	token := testutil.TokenFor(t, u1)
	resp := testutil.Request(t, app, "GET", "/api/favorites", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summaries []locationController.LocationSummary
	testutil.DecodeJSON(t, resp, &summaries)
	assert.Empty(t, summaries)
}
