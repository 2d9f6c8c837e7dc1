package authController_test

import (
	"net/http"
	"testing"

	"geodir/models"
	"geodir/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	app, db := testutil.SetupApp(t)

	resp := testutil.Request(t, app, "POST", "/register", "", map[string]interface{}{
		"username": "alice",
		"password": "secret99",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Token  string `json:"token"`
	}
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Token)

	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret99", user.Password) // stored hashed

	resp = testutil.Request(t, app, "POST", "/login", "", map[string]interface{}{
		"username": "alice",
		"password": "secret99",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app, _ := testutil.SetupApp(t)

	resp := testutil.Request(t, app, "POST", "/register", "", map[string]interface{}{
		"username": "bob",
		"password": "secret99",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = testutil.Request(t, app, "POST", "/register", "", map[string]interface{}{
		"username": "bob",
		"password": "another99",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app, db := testutil.SetupApp(t)
	testutil.CreateUser(t, db, "carol", models.RoleUser)

	resp := testutil.Request(t, app, "POST", "/login", "", map[string]interface{}{
		"username": "carol",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = testutil.Request(t, app, "POST", "/login", "", map[string]interface{}{
		"username": "nobody",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := testutil.SetupApp(t)

	resp := testutil.Request(t, app, "POST", "/register", "", map[string]interface{}{
		"username": "ab",
		"password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfile(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "dave", models.RoleUser)
	token := testutil.TokenFor(t, user)

	resp := testutil.Request(t, app, "GET", "/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		User models.User `json:"user"`
	}
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "dave", body.User.Username)
}

func TestProfileRedirectsAnonymous(t *testing.T) {
	app, _ := testutil.SetupApp(t)

	resp := testutil.Request(t, app, "GET", "/profile", "", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
