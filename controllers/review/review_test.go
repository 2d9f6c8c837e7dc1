package reviewController_test

import (
	"fmt"
	"net/http"
	"testing"

	"geodir/models"
	"geodir/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReviewRedirectsAnonymous(t *testing.T) {
	app, db := testutil.SetupApp(t)
	testutil.CreateLocation(t, db, "L1", nil)

	resp := testutil.Request(t, app, "POST", "/review/add/1", "", map[string]interface{}{
		"rating":  4,
		"comment": "nice",
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Zero(t, count)

	// An out-of-range rating still redirects, not a validation response.
	resp = testutil.Request(t, app, "POST", "/review/add/1", "", map[string]interface{}{
		"rating": 99,
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAddReviewAndAggregate(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "u1", models.RoleUser)
	loc := testutil.CreateLocation(t, db, "L1", nil)
	token := testutil.TokenFor(t, user)

	for _, rating := range []int{4, 2} {
		resp := testutil.Request(t, app, "POST", fmt.Sprintf("/review/add/%d", loc.ID), token, map[string]interface{}{
			"rating":  rating,
			"comment": "ok",
		})
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, fmt.Sprintf("/location/%d/reviews", loc.ID), resp.Header.Get("Location"))
	}

	resp := testutil.Request(t, app, "GET", fmt.Sprintf("/location/%d/reviews", loc.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AvgRating float64         `json:"avg_rating"`
		Reviews   []models.Review `json:"reviews"`
	}
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, 3.0, body.AvgRating)
	assert.Len(t, body.Reviews, 2)
}

func TestAddReviewAllowsDuplicatesBySameUser(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "u1", models.RoleUser)
	loc := testutil.CreateLocation(t, db, "L1", nil)
	token := testutil.TokenFor(t, user)

	for i := 0; i < 3; i++ {
		resp := testutil.Request(t, app, "POST", fmt.Sprintf("/review/add/%d", loc.ID), token, map[string]interface{}{
			"rating": 5,
		})
		require.Equal(t, http.StatusFound, resp.StatusCode)
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestAddReviewRejectsOutOfRangeRating(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "u1", models.RoleUser)
	loc := testutil.CreateLocation(t, db, "L1", nil)
	token := testutil.TokenFor(t, user)

	for _, rating := range []int{0, 6, -1} {
		resp := testutil.Request(t, app, "POST", fmt.Sprintf("/review/add/%d", loc.ID), token, map[string]interface{}{
			"rating": rating,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddReviewMissingLocation(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "u1", models.RoleUser)
	token := testutil.TokenFor(t, user)

	resp := testutil.Request(t, app, "POST", "/review/add/999", token, map[string]interface{}{
		"rating": 3,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReviewsPageSorting(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "u1", models.RoleUser)
	loc := testutil.CreateLocation(t, db, "L1", nil)

	for _, rating := range []int{3, 5, 1} {
		require.NoError(t, db.Create(&models.Review{UserID: user.ID, LocationID: loc.ID, Rating: rating}).Error)
	}

	var body struct {
		Reviews []models.Review `json:"reviews"`
	}

	resp := testutil.Request(t, app, "GET", fmt.Sprintf("/location/%d/reviews?sort=asc", loc.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &body)
	require.Len(t, body.Reviews, 3)
	assert.Equal(t, 1, body.Reviews[0].Rating)
	assert.Equal(t, 5, body.Reviews[2].Rating)

	// Default is descending.
	resp = testutil.Request(t, app, "GET", fmt.Sprintf("/location/%d/reviews", loc.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &body)
	require.Len(t, body.Reviews, 3)
	assert.Equal(t, 5, body.Reviews[0].Rating)
	assert.Equal(t, 1, body.Reviews[2].Rating)
}

func TestDeleteReviewByAuthor(t *testing.T) {
	app, db := testutil.SetupApp(t)
	author := testutil.CreateUser(t, db, "author", models.RoleUser)
	loc := testutil.CreateLocation(t, db, "L1", nil)
	review := models.Review{UserID: author.ID, LocationID: loc.ID, Rating: 4}
	require.NoError(t, db.Create(&review).Error)

	token := testutil.TokenFor(t, author)
	resp := testutil.Request(t, app, "POST", fmt.Sprintf("/review/delete/%d", review.ID), token, nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteReviewByAdmin(t *testing.T) {
	app, db := testutil.SetupApp(t)
	author := testutil.CreateUser(t, db, "author", models.RoleUser)
	loc := testutil.CreateLocation(t, db, "L1", nil)
	review := models.Review{UserID: author.ID, LocationID: loc.ID, Rating: 4}
	require.NoError(t, db.Create(&review).Error)

	var admin models.User
	require.NoError(t, db.Where("username = ?", models.ReservedAdminUsername).First(&admin).Error)

	token := testutil.TokenFor(t, admin)
	resp := testutil.Request(t, app, "POST", fmt.Sprintf("/review/delete/%d", review.ID), token, nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteReviewForbiddenForStranger(t *testing.T) {
	app, db := testutil.SetupApp(t)
	author := testutil.CreateUser(t, db, "author", models.RoleUser)
	stranger := testutil.CreateUser(t, db, "stranger", models.RoleModerator)
	loc := testutil.CreateLocation(t, db, "L1", nil)
	review := models.Review{UserID: author.ID, LocationID: loc.ID, Rating: 4}
	require.NoError(t, db.Create(&review).Error)

	token := testutil.TokenFor(t, stranger)
	resp := testutil.Request(t, app, "POST", fmt.Sprintf("/review/delete/%d", review.ID), token, nil)

	// Page flow: the caller is sent back with a notice, the review stays.
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/location/%d/reviews", loc.ID), resp.Header.Get("Location"))

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
