package services

import (
	"fmt"
	"log"
	"time"

	"geodir/database"
	"geodir/models"

	"github.com/robfig/cron/v3"
)

func logCleanup(message string) {
	log.Printf("[CLEANUP %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartCleanupScheduler runs the orphan sweep once a day. The schema's
// cascade rules keep new rows consistent; the sweep covers rows created
// before the constraints existed.
func StartCleanupScheduler() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@daily", SweepOrphans); err != nil {
		log.Fatalf("Failed to schedule cleanup job: %v", err)
	}
	c.Start()
	logCleanup("Scheduler started")
	return c
}

// SweepOrphans deletes favorites and reviews whose location or user no
// longer exists.
func SweepOrphans() {
	db := database.Database.Db

	res := db.Unscoped().
		Where("location_id NOT IN (?)", db.Model(&models.Location{}).Select("id")).
		Or("user_id NOT IN (?)", db.Model(&models.User{}).Select("id")).
		Delete(&models.Favorite{})
	if res.Error != nil {
		logCleanup("Error sweeping favorites: " + res.Error.Error())
	} else if res.RowsAffected > 0 {
		logCleanup(fmt.Sprintf("Removed %d orphaned favorites", res.RowsAffected))
	}

	res = db.Unscoped().
		Where("location_id NOT IN (?)", db.Model(&models.Location{}).Select("id")).
		Or("user_id NOT IN (?)", db.Model(&models.User{}).Select("id")).
		Delete(&models.Review{})
	if res.Error != nil {
		logCleanup("Error sweeping reviews: " + res.Error.Error())
	} else if res.RowsAffected > 0 {
		logCleanup(fmt.Sprintf("Removed %d orphaned reviews", res.RowsAffected))
	}
}
