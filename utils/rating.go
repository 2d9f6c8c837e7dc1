package utils

import (
	"math"

	"geodir/models"
)

// AverageRating returns the mean rating rounded to one decimal place,
// or 0 when there are no reviews.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}
