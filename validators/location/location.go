package locationValidator

import (
	"geodir/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type addLocationRequest struct {
	Name string  `json:"name" form:"name" validate:"required"`
	Lat  float64 `json:"lat" form:"lat" validate:"required"`
	Lng  float64 `json:"lng" form:"lng" validate:"required"`
}

// AddLocation validator middleware for the staff endpoint: name and both
// coordinates are mandatory.
func AddLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(addLocationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "This field is required!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

type addMyLocationRequest struct {
	Name    string  `json:"name" form:"name" validate:"required"`
	Lat     float64 `json:"lat" form:"lat"`
	Lng     float64 `json:"lng" form:"lng"`
	Address string  `json:"address" form:"address"`
}

// AddMyLocation validator middleware for owner submissions: coordinates
// may be omitted when an address is given (the geocoder fills them in).
func AddMyLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(addMyLocationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "This field is required!"
			}
		}
		if reqData.Lat == 0 && reqData.Lng == 0 && reqData.Address == "" {
			errors["lat"] = "Coordinates or an address are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
