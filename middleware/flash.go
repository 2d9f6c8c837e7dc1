package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// SetFlash stores a one-shot notice shown on the next page render.
func SetFlash(c *fiber.Ctx, msg string) {
	c.Cookie(&fiber.Cookie{
		Name:    flashCookie,
		Value:   msg,
		Path:    "/",
		Expires: time.Now().Add(5 * time.Minute),
	})
}

// TakeFlash returns the pending notice, if any, and clears it.
func TakeFlash(c *fiber.Ctx) string {
	msg := c.Cookies(flashCookie)
	if msg != "" {
		c.Cookie(&fiber.Cookie{
			Name:    flashCookie,
			Value:   "",
			Path:    "/",
			Expires: time.Now().Add(-time.Hour),
		})
	}
	return msg
}
