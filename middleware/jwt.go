package middleware

import (
	"fmt"
	"strings"
	"time"

	"geodir/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// TokenCookie is the cookie carrying the auth token for page flows.
const TokenCookie = "token"

// extractToken pulls the raw token from the Authorization header or,
// for page navigation, the token cookie.
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):]
	}
	return c.Cookies(TokenCookie)
}

// parseToken validates the token and returns the caller's user id.
func parseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, fmt.Errorf("invalid token payload")
	}

	userID, ok := claims["userId"].(float64) // JWT numbers decode as float64
	if !ok {
		return 0, fmt.Errorf("invalid token payload")
	}
	return uint(userID), nil
}

// JWTMiddleware guards JSON routes: unauthenticated callers get a 401
// with the fixed {"error": "unauthorized"} body.
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	userID, err := parseToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals("userId", userID)
	return c.Next()
}

// PageAuthMiddleware guards page routes: unauthenticated callers are
// redirected to the login page with a flash notice.
func PageAuthMiddleware(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString != "" {
		if userID, err := parseToken(tokenString); err == nil {
			c.Locals("userId", userID)
			return c.Next()
		}
	}

	SetFlash(c, "Please log in first")
	return c.Redirect("/login")
}

// OptionalAuthMiddleware resolves identity when a token is present but
// never rejects the request. Used on public pages that personalize their
// payload (e.g. the favorite flag on a location page).
func OptionalAuthMiddleware(c *fiber.Ctx) error {
	if tokenString := extractToken(c); tokenString != "" {
		if userID, err := parseToken(tokenString); err == nil {
			c.Locals("userId", userID)
		}
	}
	return c.Next()
}

// JsonResponse writes the shared response envelope. Extra fields are
// merged into the top-level object next to status/msg.
func JsonResponse(c *fiber.Ctx, statusCode int, status string, msg string, data fiber.Map) error {
	payload := fiber.Map{"status": status}
	if msg != "" {
		payload["msg"] = msg
	}
	for k, v := range data {
		payload[k] = v
	}
	return c.Status(statusCode).JSON(payload)
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, "error", "Validation failed!", fiber.Map{"errors": errors})
}
