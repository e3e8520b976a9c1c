package middleware

import (
	"fmt"
	"strings"
	"time"

	"learnhub/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user. Token issuance lives
// with the external auth provider in production; this documents the
// contract and backs the test suite.
func GenerateJWT(userID uint, name, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for a valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return Error(c, fiber.StatusUnauthorized, "Authentication required", "")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return Error(c, fiber.StatusUnauthorized, "Invalid Authorization header format", "")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return Error(c, fiber.StatusUnauthorized, "Invalid or expired token", "")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Error(c, fiber.StatusUnauthorized, "Invalid token payload", "")
	}

	// JWT numbers decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return Error(c, fiber.StatusUnauthorized, "Invalid token payload", "")
	}
	c.Locals("userId", uint(userID))

	return c.Next()
}

// Error writes the uniform {error, code} failure body. The code is
// omitted where the source contract has none (auth failures, plain 404s).
func Error(c *fiber.Ctx, statusCode int, message, code string) error {
	body := fiber.Map{"error": message}
	if code != "" {
		body["code"] = code
	}
	return c.Status(statusCode).JSON(body)
}

// JSON writes a success payload as-is.
func JSON(c *fiber.Ctx, statusCode int, payload interface{}) error {
	return c.Status(statusCode).JSON(payload)
}

// Internal surfaces the raw error text on a 500. Leaking internal error
// strings to clients is a known hardening gap carried over from the
// source contract.
func Internal(c *fiber.Ctx, err error) error {
	return Error(c, fiber.StatusInternalServerError, "Internal server error: "+err.Error(), "")
}
