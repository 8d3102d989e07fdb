// Package envelope defines the uniform JSON wrapper every endpoint returns:
// {data, message, timestamp} on success, {error, timestamp, path} on failure.
package envelope

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Success wraps endpoint payloads.
type Success struct {
	Data      any    `json:"data"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Failure wraps every error response so clients can branch uniformly on
// error.statusCode.
type Failure struct {
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
	Path      string    `json:"path"`
}

type ErrorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Now returns the RFC3339 UTC timestamp stamped into envelopes.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// OK writes a 200 success envelope.
func OK(c *fiber.Ctx, data any, message string) error {
	return OKAt(c, data, message, Now())
}

// OKAt is OK with an explicit timestamp, for handlers that derive other
// times (token expiry, delivery estimates) from the same instant.
func OKAt(c *fiber.Ctx, data any, message, timestamp string) error {
	return c.JSON(Success{Data: data, Message: message, Timestamp: timestamp})
}

// Fail writes a failure envelope with the given status code.
func Fail(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Failure{
		Error:     ErrorBody{Message: message, StatusCode: statusCode},
		Timestamp: Now(),
		Path:      c.Path(),
	})
}
