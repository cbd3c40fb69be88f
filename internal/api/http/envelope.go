package httpapi

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// envelope is the body of every /api response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func success(c *fiber.Ctx, data any) error {
	return c.JSON(envelope{Success: true, Data: data})
}

// ErrorHandler renders every failure as {success:false, error}. Routing errors
// keep their status; component errors are all reported as 400.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusBadRequest

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else {
		log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(envelope{
		Success: false,
		Error:   err.Error(),
	})
}
