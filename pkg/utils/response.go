package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every JSON endpoint uses. Error carries a stable
// machine-readable code; Message is human-readable.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ========== Error Code Constants ==========

const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeMissingParameter   = "MISSING_PARAMETER"
	ErrCodeTypeMismatch       = "TYPE_MISMATCH"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInternalError      = "INTERNAL_SERVER_ERROR"

	// Domain codes surfaced from the file service.
	ErrCodeEmptyFile           = "EMPTY_FILE"
	ErrCodeFileTooLarge        = "FILE_TOO_LARGE"
	ErrCodeExtensionNotAllowed = "EXTENSION_NOT_ALLOWED"
	ErrCodeStorage             = "STORAGE_ERROR"
)

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
		Error:   code,
	})
}

func BadRequestResponse(c *fiber.Ctx, code, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, code, message)
}

func ValidationErrorResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeValidation, message)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, ErrCodeUnauthorized, message)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, ErrCodeNotFound, message)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, ErrCodeInternalError, "Internal server error")
}
