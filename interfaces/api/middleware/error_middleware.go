package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"file-gateway/pkg/logger"
	"file-gateway/pkg/utils"
)

// ErrorHandler is the fiber-level catch-all. Framework errors get stable
// codes; anything uncategorized becomes a generic 500 with detail only in
// the logs.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeInvalidRequestBody
				message = fiberErr.Message
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
				message = fiberErr.Message
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
				message = "Resource not found"
			case fiber.StatusMethodNotAllowed:
				errCode = utils.ErrCodeMethodNotAllowed
				message = "HTTP method not supported"
			case fiber.StatusRequestEntityTooLarge:
				errCode = utils.ErrCodeFileTooLarge
				message = "Request body too large"
			default:
				message = fiberErr.Message
			}
		}

		if code >= 500 {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err, "path", c.Path())
		} else {
			logger.WarnContext(c.UserContext(), "Request error", "error", err, "path", c.Path())
		}

		return utils.ErrorResponse(c, code, errCode, message)
	}
}
