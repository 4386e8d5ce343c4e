package utils

import (
	"errors"
	"net/http"

	"eduadmin/backend/curriculum"
	"eduadmin/backend/listing"
	"eduadmin/backend/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrConflict marks a write that clashes with stored state (duplicate code,
// full batch, not enough coins).
var ErrConflict = errors.New("conflict")

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func Success(c *fiber.Ctx, status int, data interface{}, meta ...interface{}) error {
	response := SuccessResponse{
		Success: true,
		Data:    data,
	}

	if len(meta) > 0 {
		response.Meta = meta[0]
	}

	return c.Status(status).JSON(response)
}

func Error(c *fiber.Ctx, status int, err error, details ...interface{}) error {
	response := ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: err.Error(),
	}

	if len(details) > 0 {
		response.Details = details[0]
	}

	return c.Status(status).JSON(response)
}

type PaginatedResponse[T any] struct {
	Success bool `json:"success"`
	listing.Page[T]
}

func Paginate[T any](c *fiber.Ctx, page listing.Page[T]) error {
	return c.JSON(PaginatedResponse[T]{Success: true, Page: page})
}

// ValidationError answers 422 with the broken rules keyed by field.
func ValidationError(c *fiber.Ctx, err error) error {
	details := map[string]string{}
	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		details = ve.Map()
	} else if err != nil {
		details["body"] = err.Error()
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success: false,
		Error:   "Validation Error",
		Details: details,
	})
}

// Fail picks the status for err and answers with it.
func Fail(c *fiber.Ctx, err error) error {
	var ve *validation.ValidationError
	var fe *fiber.Error
	switch {
	case errors.As(err, &ve):
		return ValidationError(c, ve)
	case errors.As(err, &fe):
		return Error(c, fe.Code, fe)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(c, "Record not found")
	case errors.Is(err, curriculum.ErrNodeNotFound):
		return Error(c, fiber.StatusNotFound, err)
	case errors.Is(err, ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return Error(c, fiber.StatusConflict, err)
	case errors.Is(err, curriculum.ErrUnknownField), errors.Is(err, curriculum.ErrInvalidValue),
		errors.Is(err, curriculum.ErrUnknownMedia), errors.Is(err, curriculum.ErrUnknownOp),
		errors.Is(err, curriculum.ErrSelectionEnded):
		return Error(c, fiber.StatusUnprocessableEntity, err)
	default:
		return Error(c, fiber.StatusInternalServerError, err)
	}
}

// ErrorHandler is the app-wide fiber error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return Fail(c, err)
}

func Created(c *fiber.Ctx, data interface{}) error {
	return Success(c, fiber.StatusCreated, data)
}

func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, fiber.NewError(fiber.StatusNotFound, message))
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, fiber.NewError(fiber.StatusBadRequest, message))
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, fiber.NewError(fiber.StatusUnauthorized, message))
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, fiber.NewError(fiber.StatusForbidden, message))
}

func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, fiber.NewError(fiber.StatusConflict, message))
}

func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, fiber.NewError(fiber.StatusInternalServerError, message))
}
