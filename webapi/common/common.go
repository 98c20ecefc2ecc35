// Package common holds the shared HTTP plumbing: the success envelope,
// RFC 9457 problem responses, request binding/validation and the mapping
// from domain errors to status codes.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jamadeu/multicontas/pkg/domain"
	"github.com/jamadeu/multicontas/pkg/domain/money"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// `cpf` mirrors the checksum validation applied in the domain, so
	// malformed documents are rejected before any store access.
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return domain.ValidateCPF(fl.Field().String()) == nil
	})
	return v
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	if status == fiber.StatusNoContent {
		return c.SendStatus(status)
	}
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. Extras may carry
// a detail string and an explicit status code; when no status is given the
// error is mapped through ErrorToStatusCode.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, extras ...any) error {
	status := 0
	pd := ProblemDetails{
		Type:  "about:blank",
		Title: title,
	}
	for _, extra := range extras {
		switch v := extra.(type) {
		case string:
			pd.Detail = v
		case int:
			status = v
		}
	}
	if status == 0 {
		status = ErrorToStatusCode(err)
	}
	if pd.Detail == "" && err != nil {
		pd.Detail = err.Error()
	}
	pd.Status = status
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")

	return c.Status(status).JSON(pd)
}

// ErrorToStatusCode maps domain errors to HTTP status codes. Duplicate
// keys map to 400, matching the surface this API has always exposed.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidCPF),
		errors.Is(err, domain.ErrNegativeBalance),
		errors.Is(err, domain.ErrDepositAmountMustBePositive),
		errors.Is(err, domain.ErrDepositAmountExceedsMaxSafeInt),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrTooManyDecimals),
		errors.Is(err, money.ErrAmountExceedsMaxSafeInt):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. Returns a pointer to the populated struct, or
// writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}
