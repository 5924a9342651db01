package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes for domain validation failures.
const (
	CodeDuplicateIdentity = "DUPLICATE_IDENTITY"
	CodeUnknownIdentity   = "UNKNOWN_IDENTITY"
	CodeMissingField      = "MISSING_REQUIRED_FIELD"
	CodeUnknownProfile    = "UNKNOWN_PROFILE"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidReference  = "INVALID_REFERENCE"
	CodeValidation        = "VALIDATION_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInternal          = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized API error body. Every response carries
// success and reason; Fields holds per-field validation messages.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Reason  string            `json:"reason"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Details string            `json:"details,omitempty"`
}

// AppError represents a custom application error.
type AppError struct {
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDuplicateIdentityError reports a registration against a taken username or email.
func NewDuplicateIdentityError() *AppError {
	return &AppError{
		Code:    CodeDuplicateIdentity,
		Message: "This user is already registered",
	}
}

// NewUnknownIdentityError reports a login identifier that matches no user.
func NewUnknownIdentityError() *AppError {
	return &AppError{
		Code:    CodeUnknownIdentity,
		Message: "This is not a registered user",
	}
}

// NewMissingFieldError reports absent required fields with a per-field message.
func NewMissingFieldError(fields ...string) *AppError {
	msgs := make(map[string]string, len(fields))
	for _, f := range fields {
		msgs[f] = "This field is required"
	}
	return &AppError{
		Code:    CodeMissingField,
		Message: "Required fields are missing",
		Fields:  msgs,
	}
}

// NewUnknownProfileError reports an unresolvable profile reference.
func NewUnknownProfileError(id uint) *AppError {
	return &AppError{
		Code:    CodeUnknownProfile,
		Message: fmt.Sprintf("Profile %d does not exist", id),
	}
}

// NewNotFoundError reports a supplied identifier that resolves to nothing.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewInvalidReferenceError reports an unresolvable cross-entity reference.
func NewInvalidReferenceError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidReference,
		Message: message,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// HTTPStatus maps an error to its HTTP status. Domain validation failures are
// all surfaced as 400; anything unrecognized is treated as internal.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeInternal:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}

// RespondWithError writes a standardized error response.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Reason: appErr.Message,
			Code:   appErr.Code,
			Fields: appErr.Fields,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Reason: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}

// RespondError is shorthand for RespondWithError with the status derived
// from the error itself.
func RespondError(c *fiber.Ctx, err error) error {
	return RespondWithError(c, HTTPStatus(err), err)
}
