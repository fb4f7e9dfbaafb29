// Package errors provides RFC 7807 Problem Details for HTTP APIs.
package errors

import (
	"fmt"
	"net/http"
)

// ProblemDetail represents an RFC 7807 Problem Details response.
// See: https://www.rfc-editor.org/rfc/rfc7807
type ProblemDetail struct {
	// Type is a URI reference that identifies the problem type. It is the
	// stable failure kind callers may branch on.
	Type string `json:"type"`
	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`
	// Status is the HTTP status code for this occurrence.
	Status int `json:"status"`
	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`
	// Instance is a URI reference that identifies the specific occurrence.
	Instance string `json:"instance,omitempty"`
	// Extensions holds additional problem-specific properties.
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Error implements the error interface.
func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

// WithDetail returns a copy with the given detail message.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithInstance returns a copy with the given instance URI.
func (p ProblemDetail) WithInstance(instance string) ProblemDetail {
	p.Instance = instance
	return p
}

// WithExtension returns a copy with an additional extension property.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	if p.Extensions == nil {
		p.Extensions = make(map[string]any)
	}
	p.Extensions[key] = value
	return p
}

// Problem types as URI references, one per failure kind.
const (
	TypeValidation        = "/problems/validation-error"
	TypeNotFound          = "/problems/not-found"
	TypeDuplicateID       = "/problems/duplicate-id"
	TypeDuplicateUsername = "/problems/duplicate-username"
	TypeDuplicateValue    = "/problems/duplicate-value"
	TypeInvalidDateFormat = "/problems/invalid-date-format"
	TypeInvalidCredential = "/problems/invalid-credential"
	TypeBadRequest        = "/problems/bad-request"
	TypeInternal          = "/problems/internal-error"
)

// Pre-defined problem templates for the failure taxonomy.
var (
	// ErrValidation indicates the request failed schema validation.
	ErrValidation = ProblemDetail{
		Type:   TypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
	}

	// ErrNotFound indicates the referenced id or username is absent.
	ErrNotFound = ProblemDetail{
		Type:   TypeNotFound,
		Title:  "Resource Not Found",
		Status: http.StatusNotFound,
	}

	// ErrDuplicateID indicates the unique id constraint was violated.
	ErrDuplicateID = ProblemDetail{
		Type:   TypeDuplicateID,
		Title:  "Duplicate Id",
		Status: http.StatusConflict,
	}

	// ErrDuplicateUsername indicates the unique username constraint was violated.
	ErrDuplicateUsername = ProblemDetail{
		Type:   TypeDuplicateUsername,
		Title:  "Duplicate Username",
		Status: http.StatusConflict,
	}

	// ErrDuplicateValue indicates a value-level uniqueness rule was violated.
	ErrDuplicateValue = ProblemDetail{
		Type:   TypeDuplicateValue,
		Title:  "Duplicate Value",
		Status: http.StatusConflict,
	}

	// ErrInvalidDateFormat indicates an unparseable timestamp field.
	ErrInvalidDateFormat = ProblemDetail{
		Type:   TypeInvalidDateFormat,
		Title:  "Invalid Date Format",
		Status: http.StatusBadRequest,
	}

	// ErrInvalidCredential indicates a failed credential check.
	ErrInvalidCredential = ProblemDetail{
		Type:   TypeInvalidCredential,
		Title:  "Invalid Credential",
		Status: http.StatusUnauthorized,
	}

	// ErrBadRequest indicates the request was malformed.
	ErrBadRequest = ProblemDetail{
		Type:   TypeBadRequest,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
	}

	// ErrInternal indicates an unexpected storage or server error.
	ErrInternal = ProblemDetail{
		Type:   TypeInternal,
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
	}
)

// NewValidationProblem creates a validation error with field-level details.
func NewValidationProblem(fieldErrors map[string]string) ProblemDetail {
	return ErrValidation.WithExtension("fields", fieldErrors)
}

// NewNotFoundProblem creates a not found error for a specific resource.
func NewNotFoundProblem(resourceType string, identifier any) ProblemDetail {
	return ErrNotFound.
		WithDetail(fmt.Sprintf("%s with identifier '%v' not found", resourceType, identifier)).
		WithExtension("resourceType", resourceType).
		WithExtension("identifier", identifier)
}
