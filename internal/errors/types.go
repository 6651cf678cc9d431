// Package errors provides the structured error type shared by the site's
// packages. Errors carry a category, a stable code and optional context so the
// HTTP layer can decide between a fixed 500, a logged warning or a redirect
// without inspecting message strings.
package errors

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeSecurity   ErrorType = "security"
	ErrorTypeAuth       ErrorType = "auth"
	ErrorTypeContent    ErrorType = "content"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// AppError is a structured error type with context.
type AppError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Component   string
	FilePath    string
	Recoverable bool
}

// Error implements the error interface.
func (e *AppError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Component != "" {
		parts = append(parts, "component:"+e.Component)
	}

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	parts = append(parts, e.Message)

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kv := make([]string, 0, len(keys))
		for _, k := range keys {
			kv = append(kv, fmt.Sprintf("%s=%v", k, e.Context[k]))
		}
		parts = append(parts, "("+strings.Join(kv, " ")+")")
	}

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison on type and code.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithFile records the file the error relates to.
func (e *AppError) WithFile(path string) *AppError {
	e.FilePath = path

	return e
}

// WithComponent adds component context.
func (e *AppError) WithComponent(component string) *AppError {
	e.Component = component

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *AppError {
	return &AppError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewSecurityError creates a security error.
func NewSecurityError(code, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeSecurity,
		Code:    code,
		Message: message,
	}
}

// NewAuthError creates an identity-provider error. Auth errors are
// recoverable: the request continues as anonymous.
func NewAuthError(code, message string, cause error) *AppError {
	return &AppError{
		Type:        ErrorTypeAuth,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewContentError creates a content pipeline error.
func NewContentError(code, message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeContent,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewNetworkError creates a transport error.
func NewNetworkError(code, message string, cause error) *AppError {
	return &AppError{
		Type:        ErrorTypeNetwork,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Recoverable
	}

	return false
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Type == t
	}

	return false
}

// IsSecurityError checks if an error is security-related.
func IsSecurityError(err error) bool {
	return IsType(err, ErrorTypeSecurity)
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	return IsType(err, ErrorTypeConfig)
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// ErrorHandler routes errors to the logger at a level matching their type.
type ErrorHandler struct {
	logger Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs err. Recoverable errors are warnings, everything else is an error.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var ae *AppError
	if !errors.As(err, &ae) {
		h.logger.Error(ctx, err, "Unexpected error")
		return
	}

	fields := []interface{}{"type", ae.Type, "code", ae.Code}
	if ae.Component != "" {
		fields = append(fields, "component", ae.Component)
	}

	if ae.Recoverable {
		h.logger.Warn(ctx, err, "Recoverable error", fields...)
		return
	}
	h.logger.Error(ctx, err, "Error", fields...)
}

// Common constructors

// ErrMissingEnv reports a required environment variable that is not set.
func ErrMissingEnv(names ...string) *AppError {
	return NewConfigError("MISSING_ENV",
		"missing required environment variables: "+strings.Join(names, ", "))
}

// ErrInvalidPath reports a configured path that is not usable.
func ErrInvalidPath(path string) *AppError {
	return NewValidationError("INVALID_PATH", "invalid path").
		WithContext("path", path)
}
