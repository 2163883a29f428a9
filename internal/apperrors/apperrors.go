// Package apperrors defines the operational error taxonomy used by the API.
// Operational errors describe anticipated failures (bad input, missing
// records, insufficient privilege) that are safe to surface to clients, as
// opposed to programming defects which are masked as generic 500s by the
// error-formatting middleware.
package apperrors

import "net/http"

// AppError is an operational application error carrying an HTTP status code
// and a derived status string ("fail" for 4xx, "error" otherwise).
type AppError struct {
	Message     string `json:"message"`
	StatusCode  int    `json:"-"`
	Status      string `json:"status"`
	Operational bool   `json:"-"`
}

func (e *AppError) Error() string { return e.Message }

// New builds an operational error for the given status code.
func New(message string, statusCode int) *AppError {
	status := "error"
	if statusCode >= 400 && statusCode < 500 {
		status = "fail"
	}
	return &AppError{
		Message:     message,
		StatusCode:  statusCode,
		Status:      status,
		Operational: true,
	}
}

// Forbidden returns a 403 error. An empty message selects the default.
func Forbidden(message string) *AppError {
	if message == "" {
		message = "Forbidden access"
	}
	return New(message, http.StatusForbidden)
}

// Unauthorized returns a 401 error. An empty message selects the default.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "Unauthorized access"
	}
	return New(message, http.StatusUnauthorized)
}

// Validation returns a 400 error. An empty message selects the default.
func Validation(message string) *AppError {
	if message == "" {
		message = "Validation error"
	}
	return New(message, http.StatusBadRequest)
}

// NotFound returns a 404 error. An empty message selects the default.
func NotFound(message string) *AppError {
	if message == "" {
		message = "Resource not found"
	}
	return New(message, http.StatusNotFound)
}
