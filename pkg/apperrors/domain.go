package apperrors

import (
	"fmt"
	"net/http"
)

// Factories and predefined errors for the marketplace domain.

// ErrNotFound converts a repository "record not found" into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrInvalidTransition rejects a status change the workflow does not permit.
// Reported as a conflict: the entity exists but is in the wrong state.
func ErrInvalidTransition(domain, from, to string) *AppError {
	return New(
		CodeInvalidTransition,
		domain,
		fmt.Sprintf("Transition from %s to %s is not allowed", from, to),
		http.StatusConflict,
	)
}

// --- Auth & users ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists is a 400 (not 409): the public API contract reports
// duplicate registration as a validation-class failure.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already exists",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrUserBanned = New(
	CodeForbidden,
	"auth",
	"Your account has been banned",
	http.StatusForbidden,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrCannotModifySelf guards moderation endpoints against an admin changing
// or deleting their own account.
var ErrCannotModifySelf = New(
	CodeForbidden,
	"moderation",
	"Operation on own account is not allowed",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Jobs & applications ---

var ErrRejectionReasonRequired = New(
	CodeValidationFailed,
	"moderation",
	"A rejection reason is required",
	http.StatusBadRequest,
)

var ErrNotJobOwner = New(
	CodeForbidden,
	"jobs",
	"Job belongs to a different employer",
	http.StatusForbidden,
)

var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"applications",
	"You have already applied to this job",
	http.StatusBadRequest,
)

// --- Subscriptions ---

var ErrSubscriptionLimit = New(
	CodeLimitExceeded,
	"subscription",
	"Subscription limit for this feature has been reached",
	http.StatusForbidden,
)

var ErrPlanNotFound = New(
	CodeNotFound,
	"subscription",
	"Plan not found",
	http.StatusNotFound,
)
