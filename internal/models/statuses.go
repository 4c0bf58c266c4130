package models

type UserRole string
type UserStatus string
type JobStatus string
type ApplicationStatus string
type SubscriptionStatus string
type PaymentStatus string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleEmployer  UserRole = "EMPLOYER"
	UserRoleJobSeeker UserRole = "JOB_SEEKER"
	UserRoleModerator UserRole = "MODERATOR"
	UserRoleSupport   UserRole = "SUPPORT"

	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusBanned    UserStatus = "BANNED"
	UserStatusPending   UserStatus = "PENDING"

	JobStatusPending  JobStatus = "PENDING"
	JobStatusApproved JobStatus = "APPROVED"
	JobStatusRejected JobStatus = "REJECTED"
	JobStatusFlagged  JobStatus = "FLAGGED"

	ApplicationStatusApplied     ApplicationStatus = "APPLIED"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
	ApplicationStatusHired       ApplicationStatus = "HIRED"

	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusNone     SubscriptionStatus = "none"

	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// UserRoles and UserStatuses back the custom validator rules.
var UserRoles = []UserRole{
	UserRoleAdmin, UserRoleEmployer, UserRoleJobSeeker, UserRoleModerator, UserRoleSupport,
}

var UserStatuses = []UserStatus{
	UserStatusActive, UserStatusSuspended, UserStatusBanned, UserStatusPending,
}
