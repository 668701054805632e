package validate

import "errors"

// Rule failures. Each is wrapped with the offending field name; use
// errors.Is to branch on the failure kind.
var (
	ErrRequired     = errors.New("validate: value is required")
	ErrTooShort     = errors.New("validate: value is too short")
	ErrTooLong      = errors.New("validate: value is too long")
	ErrInvalidEmail = errors.New("validate: invalid email address")
	ErrInvalidURL   = errors.New("validate: invalid URL")
	ErrInvalidUUID  = errors.New("validate: invalid UUID")
	ErrInvalidIP    = errors.New("validate: invalid IP address")
	ErrInvalidLuhn  = errors.New("validate: invalid checksum")
)
