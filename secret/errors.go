package secret

import "errors"

// Resolution errors. Use errors.Is to branch on them.
var (
	ErrMissingEnv            = errors.New("secret: missing required environment variables")
	ErrInvalidRegistration   = errors.New("secret: invalid provider registration")
	ErrProviderNameRequired  = errors.New("secret: provider name is required")
	ErrProviderNotRegistered = errors.New("secret: provider is not registered")
	ErrRefRequired           = errors.New("secret: ref is required")
	ErrUnknownRef            = errors.New("secret: unknown ref")
	ErrEmptySecret           = errors.New("secret: provider returned empty value")
)
