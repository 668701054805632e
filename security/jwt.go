package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token defaults.
const (
	// DefaultTokenTTL is the token lifetime when Issue receives a zero ttl.
	DefaultTokenTTL = time.Hour

	// DefaultLeeway is the clock-skew tolerance applied during verification.
	DefaultLeeway = 30 * time.Second
)

// TokenConfig configures a TokenIssuer.
type TokenConfig struct {
	// Key is the HMAC-SHA256 signing secret. Required.
	Key []byte

	// Issuer is stamped on issued tokens (iss claim) and enforced during
	// verification when non-empty.
	Issuer string

	// Audience is stamped on issued tokens (aud claim) and enforced during
	// verification when non-empty.
	Audience string

	// TTL is the default token lifetime.
	// Default: 1h.
	TTL time.Duration

	// Leeway tolerates clock skew when validating time claims.
	// Default: 30s.
	Leeway time.Duration
}

// TokenClaims carries the verified contents of a token.
type TokenClaims struct {
	Subject   string
	Issuer    string
	ExpiresAt time.Time
	IssuedAt  time.Time

	// Custom holds all non-registered claims.
	Custom map[string]any
}

// TokenIssuer issues and verifies HS256-signed tokens.
//
// Contract:
//   - Concurrency: safe for concurrent use.
//   - Errors: Verify returns ErrTokenExpired for expired tokens and
//     ErrTokenInvalid (wrapped with detail) for every other failure.
type TokenIssuer struct {
	config TokenConfig

	now func() time.Time
}

// NewTokenIssuer creates a TokenIssuer. The signing key is required; zero
// durations fall back to defaults.
func NewTokenIssuer(config TokenConfig) (*TokenIssuer, error) {
	if len(config.Key) == 0 {
		return nil, ErrMissingKey
	}
	if config.TTL <= 0 {
		config.TTL = DefaultTokenTTL
	}
	if config.Leeway <= 0 {
		config.Leeway = DefaultLeeway
	}

	return &TokenIssuer{
		config: config,
		now:    time.Now,
	}, nil
}

// reservedClaims are always set by Issue and cannot be overridden by custom
// claims.
var reservedClaims = map[string]bool{
	"sub": true,
	"iss": true,
	"aud": true,
	"exp": true,
	"iat": true,
}

// Issue creates a signed token for the subject. Custom claims are merged in;
// reserved claim names (sub, iss, aud, exp, iat) are skipped. A zero ttl uses
// the configured default.
func (i *TokenIssuer) Issue(subject string, custom map[string]any, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}
	if ttl <= 0 {
		ttl = i.config.TTL
	}

	now := i.now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if i.config.Issuer != "" {
		claims["iss"] = i.config.Issuer
	}
	if i.config.Audience != "" {
		claims["aud"] = i.config.Audience
	}
	for k, v := range custom {
		if reservedClaims[k] {
			continue
		}
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.config.Key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token produced by Issue. Signature, expiry,
// and the configured issuer and audience are all enforced.
func (i *TokenIssuer) Verify(tokenString string) (*TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithLeeway(i.config.Leeway),
		jwt.WithExpirationRequired(),
	}
	if i.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.config.Issuer))
	}
	if i.config.Audience != "" {
		opts = append(opts, jwt.WithAudience(i.config.Audience))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return i.config.Key, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return claimsFromMap(claims), nil
}

func claimsFromMap(claims jwt.MapClaims) *TokenClaims {
	tc := &TokenClaims{
		Custom: make(map[string]any),
	}

	for k, v := range claims {
		switch k {
		case "sub":
			if s, ok := v.(string); ok {
				tc.Subject = s
			}
		case "iss":
			if s, ok := v.(string); ok {
				tc.Issuer = s
			}
		case "exp":
			if f, ok := v.(float64); ok {
				tc.ExpiresAt = time.Unix(int64(f), 0)
			}
		case "iat":
			if f, ok := v.(float64); ok {
				tc.IssuedAt = time.Unix(int64(f), 0)
			}
		case "aud":
			// Enforced by the parser; not surfaced on TokenClaims.
		default:
			tc.Custom[k] = v
		}
	}

	return tc
}
