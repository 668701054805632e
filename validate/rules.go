package validate

import (
	"fmt"
	"net/mail"
	"net/netip"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Required fails when value is empty or only whitespace.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: field %q", ErrRequired, field)
	}
	return nil
}

// MinLen fails when value has fewer than min runes.
func MinLen(field, value string, min int) error {
	if utf8.RuneCountInString(value) < min {
		return fmt.Errorf("%w: field %q (min %d)", ErrTooShort, field, min)
	}
	return nil
}

// MaxLen fails when value has more than max runes.
func MaxLen(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: field %q (max %d)", ErrTooLong, field, max)
	}
	return nil
}

// Email fails unless value is a bare RFC 5322 address. Display-name
// forms like `Alice <alice@example.com>` are rejected; the field must
// hold just the address.
func Email(field, value string) error {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return fmt.Errorf("%w: field %q", ErrInvalidEmail, field)
	}
	return nil
}

// URL fails unless value parses as an absolute URL with both a scheme
// and a host.
func URL(field, value string) error {
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: field %q", ErrInvalidURL, field)
	}
	return nil
}

// UUID fails unless value parses as a UUID. All forms accepted by
// uuid.Parse are valid, including the canonical hyphenated form.
func UUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%w: field %q", ErrInvalidUUID, field)
	}
	return nil
}

// IP fails unless value is a valid IPv4 or IPv6 address.
func IP(field, value string) error {
	if _, err := netip.ParseAddr(value); err != nil {
		return fmt.Errorf("%w: field %q", ErrInvalidIP, field)
	}
	return nil
}

// IPv4 fails unless value is a valid IPv4 address in dotted-quad form.
func IPv4(field, value string) error {
	addr, err := netip.ParseAddr(value)
	if err != nil || !addr.Is4() {
		return fmt.Errorf("%w: field %q", ErrInvalidIP, field)
	}
	return nil
}

// IPv6 fails unless value is a valid IPv6 address. IPv4-mapped forms
// such as "::ffff:192.0.2.1" count as IPv6.
func IPv6(field, value string) error {
	addr, err := netip.ParseAddr(value)
	if err != nil || !addr.Is6() {
		return fmt.Errorf("%w: field %q", ErrInvalidIP, field)
	}
	return nil
}
