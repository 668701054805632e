package validate

import (
	"fmt"
	"strings"
)

// Luhn fails unless value passes the Luhn checksum used by payment card
// numbers. Spaces and hyphens are ignored, so formatted input like
// "4111 1111 1111 1111" validates.
func Luhn(field, value string) error {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, value)

	if len(digits) < 2 {
		return fmt.Errorf("%w: field %q", ErrInvalidLuhn, field)
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: field %q", ErrInvalidLuhn, field)
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	if sum%10 != 0 {
		return fmt.Errorf("%w: field %q", ErrInvalidLuhn, field)
	}
	return nil
}
