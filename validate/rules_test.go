package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"non-empty", "hello", false},
		{"empty", "", true},
		{"whitespace only", "   \t\n", true},
		{"whitespace padded", "  x  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required("name", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Required(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrRequired) {
				t.Errorf("error = %v, want ErrRequired", err)
			}
		})
	}
}

func TestMinLenAndMaxLen(t *testing.T) {
	if err := MinLen("password", "secret", 6); err != nil {
		t.Errorf("MinLen at boundary error = %v", err)
	}
	if err := MinLen("password", "short", 6); !errors.Is(err, ErrTooShort) {
		t.Errorf("error = %v, want ErrTooShort", err)
	}
	if err := MaxLen("bio", "fits", 10); err != nil {
		t.Errorf("MaxLen under limit error = %v", err)
	}
	if err := MaxLen("bio", "this is far too long", 10); !errors.Is(err, ErrTooLong) {
		t.Errorf("error = %v, want ErrTooLong", err)
	}

	// Limits count runes, not bytes.
	if err := MinLen("name", "héllo", 5); err != nil {
		t.Errorf("MinLen with multibyte input error = %v", err)
	}
	if err := MaxLen("name", "héllo", 5); err != nil {
		t.Errorf("MaxLen with multibyte input error = %v", err)
	}
}

func TestEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.example.co.uk",
		"x@localhost",
	}
	for _, v := range valid {
		if err := Email("email", v); err != nil {
			t.Errorf("Email(%q) error = %v, want nil", v, err)
		}
	}

	invalid := []string{
		"",
		"plainstring",
		"@missing-local.com",
		"alice@",
		"double@@example.com",
		"Alice <alice@example.com>",
	}
	for _, v := range invalid {
		err := Email("email", v)
		if !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("Email(%q) error = %v, want ErrInvalidEmail", v, err)
		}
	}
}

func TestURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://example.com/path?q=1",
		"postgres://db.internal:5432/orders",
	}
	for _, v := range valid {
		if err := URL("endpoint", v); err != nil {
			t.Errorf("URL(%q) error = %v, want nil", v, err)
		}
	}

	invalid := []string{
		"",
		"example.com",
		"/relative/path",
		"https://",
		"mailto:alice@example.com",
	}
	for _, v := range invalid {
		err := URL("endpoint", v)
		if !errors.Is(err, ErrInvalidURL) {
			t.Errorf("URL(%q) error = %v, want ErrInvalidURL", v, err)
		}
	}
}

func TestUUID(t *testing.T) {
	valid := []string{
		"550e8400-e29b-41d4-a716-446655440000",
		"00000000-0000-0000-0000-000000000000",
	}
	for _, v := range valid {
		if err := UUID("id", v); err != nil {
			t.Errorf("UUID(%q) error = %v, want nil", v, err)
		}
	}

	invalid := []string{
		"",
		"not-a-uuid",
		"550e8400-e29b-41d4-a716",
		"550e8400-e29b-41d4-a716-44665544000z",
	}
	for _, v := range invalid {
		err := UUID("id", v)
		if !errors.Is(err, ErrInvalidUUID) {
			t.Errorf("UUID(%q) error = %v, want ErrInvalidUUID", v, err)
		}
	}
}

func TestIP(t *testing.T) {
	t.Run("any family", func(t *testing.T) {
		for _, v := range []string{"192.0.2.1", "::1", "2001:db8::8a2e:370:7334"} {
			if err := IP("addr", v); err != nil {
				t.Errorf("IP(%q) error = %v, want nil", v, err)
			}
		}
		for _, v := range []string{"", "256.1.1.1", "not-an-ip", "192.0.2"} {
			if err := IP("addr", v); !errors.Is(err, ErrInvalidIP) {
				t.Errorf("IP(%q) error = %v, want ErrInvalidIP", v, err)
			}
		}
	})

	t.Run("v4 only", func(t *testing.T) {
		if err := IPv4("addr", "192.0.2.1"); err != nil {
			t.Errorf("IPv4 error = %v, want nil", err)
		}
		for _, v := range []string{"::1", "::ffff:192.0.2.1", "999.0.2.1"} {
			if err := IPv4("addr", v); !errors.Is(err, ErrInvalidIP) {
				t.Errorf("IPv4(%q) error = %v, want ErrInvalidIP", v, err)
			}
		}
	})

	t.Run("v6 only", func(t *testing.T) {
		for _, v := range []string{"::1", "2001:db8::1", "::ffff:192.0.2.1"} {
			if err := IPv6("addr", v); err != nil {
				t.Errorf("IPv6(%q) error = %v, want nil", v, err)
			}
		}
		if err := IPv6("addr", "192.0.2.1"); !errors.Is(err, ErrInvalidIP) {
			t.Errorf("IPv6 with v4 input error = %v, want ErrInvalidIP", err)
		}
	})
}

func TestErrorsCarryFieldContext(t *testing.T) {
	err := Email("contact_email", "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `field "contact_email"`) {
		t.Errorf("Error() = %q, want it to name the field", err.Error())
	}
}
