package validate

import (
	"errors"
	"testing"
)

func TestLuhn(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"visa test number", "4111111111111111", false},
		{"classic luhn example", "79927398713", false},
		{"formatted with spaces", "4111 1111 1111 1111", false},
		{"formatted with hyphens", "4111-1111-1111-1111", false},
		{"checksum off by one", "4111111111111112", true},
		{"too short", "0", true},
		{"empty", "", true},
		{"letters rejected", "4111a11111111111", true},
		{"amex test number", "378282246310005", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Luhn("card_number", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Luhn(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidLuhn) {
				t.Errorf("error = %v, want ErrInvalidLuhn", err)
			}
		})
	}
}
