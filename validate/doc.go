// Package validate provides field-oriented validation rules for common
// input formats: email addresses, URLs, UUIDs, IP addresses, Luhn
// checksums, and string length constraints.
//
// Every rule takes the field name first and returns nil on success or a
// package sentinel wrapped with the field context, so callers can both
// branch on the kind of failure and report which field failed:
//
//	if err := validate.Email("contact", form.Contact); err != nil {
//		if errors.Is(err, validate.ErrInvalidEmail) {
//			// err reads: validate: invalid email address: field "contact"
//		}
//	}
package validate
