package strutil

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

// FormatInt renders n with grouped thousands: 1234567 becomes
// "1,234,567".
func FormatInt(n int64) string {
	return englishPrinter.Sprintf("%d", n)
}

// FormatFloat renders f with grouped thousands and the given number of
// decimal places: FormatFloat(1234.5, 2) becomes "1,234.50".
func FormatFloat(f float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return englishPrinter.Sprintf("%.*f", decimals, f)
}

// FormatBytes renders a byte count in IEC units: 1536 becomes
// "1.5 KiB". Counts below one KiB are rendered as plain bytes.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
