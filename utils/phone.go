package utils

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const defaultCountryCode = "+91"

// NormalizePhone converts user-entered phone numbers into E.164-ish form:
// separators stripped, a bare national number prefixed with the configured
// country code. The same phone always normalizes to the same string, which
// the stable user id derivation depends on.
func NormalizePhone(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if cleaned == "" {
		return "", fmt.Errorf("empty phone number")
	}

	if strings.HasPrefix(cleaned, "00") {
		cleaned = "+" + cleaned[2:]
	}

	plus := strings.HasPrefix(cleaned, "+")
	digits := cleaned
	if plus {
		digits = cleaned[1:]
	}
	if digits == "" {
		return "", fmt.Errorf("empty phone number")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("invalid character in phone number")
		}
	}

	if plus {
		return "+" + digits, nil
	}

	// national numbers may carry a trunk zero
	digits = strings.TrimPrefix(digits, "0")
	if len(digits) != 10 {
		return "", fmt.Errorf("expect a 10 digit national number, got %d digits", len(digits))
	}

	country := viper.GetString("phone.country_code")
	if country == "" {
		country = defaultCountryCode
	}
	return country + digits, nil
}
