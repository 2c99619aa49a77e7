package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Unlimited integer digits, at most two fractional digits, no sign.
var decimalPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ParseInteger accepts an optional sign followed by base-10 digits and nothing else.
func ParseInteger(text string) (int, error) {
	digits := text
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}
	if !isDigits(digits) {
		return 0, fmt.Errorf("%q: %w", text, ErrFormat)
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w", text, ErrRange)
		}
		return 0, fmt.Errorf("%q: %w", text, ErrFormat)
	}
	return value, nil
}

func ParseMenuChoice(text string, lo, hi int) (int, error) {
	if strings.Contains(text, " ") {
		return 0, fmt.Errorf("%q: %w", text, ErrFormat)
	}
	value, err := ParseInteger(text)
	if err != nil {
		return 0, err
	}
	if value < lo || value > hi {
		return 0, fmt.Errorf("choice %d not in [%d, %d]: %w", value, lo, hi, ErrRange)
	}
	return value, nil
}

// ParseDecimal rejects anything a plain decimal parser would accept beyond
// "digits[.d[d]]", including "1.555", signs and exponents.
func ParseDecimal(text string) (decimal.Decimal, error) {
	if !decimalPattern.MatchString(text) {
		return decimal.Zero, fmt.Errorf("%q: %w", text, ErrFormat)
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", text, ErrFormat)
	}
	return value, nil
}

func ValidID(text string) bool {
	return CheckID(text) == nil
}

func CheckID(text string) error {
	if text == "" {
		return ErrEmpty
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !isDigit(c) && !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
			return fmt.Errorf("%q: %w", text, ErrFormat)
		}
	}
	return nil
}

func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
