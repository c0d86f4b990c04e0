package mask

import (
	"fmt"
	"strings"
)

const (
	// DefaultDigit is replaced by a random decimal digit.
	DefaultDigit = '#'
	// DefaultLetter is replaced by a random uppercase ASCII letter.
	DefaultLetter = '@'

	digits  = "0123456789"
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Source interface implementation should return uniformly distributed integer in [0, n).
type Source interface {
	IntN(n int) int
}

// InvalidMaskError is returned when digit and letter placeholders are equal.
type InvalidMaskError struct {
	Placeholder rune
}

// Error function returns text of error.
func (e *InvalidMaskError) Error() string {
	return fmt.Sprintf("digit and letter placeholders must differ, both are %q", e.Placeholder)
}

// Generate returns string of mask where every digit placeholder is replaced by random digit
// and every letter placeholder by random uppercase letter. Other characters are kept as is.
func Generate(src Source, mask string, digit, letter rune) (string, error) {
	if digit == letter {
		return "", &InvalidMaskError{Placeholder: digit}
	}

	var sb strings.Builder

	sb.Grow(len(mask))

	for _, c := range mask {
		switch c {
		case digit:
			sb.WriteByte(digits[src.IntN(len(digits))])
		case letter:
			sb.WriteByte(letters[src.IntN(len(letters))])
		default:
			sb.WriteRune(c)
		}
	}

	return sb.String(), nil
}

// Default is Generate with '#' and '@' placeholders.
func Default(src Source, mask string) string {
	// default placeholders never collide
	s, _ := Generate(src, mask, DefaultDigit, DefaultLetter)

	return s
}

// Count returns number of digit placeholders in mask.
func Count(mask string, digit rune) int {
	return strings.Count(mask, string(digit))
}
