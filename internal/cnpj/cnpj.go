// Package cnpj validates, normalizes and formats Brazilian legal-entity tax identifiers.
package cnpj

import "strings"

// Length is the number of digits in a normalized CNPJ.
const Length = 14

// Normalize strips every non-digit character.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate reports whether input, after normalization, is a CNPJ with
// correct check digits.
func Validate(input string) bool {
	n := Normalize(input)
	if len(n) != Length {
		return false
	}

	if strings.Count(n, n[:1]) == Length {
		return false
	}

	digits := make([]int, Length)
	for i := range n {
		digits[i] = int(n[i] - '0')
	}

	if checkDigit(digits, 12) != digits[12] {
		return false
	}
	return checkDigit(digits, 13) == digits[13]
}

// Format renders a CNPJ as XX.XXX.XXX/XXXX-XX. Input that does not
// normalize to 14 digits is returned unchanged.
func Format(input string) string {
	n := Normalize(input)
	if len(n) != Length {
		return input
	}
	return n[0:2] + "." + n[2:5] + "." + n[5:8] + "/" + n[8:12] + "-" + n[12:14]
}

// checkDigit computes the verifier over the first length digits. Weights
// start at length-7 and descend, wrapping to 9 once they fall below 2.
func checkDigit(digits []int, length int) int {
	sum := 0
	pos := length - 7
	for i := length; i >= 1; i-- {
		sum += digits[length-i] * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}

	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}
