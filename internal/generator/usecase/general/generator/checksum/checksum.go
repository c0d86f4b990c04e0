// Package checksum contains check digit algorithms of credit cards, IMEI, barcodes
// and national identifiers. Functions expect body of exact length for the format,
// other lengths give undefined result.
package checksum

// Digits returns decimal digits of s, other characters are skipped.
func Digits(s string) []int {
	digits := make([]int, 0, len(s))

	for _, c := range s {
		if c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
		}
	}

	return digits
}

// Join appends digits to the end of body as new slice.
func Join(body []int, digits ...int) []int {
	joined := make([]int, 0, len(body)+len(digits))
	joined = append(joined, body...)

	return append(joined, digits...)
}

// String returns digits as string.
func String(digits []int) string {
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[i] = byte('0' + d)
	}

	return string(b)
}

func weightedSum(digits, weights []int) int {
	var sum int

	for i, w := range weights {
		sum += digits[i] * w
	}

	return sum
}

// descending returns weights from..to, e.g. descending(10, 2) is 10, 9, ..., 2.
func descending(from, to int) []int {
	weights := make([]int, 0, from-to+1)
	for w := from; w >= to; w-- {
		weights = append(weights, w)
	}

	return weights
}
