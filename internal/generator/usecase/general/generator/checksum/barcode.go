package checksum

// EANCheckDigit returns check digit of EAN-8, EAN-13 or ISBN-13 for body without it.
// Digits are weighted 3 and 1 alternately starting from the rightmost one.
func EANCheckDigit(body []int) int {
	var sum int

	for pos := range body {
		d := body[len(body)-1-pos]
		if pos%2 == 0 {
			d *= 3
		}

		sum += d
	}

	return (10 - sum%10) % 10
}

// ISBN10CheckDigit returns check character of ISBN-10 for 9 digits body, "X" stands for 10.
func ISBN10CheckDigit(body []int) string {
	r := (11 - weightedSum(body, descending(10, 2))%11) % 11
	if r == 10 {
		return "X"
	}

	return string(rune('0' + r))
}
