package checksum

// LuhnCheckDigit returns check digit which makes body valid by Luhn algorithm.
// Used by credit card numbers and IMEI.
func LuhnCheckDigit(body []int) int {
	var sum int

	// position 0 is the rightmost digit of body, it becomes the second one from the right
	for pos := range body {
		d := body[len(body)-1-pos]

		if pos%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}

		sum += d
	}

	return sum * 9 % 10
}

// LuhnValid reports whether full number including check digit passes Luhn validation.
func LuhnValid(number []int) bool {
	if len(number) == 0 {
		return false
	}

	return LuhnCheckDigit(number[:len(number)-1]) == number[len(number)-1]
}
