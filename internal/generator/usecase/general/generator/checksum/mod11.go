package checksum

import (
	"fmt"
)

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

	peselWeights = []int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}
	nipWeights   = []int{6, 5, 7, 2, 3, 4, 5, 6, 7}
	regonWeights = []int{8, 9, 2, 3, 4, 5, 6, 7}

	inn10Weights       = []int{2, 4, 10, 3, 5, 9, 4, 6, 8}
	inn12FirstWeights  = []int{7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
	inn12SecondWeights = []int{3, 7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
)

// brazilDigit maps remainder of division by 11 to check digit of CPF and CNPJ.
func brazilDigit(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}

	return 11 - r
}

// CPFCheckDigits returns two check digits of Brazilian CPF for 9 digits body.
func CPFCheckDigits(body []int) (int, int) {
	first := brazilDigit(weightedSum(body, descending(10, 2)))
	second := brazilDigit(weightedSum(Join(body, first), descending(11, 2)))

	return first, second
}

// CNPJCheckDigits returns two check digits of Brazilian CNPJ for 12 digits body.
func CNPJCheckDigits(body []int) (int, int) {
	first := brazilDigit(weightedSum(body, cnpjFirstWeights))
	second := brazilDigit(weightedSum(Join(body, first), cnpjSecondWeights))

	return first, second
}

// PESELCheckDigit returns check digit of Polish PESEL for 10 digits body.
func PESELCheckDigit(body []int) int {
	return (10 - weightedSum(body, peselWeights)%10) % 10
}

// NIPCheckDigit returns check digit of Polish NIP for 9 digits body.
// Body with remainder 10 can not be completed to valid NIP, ok is false then.
func NIPCheckDigit(body []int) (int, bool) {
	r := weightedSum(body, nipWeights) % 11

	return r, r != 10
}

// REGONCheckDigit returns check digit of Polish 9 digits REGON for 8 digits body.
func REGONCheckDigit(body []int) int {
	r := weightedSum(body, regonWeights) % 11
	if r == 10 {
		return 0
	}

	return r
}

// INN10CheckDigit returns check digit of Russian company INN for 9 digits body.
func INN10CheckDigit(body []int) int {
	return weightedSum(body, inn10Weights) % 11 % 10
}

// INN12CheckDigits returns two check digits of Russian personal INN for 10 digits body.
func INN12CheckDigits(body []int) (int, int) {
	first := weightedSum(body, inn12FirstWeights) % 11 % 10
	second := weightedSum(Join(body, first), inn12SecondWeights) % 11 % 10

	return first, second
}

// OGRNCheckDigit returns check digit of Russian OGRN for 12 digits body:
// body number modulo 11, then modulo 10.
func OGRNCheckDigit(body []int) int {
	var r int
	for _, d := range body {
		r = (r*10 + d) % 11
	}

	return r % 10
}

// SNILSChecksum returns two digits suffix of Russian SNILS for 9 digits body.
func SNILSChecksum(body []int) string {
	return snilsSuffix(weightedSum(body, descending(9, 1)))
}

func snilsSuffix(sum int) string {
	switch {
	case sum < 100:
		return fmt.Sprintf("%02d", sum)
	case sum == 100, sum == 101:
		return "00"
	}

	r := sum % 101
	if r == 100 {
		r = 0
	}

	return fmt.Sprintf("%02d", r)
}

// BSNCheckDigit returns last digit of Dutch BSN for 8 digits body by 11-proof.
// Body with remainder 10 can not be completed to valid BSN, ok is false then.
func BSNCheckDigit(body []int) (int, bool) {
	r := weightedSum(body, descending(9, 2)) % 11

	return r, r != 10
}
