package provider

import (
	"fmt"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/checksum"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/mask"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// Barcode and book number formats.
const (
	ISBN10 = "isbn-10"
	ISBN13 = "isbn-13"
	EAN8   = "ean-8"
	EAN13  = "ean-13"
)

// Verify interface compliance in compile time.
var _ NamedProvider = (*Code)(nil)

// Code type is used to generate codes: barcodes, book numbers, IMEI and PINs.
type Code struct {
	BaseProvider
}

// NewCode creates Code provider.
func NewCode(rnd *random.Random) *Code {
	return &Code{BaseProvider: newBaseProvider(rnd)}
}

// Name returns name of code provider.
func (p *Code) Name() string {
	return CodeName
}

// LocaleCode returns code of random supported locale.
func (p *Code) LocaleCode() string {
	return random.MustChoice(p.random, locale.Codes())
}

// IssuingNetwork returns name of payment card issuing network.
func (p *Code) IssuingNetwork() string {
	return random.MustChoice(p.random, issuingNetworks)
}

// PIN returns code by mask with '#' placeholders, "####" if mask is empty.
func (p *Code) PIN(m string) (string, error) {
	if m == "" {
		m = "####"
	}

	return p.random.CustomCodeWith(m, mask.DefaultDigit, mask.DefaultLetter) //nolint:wrapcheck
}

// ISBN returns book number with valid check character in format "isbn-10" or "isbn-13".
func (p *Code) ISBN(format string) (string, error) {
	if format == "" {
		format = ISBN10
	}

	if err := oneOf("format", format, ISBN10, ISBN13); err != nil {
		return "", err
	}

	body := p.random.Digits(9)
	s := checksum.String(body)

	if format == ISBN10 {
		return fmt.Sprintf("%s-%s-%s-%s", s[:1], s[1:5], s[5:9], checksum.ISBN10CheckDigit(body)), nil
	}

	check := checksum.EANCheckDigit(checksum.Join([]int{9, 7, 8}, body...))

	return fmt.Sprintf("978-%s-%s-%s-%d", s[:1], s[1:5], s[5:9], check), nil
}

// EAN returns barcode with valid check digit in format "ean-8" or "ean-13".
func (p *Code) EAN(format string) (string, error) {
	if format == "" {
		format = EAN13
	}

	if err := oneOf("format", format, EAN8, EAN13); err != nil {
		return "", err
	}

	length := 13
	if format == EAN8 {
		length = 8
	}

	body := p.random.Digits(length - 1)

	return checksum.String(checksum.Join(body, checksum.EANCheckDigit(body))), nil
}

// IMEI returns 15 digits device identifier with valid Luhn check digit.
func (p *Code) IMEI() string {
	body := checksum.Join(
		checksum.Digits(random.MustChoice(p.random, imeiTACs)),
		p.random.Digits(6)...,
	)

	return checksum.String(checksum.Join(body, checksum.LuhnCheckDigit(body)))
}
