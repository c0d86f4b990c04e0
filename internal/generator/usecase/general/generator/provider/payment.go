package provider

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/checksum"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
)

// Card networks supported by CreditCardNumber.
const (
	Visa            = "Visa"
	MasterCard      = "MasterCard"
	AmericanExpress = "American Express"
)

// Verify interface compliance in compile time.
var _ NamedProvider = (*Payment)(nil)

// Payment type is used to generate payment data.
type Payment struct {
	BaseProvider
}

// NewPayment creates Payment provider.
func NewPayment(rnd *random.Random) *Payment {
	return &Payment{BaseProvider: newBaseProvider(rnd)}
}

// Name returns name of payment provider.
func (p *Payment) Name() string {
	return PaymentName
}

// CreditCardNetwork returns random credit card network name.
func (p *Payment) CreditCardNetwork() string {
	return random.MustChoice(p.random, cardNetworks)
}

// CreditCardNumber returns card number with valid Luhn check digit, grouped by spaces.
// Network is one of "Visa", "MasterCard" or "American Express", random one if empty.
func (p *Payment) CreditCardNumber(network string) (string, error) {
	if network == "" {
		network = random.MustChoice(p.random, []string{Visa, MasterCard, AmericanExpress})
	}

	var (
		prefix string
		length = 16
		groups = []int{4, 4, 4, 4}
	)

	switch network {
	case Visa:
		prefix = "4"
	case MasterCard:
		prefix = random.MustChoice(p.random, []string{
			fmt.Sprintf("%d", p.random.Range(2221, 2720)),
			fmt.Sprintf("%d", p.random.Range(51, 55)),
		})
	case AmericanExpress:
		prefix = random.MustChoice(p.random, []string{"34", "37"})
		length = 15
		groups = []int{4, 6, 5}
	default:
		return "", oneOf("network", network, Visa, MasterCard, AmericanExpress)
	}

	body := checksum.Join(checksum.Digits(prefix), p.random.Digits(length-len(prefix)-1)...)
	number := checksum.String(checksum.Join(body, checksum.LuhnCheckDigit(body)))

	parts := make([]string, 0, len(groups))

	for _, size := range groups {
		parts = append(parts, number[:size])
		number = number[size:]
	}

	return strings.Join(parts, " "), nil
}

// CreditCardExpirationDate returns expiration date in "MM/YY" form, year in [minimum, maximum].
func (p *Payment) CreditCardExpirationDate(minimum, maximum int) string {
	return fmt.Sprintf("%02d/%02d", p.random.Range(1, 12), p.random.Range(minimum, maximum)%100)
}

// CVV returns card verification value.
func (p *Payment) CVV() string {
	return fmt.Sprintf("%03d", p.random.Range(1, 999))
}

// CID returns four digits card identification number.
func (p *Payment) CID() string {
	return fmt.Sprintf("%04d", p.random.Range(1, 9999))
}

// PayPal returns email of PayPal account.
func (p *Payment) PayPal() string {
	return random.MustChoice(p.random, commonWords) +
		fmt.Sprintf("%d", p.random.Range(1800, 2100)) +
		random.MustChoice(p.random, emailDomains)
}

// BitcoinAddress returns random bitcoin address.
func (p *Payment) BitcoinAddress() string {
	return p.random.BitcoinAddress()
}

// EthereumAddress returns "0x" prefixed 20 bytes address.
func (p *Payment) EthereumAddress() string {
	b := make([]byte, 20)
	_, _ = p.random.Read(b)

	return "0x" + hex.EncodeToString(b)
}
