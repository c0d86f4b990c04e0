package provider

import (
	"strconv"
	"strings"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// Verify interface compliance in compile time.
var _ NamedProvider = (*Finance)(nil)

// Finance type is used to generate business and finance data of locale.
type Finance struct {
	BaseDataProvider
}

// NewFinance creates Finance provider.
func NewFinance(cfg Config) (*Finance, error) {
	base, err := newBaseDataProvider(cfg)
	if err != nil {
		return nil, err
	}

	return &Finance{BaseDataProvider: base}, nil
}

// Name returns name of finance provider.
func (p *Finance) Name() string {
	return FinanceName
}

// Company returns random company name.
func (p *Finance) Company() (string, error) {
	return p.pick(locale.FinanceFile, "company.name")
}

// CompanyType returns legal form of company, abbreviated if abbr is true.
func (p *Finance) CompanyType(abbr bool) (string, error) {
	if abbr {
		return p.pick(locale.FinanceFile, "company.type.abbr")
	}

	return p.pick(locale.FinanceFile, "company.type.title")
}

// CurrencyCode returns ISO 4217 code of locale currency.
func (p *Finance) CurrencyCode() (string, error) {
	return p.value(locale.FinanceFile, "currency.code")
}

// CurrencySymbol returns currency symbol of locale.
func (p *Finance) CurrencySymbol() (string, error) {
	return p.value(locale.FinanceFile, "currency.symbol")
}

// Price returns price in [minimum, maximum] with two digits after point.
func (p *Finance) Price(minimum, maximum float64) float64 {
	return p.random.Float(minimum, maximum, 2)
}

// FormattedPrice returns price with currency symbol formatted as usual for locale.
func (p *Finance) FormattedPrice(minimum, maximum float64) (string, error) {
	doc, err := p.document(locale.FinanceFile)
	if err != nil {
		return "", err
	}

	format, err := doc.String("price_fmt")
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	symbol, err := doc.String("currency.symbol")
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	amount := strconv.FormatFloat(p.Price(minimum, maximum), 'f', 2, 64)

	if sep, err := doc.String("decimal_separator"); err == nil && sep != "." {
		amount = strings.Replace(amount, ".", sep, 1)
	}

	return strings.NewReplacer("{symbol}", symbol, "{amount}", amount).Replace(format), nil
}

// PriceInBTC returns price in bitcoins in [minimum, maximum].
func (p *Finance) PriceInBTC(minimum, maximum float64) float64 {
	return p.random.Float(minimum, maximum, 7)
}

// StockTicker returns random stock exchange ticker.
func (p *Finance) StockTicker() string {
	return random.MustChoice(p.random, stockTickers)
}

// Bank returns random bank name of locale.
func (p *Finance) Bank() (string, error) {
	return p.pick(locale.FinanceFile, "bank")
}
