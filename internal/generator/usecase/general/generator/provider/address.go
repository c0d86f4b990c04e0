package provider

import (
	"strconv"
	"strings"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// Verify interface compliance in compile time.
var _ NamedProvider = (*Address)(nil)

// Address type is used to generate address data of locale.
type Address struct {
	BaseDataProvider
}

// Coordinates type is geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"  yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// NewAddress creates Address provider.
func NewAddress(cfg Config) (*Address, error) {
	base, err := newBaseDataProvider(cfg)
	if err != nil {
		return nil, err
	}

	return &Address{BaseDataProvider: base}, nil
}

// Name returns name of address provider.
func (p *Address) Name() string {
	return AddressName
}

// StreetNumber returns street number in [1, maximum].
func (p *Address) StreetNumber(maximum int) string {
	if maximum < 1 {
		maximum = 1400
	}

	return strconv.Itoa(p.random.Range(1, maximum))
}

// StreetName returns random street name.
func (p *Address) StreetName() (string, error) {
	return p.pick(locale.AddressFile, "street.name")
}

// StreetSuffix returns random street suffix, e.g. "Avenue".
func (p *Address) StreetSuffix() (string, error) {
	return p.pick(locale.AddressFile, "street.suffix")
}

// Address returns full street address formatted as usual for locale.
func (p *Address) Address() (string, error) {
	format, err := p.value(locale.AddressFile, "address_fmt")
	if err != nil {
		return "", err
	}

	name, err := p.StreetName()
	if err != nil {
		return "", err
	}

	suffix, err := p.StreetSuffix()
	if err != nil {
		return "", err
	}

	return strings.NewReplacer(
		"{st_num}", p.StreetNumber(0),
		"{st_name}", name,
		"{st_sfx}", suffix,
	).Replace(format), nil
}

// State returns name of administrative district, abbreviated if abbr is true.
func (p *Address) State(abbr bool) (string, error) {
	if abbr {
		return p.StateAbbr()
	}

	return p.pick(locale.AddressFile, "state.name")
}

// StateAbbr returns abbreviation of random state.
func (p *Address) StateAbbr() (string, error) {
	return p.pick(locale.AddressFile, "state.abbr")
}

// PostalCode returns postal code by format of locale.
func (p *Address) PostalCode() (string, error) {
	format, err := p.value(locale.AddressFile, "postal_code_fmt")
	if err != nil {
		return "", err
	}

	return p.random.CustomCode(format), nil
}

// ZipCode is alias of PostalCode.
func (p *Address) ZipCode() (string, error) {
	return p.PostalCode()
}

// City returns random city of locale.
func (p *Address) City() (string, error) {
	return p.pick(locale.AddressFile, "city")
}

// Country returns random country name in language of locale.
func (p *Address) Country() (string, error) {
	return p.pick(locale.AddressFile, "country.name")
}

// DefaultCountry returns country of locale.
func (p *Address) DefaultCountry() (string, error) {
	return p.value(locale.AddressFile, "country.current_locale")
}

// CountryCode returns random ISO 3166-1 code in format "a2", "a3" or "numeric".
func (p *Address) CountryCode(format string) (string, error) {
	if format == "" {
		format = "a2"
	}

	if err := oneOf("format", format, "a2", "a3", "numeric"); err != nil {
		return "", err
	}

	code := countryCodes[p.random.IntN(len(countryCodes))]

	switch format {
	case "a3":
		return code.a3, nil
	case "numeric":
		return code.numeric, nil
	default:
		return code.a2, nil
	}
}

// CallingCode returns international calling code of locale, e.g. "+55".
func (p *Address) CallingCode() (string, error) {
	return p.value(locale.AddressFile, "calling_code")
}

// Latitude returns latitude in range [-90, 90].
func (p *Address) Latitude() float64 {
	return p.random.Float(-90, 90, 6)
}

// Longitude returns longitude in range [-180, 180].
func (p *Address) Longitude() float64 {
	return p.random.Float(-180, 180, 6)
}

// Coordinates returns random latitude and longitude pair.
func (p *Address) Coordinates() Coordinates {
	return Coordinates{
		Latitude:  p.Latitude(),
		Longitude: p.Longitude(),
	}
}

// Continent returns random continent name in language of locale.
func (p *Address) Continent() (string, error) {
	return p.pick(locale.AddressFile, "continent")
}
