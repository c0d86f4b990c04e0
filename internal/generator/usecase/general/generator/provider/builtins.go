package provider

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/checksum"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
)

// Verify interface compliance in compile time.
var (
	_ NamedProvider = (*Brazil)(nil)
	_ NamedProvider = (*Russia)(nil)
	_ NamedProvider = (*Poland)(nil)
	_ NamedProvider = (*Netherlands)(nil)
	_ NamedProvider = (*USA)(nil)
)

// Brazil type is used to generate Brazilian identifiers.
type Brazil struct {
	BaseProvider
}

// NewBrazil creates Brazil provider.
func NewBrazil(rnd *random.Random) *Brazil {
	return &Brazil{BaseProvider: newBaseProvider(rnd)}
}

// Name returns name of brazil provider.
func (p *Brazil) Name() string {
	return BrazilName
}

// CPF returns individual taxpayer number, as "###.###.###-##" if withMask is true.
func (p *Brazil) CPF(withMask bool) string {
	body := p.random.Digits(9)
	first, second := checksum.CPFCheckDigits(body)
	cpf := checksum.String(checksum.Join(body, first, second))

	if !withMask {
		return cpf
	}

	return fmt.Sprintf("%s.%s.%s-%s", cpf[:3], cpf[3:6], cpf[6:9], cpf[9:])
}

// CNPJ returns company number of head office, as "##.###.###/####-##" if withMask is true.
func (p *Brazil) CNPJ(withMask bool) string {
	body := checksum.Join(p.random.Digits(8), 0, 0, 0, 1)
	first, second := checksum.CNPJCheckDigits(body)
	cnpj := checksum.String(checksum.Join(body, first, second))

	if !withMask {
		return cnpj
	}

	return fmt.Sprintf("%s.%s.%s/%s-%s", cnpj[:2], cnpj[2:5], cnpj[5:8], cnpj[8:12], cnpj[12:])
}

// Russia type is used to generate Russian identifiers.
type Russia struct {
	BaseProvider
}

// NewRussia creates Russia provider.
func NewRussia(rnd *random.Random) *Russia {
	return &Russia{BaseProvider: newBaseProvider(rnd)}
}

// Name returns name of russia provider.
func (p *Russia) Name() string {
	return RussiaName
}

// INN returns 12 digits taxpayer number of individual.
func (p *Russia) INN() string {
	body := checksum.Join(checksum.Digits(fmt.Sprintf("%02d", p.random.Range(1, 92))), p.random.Digits(8)...)
	first, second := checksum.INN12CheckDigits(body)

	return checksum.String(checksum.Join(body, first, second))
}

// SNILS returns 11 digits insurance number.
func (p *Russia) SNILS() string {
	body := p.random.Digits(9)

	return checksum.String(body) + checksum.SNILSChecksum(body)
}

// OGRN returns 13 digits primary state registration number of company.
func (p *Russia) OGRN() string {
	body := checksum.Join([]int{random.MustChoice(p.random, []int{1, 5})}, p.random.Digits(11)...)

	return checksum.String(checksum.Join(body, checksum.OGRNCheckDigit(body)))
}

// KPP returns 9 digits tax registration reason code.
func (p *Russia) KPP() string {
	return random.MustChoice(p.random, kppTaxCodes) +
		fmt.Sprintf("%02d", p.random.Range(1, 50)) +
		fmt.Sprintf("%03d", p.random.Range(1, 999))
}

// PassportSeries returns series of internal passport issued in year, random year if zero.
func (p *Russia) PassportSeries(year int) string {
	if year == 0 {
		year = p.random.Range(2000, 2025)
	}

	return fmt.Sprintf("%02d %02d", p.random.Range(2, 73), year%100)
}

// PassportNumber returns six digits passport number.
func (p *Russia) PassportNumber() int {
	return p.random.Range(560000, 999999)
}

// SeriesAndNumber returns series and number of passport.
func (p *Russia) SeriesAndNumber() string {
	return p.PassportSeries(0) + " " + strconv.Itoa(p.PassportNumber())
}

// PESEL encodes century of birth in month number.
var peselMonthOffsets = map[int]int{18: 80, 19: 0, 20: 20, 21: 40, 22: 60}

// Poland type is used to generate Polish identifiers.
type Poland struct {
	BaseProvider
}

// NewPoland creates Poland provider.
func NewPoland(rnd *random.Random) *Poland {
	return &Poland{BaseProvider: newBaseProvider(rnd)}
}

// Name returns name of poland provider.
func (p *Poland) Name() string {
	return PolandName
}

// NIP returns 10 digits tax identification number.
func (p *Poland) NIP() string {
	for {
		body := checksum.Join(checksum.Digits(strconv.Itoa(p.random.Range(101, 998))), p.random.Digits(6)...)

		if check, ok := checksum.NIPCheckDigit(body); ok {
			return checksum.String(checksum.Join(body, check))
		}
	}
}

// PESEL returns 11 digits personal identification number of person born on birthDate
// of gender. Zero birthDate and empty gender mean random ones.
func (p *Poland) PESEL(birthDate time.Time, gender Gender) (string, error) {
	if birthDate.IsZero() {
		birthDate = time.Date(p.random.Range(1940, 2018), time.Month(p.random.Range(1, 12)), p.random.Range(1, 28),
			0, 0, 0, 0, time.UTC)
	}

	year := birthDate.Year()
	if year < 1800 || year > 2299 {
		return "", paramErrorf("birth_date", "year %d is out of range [1800, 2299]", year)
	}

	month := int(birthDate.Month()) + peselMonthOffsets[year/100]

	genderDigit := random.MustChoice(p.random, []int{0, 2, 4, 6, 8})
	if randomGender(p.random, gender) == Male {
		genderDigit++
	}

	body := checksum.Digits(fmt.Sprintf("%02d%02d%02d", year%100, month, birthDate.Day()))
	body = checksum.Join(body, p.random.Digits(3)...)
	body = checksum.Join(body, genderDigit)

	return checksum.String(checksum.Join(body, checksum.PESELCheckDigit(body))), nil
}

// REGON returns 9 digits taxpayer identification number.
func (p *Poland) REGON() string {
	body := p.random.Digits(8)

	return checksum.String(checksum.Join(body, checksum.REGONCheckDigit(body)))
}

// Netherlands type is used to generate Dutch identifiers.
type Netherlands struct {
	BaseProvider
}

// NewNetherlands creates Netherlands provider.
func NewNetherlands(rnd *random.Random) *Netherlands {
	return &Netherlands{BaseProvider: newBaseProvider(rnd)}
}

// Name returns name of netherlands provider.
func (p *Netherlands) Name() string {
	return NetherlandsName
}

// BSN returns 9 digits citizen service number passing 11-proof.
func (p *Netherlands) BSN() string {
	for {
		body := checksum.Join([]int{p.random.Range(1, 9)}, p.random.Digits(7)...)

		if check, ok := checksum.BSNCheckDigit(body); ok {
			return checksum.String(checksum.Join(body, check))
		}
	}
}

// BurgerServiceNummer is alias of BSN.
func (p *Netherlands) BurgerServiceNummer() string {
	return p.BSN()
}

// Tracking number services.
const (
	USPS  = "usps"
	FedEx = "fedex"
	UPS   = "ups"
)

// Personality type categories.
const (
	MBTI  = "mbti"
	RHETI = "rheti"
)

// USA type is used to generate data specific for United States.
type USA struct {
	BaseProvider
}

// NewUSA creates USA provider.
func NewUSA(rnd *random.Random) *USA {
	return &USA{BaseProvider: newBaseProvider(rnd)}
}

// Name returns name of USA provider.
func (p *USA) Name() string {
	return USAName
}

// SSN returns social security number in "###-##-####" form.
func (p *USA) SSN() string {
	area := p.random.Range(1, 899)
	if area == 666 {
		area = 665
	}

	return fmt.Sprintf("%03d-%02d-%04d", area, p.random.Range(1, 99), p.random.Range(1, 9999))
}

// TrackingNumber returns post tracking number of service "usps", "fedex" or "ups".
func (p *USA) TrackingNumber(service string) (string, error) {
	if service == "" {
		service = USPS
	}

	masks, ok := trackingMasks[service]
	if !ok {
		return "", oneOf("service", service, USPS, FedEx, UPS)
	}

	return p.random.CustomCode(random.MustChoice(p.random, masks)), nil
}

// PersonalityType returns personality type of category "mbti" or "rheti".
func (p *USA) PersonalityType(category string) (string, error) {
	if category == "" {
		category = MBTI
	}

	switch category {
	case MBTI:
		return random.MustChoice(p.random, mbtiTypes), nil
	case RHETI:
		return strconv.Itoa(p.random.Range(1, 9)), nil
	default:
		return "", oneOf("category", category, MBTI, RHETI)
	}
}
