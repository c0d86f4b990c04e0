package provider

import (
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// Title kinds.
const (
	TitleTypical  = "typical"
	TitleAcademic = "academic"
)

// Verify interface compliance in compile time.
var _ NamedProvider = (*Person)(nil)

// Person type is used to generate personal data of locale.
type Person struct {
	BaseDataProvider
}

// NewPerson creates Person provider.
func NewPerson(cfg Config) (*Person, error) {
	base, err := newBaseDataProvider(cfg)
	if err != nil {
		return nil, err
	}

	return &Person{BaseDataProvider: base}, nil
}

// Name returns name of person provider.
func (p *Person) Name() string {
	return PersonName
}

// FirstName returns first name of gender, random gender if empty.
func (p *Person) FirstName(gender Gender) (string, error) {
	return p.pick(locale.PersonFile, "names."+string(randomGender(p.random, gender)))
}

// LastName returns surname. Locales with gendered surnames use table of gender.
func (p *Person) LastName(gender Gender) (string, error) {
	doc, err := p.document(locale.PersonFile)
	if err != nil {
		return "", err
	}

	path := "surnames"
	if doc.Has("surnames." + string(Female)) {
		path += "." + string(randomGender(p.random, gender))
	}

	return p.pick(locale.PersonFile, path)
}

// FullName returns first name and surname of the same gender, surname goes first if reverse is true.
func (p *Person) FullName(gender Gender, reverse bool) (string, error) {
	gender = randomGender(p.random, gender)

	name, err := p.FirstName(gender)
	if err != nil {
		return "", err
	}

	surname, err := p.LastName(gender)
	if err != nil {
		return "", err
	}

	if reverse {
		return surname + " " + name, nil
	}

	return name + " " + surname, nil
}

// Title returns title of gender and kind ("typical" or "academic"), random ones if empty.
func (p *Person) Title(gender Gender, kind string) (string, error) {
	if kind == "" {
		kind = random.MustChoice(p.random, []string{TitleTypical, TitleAcademic})
	}

	if err := oneOf("kind", kind, TitleTypical, TitleAcademic); err != nil {
		return "", err
	}

	return p.pick(locale.PersonFile, "title."+string(randomGender(p.random, gender))+"."+kind)
}

// Occupation returns random occupation.
func (p *Person) Occupation() (string, error) {
	return p.pick(locale.PersonFile, "occupation")
}

// Nationality returns random nationality.
func (p *Person) Nationality() (string, error) {
	return p.pick(locale.PersonFile, "nationality")
}

// Gender returns gender title in language of locale.
func (p *Person) Gender() (string, error) {
	return p.pick(locale.PersonFile, "gender")
}

// Telephone returns phone number by mask, by one of locale formats if mask is empty.
func (p *Person) Telephone(mask string) (string, error) {
	if mask == "" {
		var err error

		mask, err = p.pick(locale.PersonFile, "telephone_fmt")
		if err != nil {
			return "", err
		}
	}

	return p.random.CustomCode(mask), nil
}

// Username returns username by template of characters:
// "U" is capitalized word, "l" is lowercase word, "d" is number,
// ".", "-" and "_" are kept. Empty template means random one.
func (p *Person) Username(template string) (string, error) {
	if template == "" {
		template = random.MustChoice(p.random, usernameTemplates)
	}

	if template == "default" {
		template = "l.d"
	}

	var sb strings.Builder

	for _, c := range template {
		switch c {
		case 'U':
			word := random.MustChoice(p.random, commonWords)
			sb.WriteString(strings.ToUpper(word[:1]) + word[1:])
		case 'l':
			sb.WriteString(random.MustChoice(p.random, commonWords))
		case 'd':
			sb.WriteString(strconv.Itoa(p.random.Range(1800, 2100)))
		case '.', '-', '_':
			sb.WriteRune(c)
		default:
			return "", paramErrorf("template", "unsupported character %q", c)
		}
	}

	return sb.String(), nil
}

// Email returns email address with one of domains, of default domains if empty.
func (p *Person) Email(domains []string) (string, error) {
	if len(domains) == 0 {
		domains = emailDomains
	}

	domain := random.MustChoice(p.random, domains)
	if !strings.HasPrefix(domain, "@") {
		domain = "@" + domain
	}

	name, err := p.Username("ld")
	if err != nil {
		return "", err
	}

	return name + domain, nil
}

// Age returns age in [minimum, maximum].
func (p *Person) Age(minimum, maximum int) int {
	return p.random.Range(minimum, maximum)
}

// Password returns password of length characters, MD5 hex digest of it if hashed is true.
func (p *Person) Password(length int, hashed bool) (string, error) {
	if length <= 0 || length > MaxQuantity {
		return "", paramErrorf("length", "must be in range [1, %d], got %d", MaxQuantity, length)
	}

	b := make([]byte, length)
	for i := range b {
		b[i] = passwordCharset[p.random.IntN(len(passwordCharset))]
	}

	if hashed {
		sum := md5.Sum(b) //nolint:gosec

		return hex.EncodeToString(sum[:]), nil
	}

	return string(b), nil
}
