package provider

import (
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// Config type is used to construct providers.
type Config struct {
	// Locale of data-backed providers, locale.DefaultLocale if empty
	Locale string
	// Seed of random source, ignored if Random is set
	Seed int64
	// Random is shared random source, created from Seed if nil
	Random *random.Random
	// Loader of locale data, locale.Default() if nil
	Loader locale.DataLoader
}

// withDefaults returns copy of config with empty fields filled and locale validated.
func (c Config) withDefaults() (Config, error) {
	if c.Locale == "" {
		c.Locale = locale.DefaultLocale
	}

	info, err := locale.Lookup(c.Locale)
	if err != nil {
		return c, err //nolint:wrapcheck
	}

	c.Locale = info.Code

	if c.Random == nil {
		c.Random = random.New(c.Seed)
	}

	if c.Loader == nil {
		c.Loader = locale.Default()
	}

	return c, nil
}

// BaseProvider type holds random source of provider.
type BaseProvider struct {
	random *random.Random
}

func newBaseProvider(rnd *random.Random) BaseProvider {
	if rnd == nil {
		rnd = random.New(0)
	}

	return BaseProvider{random: rnd}
}

// Random returns random source of provider.
func (p *BaseProvider) Random() *random.Random {
	return p.random
}

// BaseDataProvider type is base of providers backed by locale data.
type BaseDataProvider struct {
	BaseProvider
	locale string
	tag    language.Tag
	loader locale.DataLoader
}

func newBaseDataProvider(cfg Config) (BaseDataProvider, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return BaseDataProvider{}, err
	}

	return BaseDataProvider{
		BaseProvider: newBaseProvider(cfg.Random),
		locale:       cfg.Locale,
		tag:          language.Make(cfg.Locale),
		loader:       cfg.Loader,
	}, nil
}

// Locale returns locale code of provider.
func (p *BaseDataProvider) Locale() string {
	return p.locale
}

func (p *BaseDataProvider) document(fileName string) (locale.Document, error) {
	doc, err := p.loader.Load(fileName, p.locale)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to load %q data", p.locale)
	}

	return doc, nil
}

// pick returns random string of list by path of data file.
func (p *BaseDataProvider) pick(fileName, path string) (string, error) {
	values, err := p.values(fileName, path)
	if err != nil {
		return "", err
	}

	value, err := random.Choice(p.random, values)
	if err != nil {
		return "", errors.WithMessagef(err, "%s: %q", fileName, path)
	}

	return value, nil
}

func (p *BaseDataProvider) values(fileName, path string) ([]string, error) {
	doc, err := p.document(fileName)
	if err != nil {
		return nil, err
	}

	values, err := doc.Strings(path)
	if err != nil {
		return nil, errors.WithMessage(err, fileName)
	}

	return values, nil
}

func (p *BaseDataProvider) value(fileName, path string) (string, error) {
	doc, err := p.document(fileName)
	if err != nil {
		return "", err
	}

	value, err := doc.String(path)
	if err != nil {
		return "", errors.WithMessage(err, fileName)
	}

	return value, nil
}

func (p *BaseDataProvider) title(s string) string {
	return cases.Title(p.tag).String(s)
}

func (p *BaseDataProvider) upper(s string) string {
	return cases.Upper(p.tag).String(s)
}

func (p *BaseDataProvider) lower(s string) string {
	return cases.Lower(p.tag).String(s)
}

// randomGender returns g or random gender if g is empty.
func randomGender(rnd *random.Random, g Gender) Gender {
	if g != "" {
		return g
	}

	return random.MustChoice(rnd, []Gender{Female, Male})
}
