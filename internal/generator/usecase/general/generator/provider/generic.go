package provider

import (
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
)

type factory func(cfg Config) (NamedProvider, error)

func dataFactory[T NamedProvider](fn func(Config) (T, error)) factory {
	return func(cfg Config) (NamedProvider, error) {
		p, err := fn(cfg)
		if err != nil {
			return nil, err
		}

		return p, nil
	}
}

func plainFactory[T NamedProvider](fn func(*random.Random) T) factory {
	return func(cfg Config) (NamedProvider, error) { return fn(cfg.Random), nil }
}

var factories = map[string]factory{
	AddressName:       dataFactory(NewAddress),
	PersonName:        dataFactory(NewPerson),
	FinanceName:       dataFactory(NewFinance),
	DatetimeName:      dataFactory(NewDatetime),
	TextName:          dataFactory(NewText),
	CodeName:          plainFactory(NewCode),
	PaymentName:       plainFactory(NewPayment),
	InternetName:      plainFactory(NewInternet),
	CryptographicName: plainFactory(NewCryptographic),
	HardwareName:      plainFactory(NewHardware),
	BrazilName:        plainFactory(NewBrazil),
	RussiaName:        plainFactory(NewRussia),
	PolandName:        plainFactory(NewPoland),
	NetherlandsName:   plainFactory(NewNetherlands),
	USAName:           plainFactory(NewUSA),
}

// Generic type gives access to all providers of one locale sharing one random source.
// Providers are created on first access.
type Generic struct {
	cfg       Config
	mu        *sync.Mutex
	providers map[string]NamedProvider
	custom    map[string]NamedProvider
}

// NewGeneric validates locale of config and creates Generic.
func NewGeneric(cfg Config) (*Generic, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	return &Generic{
		cfg:       cfg,
		mu:        &sync.Mutex{},
		providers: make(map[string]NamedProvider),
		custom:    make(map[string]NamedProvider),
	}, nil
}

// Locale returns locale code of data-backed providers.
func (g *Generic) Locale() string {
	return g.cfg.Locale
}

// Random returns random source shared by providers. Custom providers
// should use it to be reproducible by seed too.
func (g *Generic) Random() *random.Random {
	return g.cfg.Random
}

// Reseed resets random sequence of all providers. It must not be called concurrently with generation.
func (g *Generic) Reseed(seed int64) {
	g.cfg.Random.Reseed(seed)
}

// AddProvider registers custom provider. Providers implementing Caller become reachable by Call.
func (g *Generic) AddProvider(p NamedProvider) error {
	name := p.Name()
	if name == "" {
		return ErrEmptyProviderName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := factories[name]; ok {
		return errors.WithMessagef(ErrDuplicateProviderName, "%q", name)
	}

	if _, ok := g.custom[name]; ok {
		return errors.WithMessagef(ErrDuplicateProviderName, "%q", name)
	}

	g.custom[name] = p

	return nil
}

// Provider returns provider by name, built-in providers are created if needed.
func (g *Generic) Provider(name string) (NamedProvider, bool) {
	p, err := g.provider(name)
	if err != nil {
		return nil, false
	}

	return p, true
}

// provider returns provider provider, created on first call.
func (g *Generic) provider(name string) (NamedProvider, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if p, ok := g.custom[name]; ok {
		return p, nil
	}

	if p, ok := g.providers[name]; ok {
		return p, nil
	}

	newProvider, ok := factories[name]
	if !ok {
		return nil, errors.Errorf("unknown provider %q", name)
	}

	p, err := newProvider(g.cfg)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create %q provider", name)
	}

	g.providers[name] = p

	return p, nil
}

// mustProvider returns built-in provider. Its creation fails only for invalid locale,
// which is checked by NewGeneric.
func mustProvider[T NamedProvider](g *Generic, name string) T {
	p, err := g.provider(name)
	if err != nil {
		panic(err)
	}

	return p.(T) //nolint:forcetypeassert
}

// Address returns address provider, created on first call.
func (g *Generic) Address() *Address {
	return mustProvider[*Address](g, AddressName)
}

// Person returns person provider, created on first call.
func (g *Generic) Person() *Person {
	return mustProvider[*Person](g, PersonName)
}

// Finance returns finance provider, created on first call.
func (g *Generic) Finance() *Finance {
	return mustProvider[*Finance](g, FinanceName)
}

// Datetime returns datetime provider, created on first call.
func (g *Generic) Datetime() *Datetime {
	return mustProvider[*Datetime](g, DatetimeName)
}

// Text returns text provider, created on first call.
func (g *Generic) Text() *Text {
	return mustProvider[*Text](g, TextName)
}

// Code returns code provider, created on first call.
func (g *Generic) Code() *Code {
	return mustProvider[*Code](g, CodeName)
}

// Payment returns payment provider, created on first call.
func (g *Generic) Payment() *Payment {
	return mustProvider[*Payment](g, PaymentName)
}

// Internet returns internet provider, created on first call.
func (g *Generic) Internet() *Internet {
	return mustProvider[*Internet](g, InternetName)
}

// Cryptographic returns cryptographic provider, created on first call.
func (g *Generic) Cryptographic() *Cryptographic {
	return mustProvider[*Cryptographic](g, CryptographicName)
}

// Hardware returns hardware provider, created on first call.
func (g *Generic) Hardware() *Hardware {
	return mustProvider[*Hardware](g, HardwareName)
}

// Brazil returns brazil provider, created on first call.
func (g *Generic) Brazil() *Brazil {
	return mustProvider[*Brazil](g, BrazilName)
}

// Russia returns russia provider, created on first call.
func (g *Generic) Russia() *Russia {
	return mustProvider[*Russia](g, RussiaName)
}

// Poland returns poland provider, created on first call.
func (g *Generic) Poland() *Poland {
	return mustProvider[*Poland](g, PolandName)
}

// Netherlands returns netherlands provider, created on first call.
func (g *Generic) Netherlands() *Netherlands {
	return mustProvider[*Netherlands](g, NetherlandsName)
}

// USA returns USA provider, created on first call.
func (g *Generic) USA() *USA {
	return mustProvider[*USA](g, USAName)
}

// Call generates value by method key "provider.method".
func (g *Generic) Call(key string, params Params) (any, error) {
	if m, ok := methods[key]; ok {
		return m.call(g, params)
	}

	name, method, ok := strings.Cut(key, KeySeparator)
	if !ok {
		return nil, &UnknownMethodError{Key: key}
	}

	g.mu.Lock()
	p, ok := g.custom[name]
	g.mu.Unlock()

	if !ok {
		return nil, &UnknownMethodError{Key: key}
	}

	caller, ok := p.(Caller)
	if !ok || !slices.Contains(caller.Methods(), method) {
		return nil, &UnknownMethodError{Key: key}
	}

	return caller.Call(method, params) //nolint:wrapcheck
}

// Keys returns sorted keys of all methods reachable by Call.
func (g *Generic) Keys() []string {
	keys := make([]string, 0, len(methods))
	for key := range methods {
		keys = append(keys, key)
	}

	g.mu.Lock()

	for name, p := range g.custom {
		if caller, ok := p.(Caller); ok {
			for _, method := range caller.Methods() {
				keys = append(keys, name+KeySeparator+method)
			}
		}
	}

	g.mu.Unlock()

	slices.Sort(keys)

	return keys
}
