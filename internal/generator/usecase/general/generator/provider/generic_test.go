package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

type fruitProvider struct {
	generic *Generic
}

func (p *fruitProvider) Name() string { return "fruit" }

func (p *fruitProvider) Methods() []string { return []string{"name"} }

func (p *fruitProvider) Call(method string, _ Params) (any, error) {
	if method != "name" {
		return nil, &UnknownMethodError{Key: method}
	}

	fruits := []string{"apple", "pear", "plum"}

	return fruits[p.generic.Random().IntN(len(fruits))], nil
}

type unnamedProvider struct{}

func (unnamedProvider) Name() string { return "" }

func TestNewGeneric(t *testing.T) {
	type testCase struct {
		name     string
		locale   string
		expected string
		wantErr  bool
	}

	testCases := []testCase{
		{name: "Default locale", locale: "", expected: locale.DefaultLocale},
		{name: "Regional locale", locale: "pt_BR", expected: "pt-br"},
		{name: "Unsupported locale", locale: "xx", wantErr: true},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		g, err := NewGeneric(Config{Locale: tc.locale})
		if tc.wantErr {
			var localeErr *locale.UnsupportedLocaleError

			require.ErrorAs(t, err, &localeErr)

			return
		}

		require.NoError(t, err)
		require.Equal(t, tc.expected, g.Locale())
		require.Equal(t, tc.expected, g.Address().Locale())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestGenericMemoization(t *testing.T) {
	g, err := NewGeneric(Config{Seed: 1})
	require.NoError(t, err)

	require.Same(t, g.Address(), g.Address())
	require.Same(t, g.Payment(), g.Payment())
	require.Same(t, g.Random(), g.Person().Random())
	require.Same(t, g.Random(), g.Hardware().Random())

	p, ok := g.Provider(TextName)
	require.True(t, ok)
	require.Same(t, g.Text(), p)

	_, ok = g.Provider("unknown")
	require.False(t, ok)
}

func TestGenericCallAllKeys(t *testing.T) {
	for _, code := range locale.Codes() {
		t.Run(code, func(t *testing.T) {
			g, err := NewGeneric(Config{Locale: code, Seed: 42})
			require.NoError(t, err)

			for _, key := range g.Keys() {
				v, err := g.Call(key, nil)
				require.NoError(t, err, key)
				require.NotNil(t, v, key)
			}
		})
	}
}

func TestGenericReproducibility(t *testing.T) {
	generate := func(g *Generic) []any {
		values := make([]any, 0)

		for range 3 {
			for _, key := range g.Keys() {
				v, err := g.Call(key, nil)
				require.NoError(t, err)

				values = append(values, v)
			}
		}

		return values
	}

	first, err := NewGeneric(Config{Locale: "ru", Seed: 7})
	require.NoError(t, err)

	second, err := NewGeneric(Config{Locale: "ru", Seed: 7})
	require.NoError(t, err)

	expected := generate(first)
	require.Equal(t, expected, generate(second))

	first.Reseed(7)
	require.Equal(t, expected, generate(first))
}

func TestGenericCallErrors(t *testing.T) {
	type testCase struct {
		name     string
		key      string
		params   Params
		checkErr func(t *testing.T, err error)
	}

	unknown := func(t *testing.T, err error) {
		t.Helper()

		var methodErr *UnknownMethodError

		require.ErrorAs(t, err, &methodErr)
	}

	invalidParam := func(name string) func(t *testing.T, err error) {
		return func(t *testing.T, err error) {
			t.Helper()

			var paramErr *ParamError

			require.ErrorAs(t, err, &paramErr)
			require.Equal(t, name, paramErr.Name)
		}
	}

	testCases := []testCase{
		{name: "Unknown provider", key: "planet.name", checkErr: unknown},
		{name: "Unknown method", key: "address.planet", checkErr: unknown},
		{name: "No separator", key: "address", checkErr: unknown},
		{name: "Invalid gender", key: "person.first_name", params: Params{"gender": "x"}, checkErr: invalidParam("gender")},
		{name: "Invalid integer", key: "text.words", params: Params{"quantity": "many"}, checkErr: invalidParam("quantity")},
		{name: "Negative quantity", key: "text.words", params: Params{"quantity": -1}, checkErr: invalidParam("quantity")},
		{name: "Huge quantity", key: "text.words", params: Params{"quantity": "4611686018427387904"}, checkErr: invalidParam("quantity")},
		{name: "Huge text", key: "text.text", params: Params{"quantity": MaxQuantity + 1}, checkErr: invalidParam("quantity")},
		{name: "Huge password", key: "person.password", params: Params{"length": float64(1 << 62)}, checkErr: invalidParam("length")},
		{name: "Huge token", key: "cryptographic.token", params: Params{"entropy": 1 << 62}, checkErr: invalidParam("entropy")},
		{name: "Huge hex token", key: "cryptographic.token_hex", params: Params{"entropy": "4611686018427387904"}, checkErr: invalidParam("entropy")},
		{name: "Invalid format", key: "code.isbn", params: Params{"format": "isbn-11"}, checkErr: invalidParam("format")},
		{name: "Invalid network", key: "payment.credit_card_number", params: Params{"network": "Mir"}, checkErr: invalidParam("network")},
		{name: "Invalid year", key: "datetime.date", params: Params{"start": 1000}, checkErr: invalidParam("year")},
		{name: "Invalid hash", key: "cryptographic.hash", params: Params{"algorithm": "crc"}, checkErr: invalidParam("algorithm")},
		{name: "Invalid slug", key: "internet.slug", params: Params{"parts": 1}, checkErr: invalidParam("parts")},
		{name: "Invalid username", key: "person.username", params: Params{"template": "x"}, checkErr: invalidParam("template")},
	}

	g, err := NewGeneric(Config{Seed: 1})
	require.NoError(t, err)

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		_, err := g.Call(tc.key, tc.params)
		require.Error(t, err)
		tc.checkErr(t, err)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestAddProvider(t *testing.T) {
	g, err := NewGeneric(Config{Seed: 3})
	require.NoError(t, err)

	fruit := &fruitProvider{generic: g}

	require.NoError(t, g.AddProvider(fruit))
	require.ErrorIs(t, g.AddProvider(fruit), ErrDuplicateProviderName)
	require.ErrorIs(t, g.AddProvider(unnamedProvider{}), ErrEmptyProviderName)
	require.ErrorIs(t, g.AddProvider(NewHardware(nil)), ErrDuplicateProviderName)
	require.NoError(t, g.AddProvider(namedOnly("static")))

	require.Contains(t, g.Keys(), "fruit.name")
	require.IsIncreasing(t, g.Keys())

	v, err := g.Call("fruit.name", nil)
	require.NoError(t, err)
	require.Contains(t, []string{"apple", "pear", "plum"}, v)

	_, err = g.Call("fruit.color", nil)
	require.ErrorAs(t, err, new(*UnknownMethodError))

	_, err = g.Call("static.value", nil)
	require.ErrorAs(t, err, new(*UnknownMethodError))

	p, ok := g.Provider("fruit")
	require.True(t, ok)
	require.Same(t, fruit, p)
}

type namedOnly string

func (n namedOnly) Name() string { return string(n) }

func TestMethods(t *testing.T) {
	infos := Methods()

	g, err := NewGeneric(Config{})
	require.NoError(t, err)
	require.Len(t, g.Keys(), len(infos))

	for i, info := range infos {
		require.Equal(t, g.Keys()[i], info.Key)
	}
}

func TestValidateParams(t *testing.T) {
	type testCase struct {
		name      string
		key       string
		params    Params
		wantParam string
		unknown   bool
	}

	testCases := []testCase{
		{name: "Known params", key: "person.full_name", params: Params{"gender": "male", "reverse": true}},
		{name: "No params", key: "code.imei"},
		{name: "Values are not checked", key: "text.words", params: Params{"quantity": "abc"}},
		{name: "Unknown param", key: "text.words", params: Params{"quantity": 1, "bogus": 1}, wantParam: "bogus"},
		{name: "Method without params", key: "code.imei", params: Params{"mask": "##"}, wantParam: "mask"},
		{name: "Unknown key", key: "code.planet", unknown: true},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		err := ValidateParams(tc.key, tc.params)

		switch {
		case tc.unknown:
			require.ErrorAs(t, err, new(*UnknownMethodError))
		case tc.wantParam != "":
			var paramErr *ParamError

			require.ErrorAs(t, err, &paramErr)
			require.Equal(t, tc.wantParam, paramErr.Name)
		default:
			require.NoError(t, err)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestParams(t *testing.T) {
	p := Params{
		"int":    3,
		"float":  float64(4),
		"half":   1.5,
		"string": "12",
		"bool":   "true",
		"list":   []any{"a", "b"},
		"csv":    "a,b",
		"date":   "2001-02-03",
	}

	i, err := p.Int("float", 0)
	require.NoError(t, err)
	require.Equal(t, 4, i)

	i, err = p.Int("string", 0)
	require.NoError(t, err)
	require.Equal(t, 12, i)

	i, err = p.Int("absent", 9)
	require.NoError(t, err)
	require.Equal(t, 9, i)

	_, err = p.Int("half", 0)
	require.Error(t, err)

	f, err := p.Float("int", 0)
	require.NoError(t, err)
	require.InDelta(t, 3.0, f, 1e-9)

	b, err := p.Bool("bool", false)
	require.NoError(t, err)
	require.True(t, b)

	list, err := p.Strings("list")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, list)

	list, err = p.Strings("csv")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, list)

	date, err := p.Time("date", time.Time{})
	require.NoError(t, err)
	require.Equal(t, "2001-02-03", date.Format("2006-01-02"))

	_, err = p.String("int", "")
	require.Error(t, err)
}
