package provider

import (
	"slices"
	"strings"
	"time"
)

type methodFunc func(g *Generic, p Params) (any, error)

type method struct {
	params []string
	call   methodFunc
}

// MethodInfo type describes method of built-in provider.
type MethodInfo struct {
	Key    string   `json:"key"              yaml:"key"`
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Methods returns sorted descriptions of built-in provider methods.
func Methods() []MethodInfo {
	infos := make([]MethodInfo, 0, len(methods))
	for key, m := range methods {
		infos = append(infos, MethodInfo{Key: key, Params: m.params})
	}

	slices.SortFunc(infos, func(a, b MethodInfo) int {
		return strings.Compare(a.Key, b.Key)
	})

	return infos
}

// MethodKeys returns sorted keys of built-in provider methods.
func MethodKeys() []string {
	keys := make([]string, 0, len(methods))
	for key := range methods {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// ValidateParams checks that built-in method key exists and accepts every param name.
// Param values are checked by the method itself.
func ValidateParams(key string, params Params) error {
	m, ok := methods[key]
	if !ok {
		return &UnknownMethodError{Key: key}
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		if slices.Contains(m.params, name) {
			continue
		}

		if len(m.params) == 0 {
			return paramErrorf(name, "method %q takes no params", key)
		}

		return paramErrorf(name, "unknown param of method %q, expected one of %s", key, strings.Join(m.params, ", "))
	}

	return nil
}

func value[T any](fn func(g *Generic) T) method {
	return method{call: func(g *Generic, _ Params) (any, error) { return fn(g), nil }}
}

func valueErr[T any](fn func(g *Generic) (T, error)) method {
	return method{call: func(g *Generic, _ Params) (any, error) { return fn(g) }}
}

func withParams(params []string, call methodFunc) method {
	return method{params: params, call: call}
}

func boolParam(name string, def bool, fn func(g *Generic, v bool) (any, error)) method {
	return withParams([]string{name}, func(g *Generic, p Params) (any, error) {
		v, err := p.Bool(name, def)
		if err != nil {
			return nil, err
		}

		return fn(g, v)
	})
}

func intParam(name string, def int, fn func(g *Generic, v int) (any, error)) method {
	return withParams([]string{name}, func(g *Generic, p Params) (any, error) {
		v, err := p.Int(name, def)
		if err != nil {
			return nil, err
		}

		return fn(g, v)
	})
}

func stringParam(name string, def string, fn func(g *Generic, v string) (any, error)) method {
	return withParams([]string{name}, func(g *Generic, p Params) (any, error) {
		v, err := p.String(name, def)
		if err != nil {
			return nil, err
		}

		return fn(g, v)
	})
}

func genderParam(fn func(g *Generic, gender Gender) (any, error)) method {
	return withParams([]string{"gender"}, func(g *Generic, p Params) (any, error) {
		gender, err := p.Gender("gender")
		if err != nil {
			return nil, err
		}

		return fn(g, gender)
	})
}

func intRangeParams(lo, hi int, fn func(g *Generic, lo, hi int) (any, error)) method {
	return withParams([]string{"minimum", "maximum"}, func(g *Generic, p Params) (any, error) {
		minimum, err := p.Int("minimum", lo)
		if err != nil {
			return nil, err
		}

		maximum, err := p.Int("maximum", hi)
		if err != nil {
			return nil, err
		}

		return fn(g, minimum, maximum)
	})
}

func floatRangeParams(lo, hi float64, fn func(g *Generic, lo, hi float64) (any, error)) method {
	return withParams([]string{"minimum", "maximum"}, func(g *Generic, p Params) (any, error) {
		minimum, err := p.Float("minimum", lo)
		if err != nil {
			return nil, err
		}

		maximum, err := p.Float("maximum", hi)
		if err != nil {
			return nil, err
		}

		return fn(g, minimum, maximum)
	})
}

func yearRangeParams(fn func(g *Generic, start, end int) (any, error)) method {
	return withParams([]string{"start", "end"}, func(g *Generic, p Params) (any, error) {
		start, err := p.Int("start", 2000)
		if err != nil {
			return nil, err
		}

		end, err := p.Int("end", time.Now().Year())
		if err != nil {
			return nil, err
		}

		return fn(g, start, end)
	})
}

//nolint:lll
var methods = map[string]method{
	"address.street_number":   intParam("maximum", 1400, func(g *Generic, v int) (any, error) { return g.Address().StreetNumber(v), nil }),
	"address.street_name":     valueErr(func(g *Generic) (string, error) { return g.Address().StreetName() }),
	"address.street_suffix":   valueErr(func(g *Generic) (string, error) { return g.Address().StreetSuffix() }),
	"address.address":         valueErr(func(g *Generic) (string, error) { return g.Address().Address() }),
	"address.state":           boolParam("abbr", false, func(g *Generic, v bool) (any, error) { return g.Address().State(v) }),
	"address.state_abbr":      valueErr(func(g *Generic) (string, error) { return g.Address().StateAbbr() }),
	"address.postal_code":     valueErr(func(g *Generic) (string, error) { return g.Address().PostalCode() }),
	"address.zip_code":        valueErr(func(g *Generic) (string, error) { return g.Address().ZipCode() }),
	"address.city":            valueErr(func(g *Generic) (string, error) { return g.Address().City() }),
	"address.country":         valueErr(func(g *Generic) (string, error) { return g.Address().Country() }),
	"address.default_country": valueErr(func(g *Generic) (string, error) { return g.Address().DefaultCountry() }),
	"address.country_code":    stringParam("format", "a2", func(g *Generic, v string) (any, error) { return g.Address().CountryCode(v) }),
	"address.calling_code":    valueErr(func(g *Generic) (string, error) { return g.Address().CallingCode() }),
	"address.latitude":        value(func(g *Generic) float64 { return g.Address().Latitude() }),
	"address.longitude":       value(func(g *Generic) float64 { return g.Address().Longitude() }),
	"address.coordinates":     value(func(g *Generic) Coordinates { return g.Address().Coordinates() }),
	"address.continent":       valueErr(func(g *Generic) (string, error) { return g.Address().Continent() }),

	"person.first_name": genderParam(func(g *Generic, gender Gender) (any, error) { return g.Person().FirstName(gender) }),
	"person.last_name":  genderParam(func(g *Generic, gender Gender) (any, error) { return g.Person().LastName(gender) }),
	"person.full_name": withParams([]string{"gender", "reverse"}, func(g *Generic, p Params) (any, error) {
		gender, err := p.Gender("gender")
		if err != nil {
			return nil, err
		}

		reverse, err := p.Bool("reverse", false)
		if err != nil {
			return nil, err
		}

		return g.Person().FullName(gender, reverse)
	}),
	"person.title": withParams([]string{"gender", "kind"}, func(g *Generic, p Params) (any, error) {
		gender, err := p.Gender("gender")
		if err != nil {
			return nil, err
		}

		kind, err := p.String("kind", "")
		if err != nil {
			return nil, err
		}

		return g.Person().Title(gender, kind)
	}),
	"person.occupation":  valueErr(func(g *Generic) (string, error) { return g.Person().Occupation() }),
	"person.nationality": valueErr(func(g *Generic) (string, error) { return g.Person().Nationality() }),
	"person.gender":      valueErr(func(g *Generic) (string, error) { return g.Person().Gender() }),
	"person.telephone":   stringParam("mask", "", func(g *Generic, v string) (any, error) { return g.Person().Telephone(v) }),
	"person.username":    stringParam("template", "", func(g *Generic, v string) (any, error) { return g.Person().Username(v) }),
	"person.email": withParams([]string{"domains"}, func(g *Generic, p Params) (any, error) {
		domains, err := p.Strings("domains")
		if err != nil {
			return nil, err
		}

		return g.Person().Email(domains)
	}),
	"person.age": intRangeParams(16, 66, func(g *Generic, lo, hi int) (any, error) { return g.Person().Age(lo, hi), nil }),
	"person.password": withParams([]string{"length", "hashed"}, func(g *Generic, p Params) (any, error) {
		length, err := p.Int("length", 8)
		if err != nil {
			return nil, err
		}

		hashed, err := p.Bool("hashed", false)
		if err != nil {
			return nil, err
		}

		return g.Person().Password(length, hashed)
	}),

	"finance.company":         valueErr(func(g *Generic) (string, error) { return g.Finance().Company() }),
	"finance.company_type":    boolParam("abbr", false, func(g *Generic, v bool) (any, error) { return g.Finance().CompanyType(v) }),
	"finance.currency_code":   valueErr(func(g *Generic) (string, error) { return g.Finance().CurrencyCode() }),
	"finance.currency_symbol": valueErr(func(g *Generic) (string, error) { return g.Finance().CurrencySymbol() }),
	"finance.price":           floatRangeParams(500, 1500, func(g *Generic, lo, hi float64) (any, error) { return g.Finance().Price(lo, hi), nil }),
	"finance.formatted_price": floatRangeParams(500, 1500, func(g *Generic, lo, hi float64) (any, error) { return g.Finance().FormattedPrice(lo, hi) }),
	"finance.price_in_btc":    floatRangeParams(0, 2, func(g *Generic, lo, hi float64) (any, error) { return g.Finance().PriceInBTC(lo, hi), nil }),
	"finance.stock_ticker":    value(func(g *Generic) string { return g.Finance().StockTicker() }),
	"finance.bank":            valueErr(func(g *Generic) (string, error) { return g.Finance().Bank() }),

	"datetime.month":       boolParam("abbr", false, func(g *Generic, v bool) (any, error) { return g.Datetime().Month(v) }),
	"datetime.day_of_week": boolParam("abbr", false, func(g *Generic, v bool) (any, error) { return g.Datetime().DayOfWeek(v) }),
	"datetime.periodicity": valueErr(func(g *Generic) (string, error) { return g.Datetime().Periodicity() }),
	"datetime.year": intRangeParams(1990, time.Now().Year(), func(g *Generic, lo, hi int) (any, error) {
		return g.Datetime().Year(lo, hi), nil
	}),
	"datetime.century": value(func(g *Generic) string { return g.Datetime().Century() }),
	"datetime.date": yearRangeParams(func(g *Generic, start, end int) (any, error) {
		date, err := g.Datetime().Date(start, end)
		if err != nil {
			return nil, err
		}

		return date.Format(time.DateOnly), nil
	}),
	"datetime.formatted_date": withParams([]string{"layout", "start", "end"}, func(g *Generic, p Params) (any, error) {
		layout, err := p.String("layout", "")
		if err != nil {
			return nil, err
		}

		return yearRangeParams(func(g *Generic, start, end int) (any, error) {
			return g.Datetime().FormattedDate(layout, start, end)
		}).call(g, p)
	}),
	"datetime.time":           value(func(g *Generic) string { return g.Datetime().Time().Format(time.TimeOnly) }),
	"datetime.formatted_time": stringParam("layout", "", func(g *Generic, v string) (any, error) { return g.Datetime().FormattedTime(v) }),
	"datetime.datetime": yearRangeParams(func(g *Generic, start, end int) (any, error) {
		return g.Datetime().Datetime(start, end)
	}),
	"datetime.timestamp": yearRangeParams(func(g *Generic, start, end int) (any, error) {
		return g.Datetime().Timestamp(start, end)
	}),
	"datetime.timezone": value(func(g *Generic) string { return g.Datetime().Timezone() }),

	"text.word":      valueErr(func(g *Generic) (string, error) { return g.Text().Word() }),
	"text.words":     intParam("quantity", 5, func(g *Generic, v int) (any, error) { return g.Text().Words(v) }),
	"text.sentence":  valueErr(func(g *Generic) (string, error) { return g.Text().Sentence() }),
	"text.text":      intParam("quantity", 5, func(g *Generic, v int) (any, error) { return g.Text().Text(v) }),
	"text.title":     valueErr(func(g *Generic) (string, error) { return g.Text().Title() }),
	"text.color":     valueErr(func(g *Generic) (string, error) { return g.Text().Color() }),
	"text.answer":    valueErr(func(g *Generic) (string, error) { return g.Text().Answer() }),
	"text.level":     valueErr(func(g *Generic) (string, error) { return g.Text().Level() }),
	"text.quote":     valueErr(func(g *Generic) (string, error) { return g.Text().Quote() }),
	"text.alphabet":  valueErr(func(g *Generic) (string, error) { return g.Text().Alphabet() }),
	"text.hex_color": boolParam("safe", false, func(g *Generic, v bool) (any, error) { return g.Text().HexColor(v), nil }),
	"text.rgb_color": boolParam("safe", false, func(g *Generic, v bool) (any, error) { return g.Text().RGBColor(v), nil }),

	"code.locale_code":     value(func(g *Generic) string { return g.Code().LocaleCode() }),
	"code.issuing_network": value(func(g *Generic) string { return g.Code().IssuingNetwork() }),
	"code.pin":             stringParam("mask", "####", func(g *Generic, v string) (any, error) { return g.Code().PIN(v) }),
	"code.isbn":            stringParam("format", ISBN10, func(g *Generic, v string) (any, error) { return g.Code().ISBN(v) }),
	"code.ean":             stringParam("format", EAN13, func(g *Generic, v string) (any, error) { return g.Code().EAN(v) }),
	"code.imei":            value(func(g *Generic) string { return g.Code().IMEI() }),

	"payment.credit_card_network": value(func(g *Generic) string { return g.Payment().CreditCardNetwork() }),
	"payment.credit_card_number": stringParam("network", "", func(g *Generic, v string) (any, error) {
		return g.Payment().CreditCardNumber(v)
	}),
	"payment.credit_card_expiration_date": intRangeParams(16, 25, func(g *Generic, lo, hi int) (any, error) {
		return g.Payment().CreditCardExpirationDate(lo, hi), nil
	}),
	"payment.cvv":              value(func(g *Generic) string { return g.Payment().CVV() }),
	"payment.cid":              value(func(g *Generic) string { return g.Payment().CID() }),
	"payment.paypal":           value(func(g *Generic) string { return g.Payment().PayPal() }),
	"payment.bitcoin_address":  value(func(g *Generic) string { return g.Payment().BitcoinAddress() }),
	"payment.ethereum_address": value(func(g *Generic) string { return g.Payment().EthereumAddress() }),

	"internet.ip_v4":            value(func(g *Generic) string { return g.Internet().IPv4() }),
	"internet.ip_v6":            value(func(g *Generic) string { return g.Internet().IPv6() }),
	"internet.mac_address":      value(func(g *Generic) string { return g.Internet().MACAddress() }),
	"internet.user_agent":       value(func(g *Generic) string { return g.Internet().UserAgent() }),
	"internet.http_method":      value(func(g *Generic) string { return g.Internet().HTTPMethod() }),
	"internet.http_status_code": value(func(g *Generic) int { return g.Internet().HTTPStatusCode() }),
	"internet.top_level_domain": value(func(g *Generic) string { return g.Internet().TopLevelDomain() }),
	"internet.hostname":         value(func(g *Generic) string { return g.Internet().Hostname() }),
	"internet.url":              stringParam("scheme", "https", func(g *Generic, v string) (any, error) { return g.Internet().URL(v), nil }),
	"internet.slug":             intParam("parts", 5, func(g *Generic, v int) (any, error) { return g.Internet().Slug(v) }),
	"internet.stock_image_url": withParams([]string{"width", "height", "keywords"}, func(g *Generic, p Params) (any, error) {
		width, err := p.Int("width", 1920)
		if err != nil {
			return nil, err
		}

		height, err := p.Int("height", 1080)
		if err != nil {
			return nil, err
		}

		keywords, err := p.Strings("keywords")
		if err != nil {
			return nil, err
		}

		return g.Internet().StockImageURL(width, height, keywords)
	}),
	"internet.port": stringParam("range", PortRangeAll, func(g *Generic, v string) (any, error) { return g.Internet().Port(v) }),

	"cryptographic.uuid": valueErr(func(g *Generic) (string, error) {
		id, err := g.Cryptographic().UUID()
		if err != nil {
			return "", err
		}

		return id.String(), nil
	}),
	"cryptographic.token":     intParam("entropy", 32, func(g *Generic, v int) (any, error) { return g.Cryptographic().Token(v) }),
	"cryptographic.token_hex": intParam("entropy", 32, func(g *Generic, v int) (any, error) { return g.Cryptographic().TokenHex(v) }),
	"cryptographic.hash":      stringParam("algorithm", "md5", func(g *Generic, v string) (any, error) { return g.Cryptographic().Hash(v) }),
	"cryptographic.mnemonic":  valueErr(func(g *Generic) (string, error) { return g.Cryptographic().Mnemonic() }),

	"hardware.cpu":           value(func(g *Generic) string { return g.Hardware().CPU() }),
	"hardware.cpu_frequency": value(func(g *Generic) string { return g.Hardware().CPUFrequency() }),
	"hardware.generation":    value(func(g *Generic) string { return g.Hardware().Generation() }),
	"hardware.resolution":    value(func(g *Generic) string { return g.Hardware().Resolution() }),
	"hardware.screen_size":   value(func(g *Generic) string { return g.Hardware().ScreenSize() }),
	"hardware.ram_type":      value(func(g *Generic) string { return g.Hardware().RAMType() }),
	"hardware.ram_size":      value(func(g *Generic) string { return g.Hardware().RAMSize() }),
	"hardware.ssd_or_hdd":    value(func(g *Generic) string { return g.Hardware().SSDOrHDD() }),
	"hardware.graphics_card": value(func(g *Generic) string { return g.Hardware().GraphicsCard() }),
	"hardware.manufacturer":  value(func(g *Generic) string { return g.Hardware().Manufacturer() }),
	"hardware.phone_model":   value(func(g *Generic) string { return g.Hardware().PhoneModel() }),

	"brazil.cpf":  boolParam("with_mask", true, func(g *Generic, v bool) (any, error) { return g.Brazil().CPF(v), nil }),
	"brazil.cnpj": boolParam("with_mask", true, func(g *Generic, v bool) (any, error) { return g.Brazil().CNPJ(v), nil }),

	"russia.inn":               value(func(g *Generic) string { return g.Russia().INN() }),
	"russia.snils":             value(func(g *Generic) string { return g.Russia().SNILS() }),
	"russia.ogrn":              value(func(g *Generic) string { return g.Russia().OGRN() }),
	"russia.kpp":               value(func(g *Generic) string { return g.Russia().KPP() }),
	"russia.passport_series":   intParam("year", 0, func(g *Generic, v int) (any, error) { return g.Russia().PassportSeries(v), nil }),
	"russia.passport_number":   value(func(g *Generic) int { return g.Russia().PassportNumber() }),
	"russia.series_and_number": value(func(g *Generic) string { return g.Russia().SeriesAndNumber() }),

	"poland.nip": value(func(g *Generic) string { return g.Poland().NIP() }),
	"poland.pesel": withParams([]string{"birth_date", "gender"}, func(g *Generic, p Params) (any, error) {
		birthDate, err := p.Time("birth_date", time.Time{})
		if err != nil {
			return nil, err
		}

		gender, err := p.Gender("gender")
		if err != nil {
			return nil, err
		}

		return g.Poland().PESEL(birthDate, gender)
	}),
	"poland.regon": value(func(g *Generic) string { return g.Poland().REGON() }),

	"netherlands.bsn":                 value(func(g *Generic) string { return g.Netherlands().BSN() }),
	"netherlands.burgerservicenummer": value(func(g *Generic) string { return g.Netherlands().BurgerServiceNummer() }),

	"usa.ssn":              value(func(g *Generic) string { return g.USA().SSN() }),
	"usa.tracking_number":  stringParam("service", USPS, func(g *Generic, v string) (any, error) { return g.USA().TrackingNumber(v) }),
	"usa.personality_type": stringParam("category", MBTI, func(g *Generic, v string) (any, error) { return g.USA().PersonalityType(v) }),
}
