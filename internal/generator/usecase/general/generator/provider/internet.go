package provider

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
)

// StockImageBaseURL is source of placeholder images returned by StockImageURL.
const StockImageBaseURL = "https://source.unsplash.com"

// Port ranges.
const (
	PortRangeAll        = "all"
	PortRangeWellKnown  = "well-known"
	PortRangeRegistered = "registered"
	PortRangeEphemeral  = "ephemeral"
)

var portRanges = map[string][2]int{
	PortRangeAll:        {1, 65535},
	PortRangeWellKnown:  {1, 1023},
	PortRangeRegistered: {1024, 49151},
	PortRangeEphemeral:  {49152, 65535},
}

// Verify interface compliance in compile time.
var _ NamedProvider = (*Internet)(nil)

// Internet type is used to generate network data.
type Internet struct {
	BaseProvider
}

// NewInternet creates Internet provider.
func NewInternet(rnd *random.Random) *Internet {
	return &Internet{BaseProvider: newBaseProvider(rnd)}
}

// Name returns name of internet provider.
func (p *Internet) Name() string {
	return InternetName
}

// IPv4 returns random IPv4 address.
func (p *Internet) IPv4() string {
	return p.random.IPv4Address()
}

// IPv6 returns random IPv6 address.
func (p *Internet) IPv6() string {
	return p.random.IPv6Address()
}

// MACAddress returns random MAC address.
func (p *Internet) MACAddress() string {
	return p.random.MacAddress()
}

// UserAgent returns random browser user agent.
func (p *Internet) UserAgent() string {
	return p.random.Faker.UserAgent()
}

// HTTPMethod returns random HTTP method.
func (p *Internet) HTTPMethod() string {
	return p.random.HTTPMethod()
}

// HTTPStatusCode returns random HTTP status code.
func (p *Internet) HTTPStatusCode() int {
	return p.random.HTTPStatusCode()
}

// TopLevelDomain returns domain suffix with leading dot, e.g. ".com".
func (p *Internet) TopLevelDomain() string {
	return "." + p.random.DomainSuffix()
}

// Hostname returns host name of word and top level domain.
func (p *Internet) Hostname() string {
	return random.MustChoice(p.random, commonWords) + p.TopLevelDomain()
}

// URL returns URL of scheme with random host name, "https" if scheme is empty.
func (p *Internet) URL(scheme string) string {
	if scheme == "" {
		scheme = "https"
	}

	u := url.URL{Scheme: scheme, Host: p.Hostname(), Path: "/"}

	return u.String()
}

// Slug returns parts words joined by hyphen.
func (p *Internet) Slug(parts int) (string, error) {
	if parts < 2 || parts > 12 {
		return "", paramErrorf("parts", "must be in range [2, 12], got %d", parts)
	}

	words, err := random.Sample(p.random, commonWords, parts)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return strings.Join(words, "-"), nil
}

// StockImageURL returns URL of random image of size width x height matching keywords.
func (p *Internet) StockImageURL(width, height int, keywords []string) (string, error) {
	if width <= 0 || height <= 0 {
		return "", paramErrorf("size", "must be positive, got %dx%d", width, height)
	}

	u := fmt.Sprintf("%s/%dx%d", StockImageBaseURL, width, height)

	if len(keywords) > 0 {
		u += "?" + url.QueryEscape(strings.Join(keywords, ","))
	}

	return u, nil
}

// Port returns port number of range "all", "well-known", "registered" or "ephemeral".
func (p *Internet) Port(portRange string) (int, error) {
	if portRange == "" {
		portRange = PortRangeAll
	}

	bounds, ok := portRanges[portRange]
	if !ok {
		return 0, oneOf("range", portRange, PortRangeAll, PortRangeWellKnown, PortRangeRegistered, PortRangeEphemeral)
	}

	return p.random.Range(bounds[0], bounds[1]), nil
}
