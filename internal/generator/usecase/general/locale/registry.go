package locale

import (
	"slices"
	"strings"
)

// Info type is used to describe supported locale.
type Info struct {
	Code      string `json:"code"       yaml:"code"`
	Name      string `json:"name"       yaml:"name"`
	LocalName string `json:"local_name" yaml:"local_name"`
}

var registry = map[string]Info{
	"da":    {Code: "da", Name: "Danish", LocalName: "Dansk"},
	"de":    {Code: "de", Name: "German", LocalName: "Deutsch"},
	"de-at": {Code: "de-at", Name: "Austrian german", LocalName: "Deutsch"},
	"en":    {Code: "en", Name: "English", LocalName: "English"},
	"en-gb": {Code: "en-gb", Name: "British English", LocalName: "English"},
	"es":    {Code: "es", Name: "Spanish", LocalName: "Español"},
	"fi":    {Code: "fi", Name: "Finnish", LocalName: "Suomi"},
	"fr":    {Code: "fr", Name: "French", LocalName: "Français"},
	"is":    {Code: "is", Name: "Icelandic", LocalName: "Íslenska"},
	"it":    {Code: "it", Name: "Italian", LocalName: "Italiano"},
	"nl":    {Code: "nl", Name: "Dutch", LocalName: "Nederlands"},
	"no":    {Code: "no", Name: "Norwegian", LocalName: "Norsk"},
	"pl":    {Code: "pl", Name: "Polish", LocalName: "Polski"},
	"pt":    {Code: "pt", Name: "Portuguese", LocalName: "Português"},
	"pt-br": {Code: "pt-br", Name: "Brazilian Portuguese", LocalName: "Português Brasileiro"},
	"ru":    {Code: "ru", Name: "Russian", LocalName: "Русский"},
	"sv":    {Code: "sv", Name: "Swedish", LocalName: "Svenska"},
}

// Lookup returns registry entry for locale code. Code is compared case-insensitively.
func Lookup(code string) (Info, error) {
	info, ok := registry[Normalize(code)]
	if !ok {
		return Info{}, NewUnsupportedLocaleError(code)
	}

	return info, nil
}

// IsSupported reports whether locale code is present in registry.
func IsSupported(code string) bool {
	_, ok := registry[Normalize(code)]

	return ok
}

// Supported returns all registered locales ordered by code.
func Supported() []Info {
	infos := make([]Info, 0, len(registry))
	for _, info := range registry {
		infos = append(infos, info)
	}

	slices.SortFunc(infos, func(a, b Info) int {
		return strings.Compare(a.Code, b.Code)
	})

	return infos
}

// Codes returns all registered locale codes ordered.
func Codes() []string {
	infos := Supported()

	codes := make([]string, 0, len(infos))
	for _, info := range infos {
		codes = append(codes, info.Code)
	}

	return codes
}
