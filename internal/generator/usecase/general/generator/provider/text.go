package provider

import (
	"fmt"
	"strings"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// Verify interface compliance in compile time.
var _ NamedProvider = (*Text)(nil)

// Text type is used to generate words and sentences of locale.
type Text struct {
	BaseDataProvider
}

// NewText creates Text provider.
func NewText(cfg Config) (*Text, error) {
	base, err := newBaseDataProvider(cfg)
	if err != nil {
		return nil, err
	}

	return &Text{BaseDataProvider: base}, nil
}

// Name returns name of text provider.
func (p *Text) Name() string {
	return TextName
}

// Word returns random word.
func (p *Text) Word() (string, error) {
	return p.pick(locale.TextFile, "words.normal")
}

// Words returns quantity random words.
func (p *Text) Words(quantity int) ([]string, error) {
	if quantity < 0 || quantity > MaxQuantity {
		return nil, paramErrorf("quantity", "must be in range [0, %d], got %d", MaxQuantity, quantity)
	}

	words, err := p.values(locale.TextFile, "words.normal")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, quantity)

	for range quantity {
		word, err := random.Choice(p.random, words)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		result = append(result, word)
	}

	return result, nil
}

// Sentence returns random sentence.
func (p *Text) Sentence() (string, error) {
	return p.pick(locale.TextFile, "text")
}

// Text returns quantity sentences joined by space.
func (p *Text) Text(quantity int) (string, error) {
	if quantity <= 0 || quantity > MaxQuantity {
		return "", paramErrorf("quantity", "must be in range [1, %d], got %d", MaxQuantity, quantity)
	}

	sentences := make([]string, 0, quantity)

	for range quantity {
		sentence, err := p.Sentence()
		if err != nil {
			return "", err
		}

		sentences = append(sentences, sentence)
	}

	return strings.Join(sentences, " "), nil
}

// Title returns sentence with words capitalized by rules of locale language.
func (p *Text) Title() (string, error) {
	sentence, err := p.Sentence()
	if err != nil {
		return "", err
	}

	return p.title(strings.TrimRight(sentence, ".!?")), nil
}

// Color returns color name in language of locale.
func (p *Text) Color() (string, error) {
	return p.pick(locale.TextFile, "color")
}

// Answer returns answer to yes/no question.
func (p *Text) Answer() (string, error) {
	return p.pick(locale.TextFile, "answers")
}

// Level returns level of danger.
func (p *Text) Level() (string, error) {
	return p.pick(locale.TextFile, "level")
}

// Quote returns random quote.
func (p *Text) Quote() (string, error) {
	return p.pick(locale.TextFile, "quotes")
}

// Alphabet returns letters of word list of locale in upper case, ordered by first appearance.
func (p *Text) Alphabet() (string, error) {
	words, err := p.values(locale.TextFile, "words.normal")
	if err != nil {
		return "", err
	}

	seen := make(map[rune]struct{})

	var sb strings.Builder

	for _, word := range words {
		for _, c := range p.upper(word) {
			if _, ok := seen[c]; ok || c == ' ' || c == '-' {
				continue
			}

			seen[c] = struct{}{}

			sb.WriteRune(c)
		}
	}

	return sb.String(), nil
}

// HexColor returns color in "#rrggbb" form. Components of safe colors are
// multiples of 0x33, i.e. colors of web-safe palette.
func (p *Text) HexColor(safe bool) string {
	rgb := p.RGBColor(safe)

	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// RGBColor returns red, green and blue components of color.
func (p *Text) RGBColor(safe bool) [3]int {
	var rgb [3]int

	for i := range rgb {
		if safe {
			rgb[i] = p.random.IntN(6) * 0x33
		} else {
			rgb[i] = p.random.IntN(256)
		}
	}

	return rgb
}
