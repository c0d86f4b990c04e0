package random

import (
	"math"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/mask"
)

// ErrEmptySequence is returned when choosing from empty sequence.
var ErrEmptySequence = errors.New("cannot choose from empty sequence")

// Verify interface compliance in compile time.
var _ mask.Source = (*Random)(nil)

// Random type is source of random values shared by providers.
// The underlying faker uses locked source, so Random is safe for concurrent use,
// except Reseed which must not race with generation.
type Random struct {
	*gofakeit.Faker
	seed int64
}

// New creates Random. Zero seed means random seed.
func New(seed int64) *Random {
	return &Random{
		Faker: gofakeit.New(seed),
		seed:  seed,
	}
}

// Seed returns seed Random was created with.
func (r *Random) Seed() int64 {
	return r.seed
}

// Reseed resets sequence of values to the one defined by seed.
func (r *Random) Reseed(seed int64) {
	r.Faker = gofakeit.New(seed)
	r.seed = seed
}

// IntN returns integer in [0, n). It panics if n <= 0.
func (r *Random) IntN(n int) int {
	return r.Rand.Intn(n)
}

// Range returns integer in [lo, hi], bounds are swapped if needed.
func (r *Random) Range(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}

	return r.Number(lo, hi)
}

// Float returns float in [lo, hi) rounded to precision digits after point.
func (r *Random) Float(lo, hi float64, precision int) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	value := r.Float64Range(lo, hi)
	if precision < 0 {
		return value
	}

	scale := math.Pow10(precision)

	return math.Round(value*scale) / scale
}

// Digits returns n random decimal digits.
func (r *Random) Digits(n int) []int {
	digits := make([]int, n)
	for i := range digits {
		digits[i] = r.IntN(10)
	}

	return digits
}

// DigitString returns string of n random decimal digits.
func (r *Random) DigitString(n int) string {
	return mask.Default(r, strings.Repeat(string(mask.DefaultDigit), n))
}

// CustomCode generates code by mask with '#' for digits and '@' for letters.
func (r *Random) CustomCode(m string) string {
	return mask.Default(r, m)
}

// CustomCodeWith generates code by mask with custom placeholders.
func (r *Random) CustomCodeWith(m string, digit, letter rune) (string, error) {
	return mask.Generate(r, m, digit, letter) //nolint:wrapcheck
}

// Read fills p with random bytes of seeded sequence. It is used as
// entropy source of UUIDs and tokens, so they are reproducible too.
func (r *Random) Read(p []byte) (int, error) {
	return r.Rand.Read(p) //nolint:wrapcheck
}

// Choice returns uniformly chosen element of items.
func Choice[T any](r *Random, items []T) (T, error) {
	var zero T

	if len(items) == 0 {
		return zero, ErrEmptySequence
	}

	return items[r.IntN(len(items))], nil
}

// MustChoice is Choice for non-empty literal tables of the code.
func MustChoice[T any](r *Random, items []T) T {
	item, err := Choice(r, items)
	if err != nil {
		panic(err)
	}

	return item
}

// Sample returns k distinct elements of items in random order.
func Sample[T any](r *Random, items []T, k int) ([]T, error) {
	if k < 0 || k > len(items) {
		return nil, errors.Errorf("sample size %d is out of range [0, %d]", k, len(items))
	}

	indexes := r.Rand.Perm(len(items))[:k]

	sample := make([]T, k)
	for i, idx := range indexes {
		sample[i] = items[idx]
	}

	return sample, nil
}
