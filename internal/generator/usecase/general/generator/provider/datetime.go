package provider

import (
	"time"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// Years out of this range can not be represented by time in nanoseconds.
const (
	MinYear = 1700
	MaxYear = 2200
)

// Verify interface compliance in compile time.
var _ NamedProvider = (*Datetime)(nil)

// Datetime type is used to generate dates and times with names of locale.
type Datetime struct {
	BaseDataProvider
}

// NewDatetime creates Datetime provider.
func NewDatetime(cfg Config) (*Datetime, error) {
	base, err := newBaseDataProvider(cfg)
	if err != nil {
		return nil, err
	}

	return &Datetime{BaseDataProvider: base}, nil
}

// Name returns name of datetime provider.
func (p *Datetime) Name() string {
	return DatetimeName
}

// Month returns month name, abbreviated if abbr is true.
func (p *Datetime) Month(abbr bool) (string, error) {
	if abbr {
		return p.pick(locale.DatetimeFile, "month.abbr")
	}

	return p.pick(locale.DatetimeFile, "month.name")
}

// DayOfWeek returns day name, abbreviated if abbr is true.
func (p *Datetime) DayOfWeek(abbr bool) (string, error) {
	if abbr {
		return p.pick(locale.DatetimeFile, "day.abbr")
	}

	return p.pick(locale.DatetimeFile, "day.name")
}

// Periodicity returns random periodicity, e.g. "weekly".
func (p *Datetime) Periodicity() (string, error) {
	return p.pick(locale.DatetimeFile, "periodicity")
}

// Year returns year in [minimum, maximum].
func (p *Datetime) Year(minimum, maximum int) int {
	return p.random.Range(minimum, maximum)
}

// Century returns century in roman numerals.
func (p *Datetime) Century() string {
	return random.MustChoice(p.random, romanNumerals)
}

// Date returns date at midnight UTC between beginning of start year and end of end year.
func (p *Datetime) Date(start, end int) (time.Time, error) {
	if err := checkYears(start, end); err != nil {
		return time.Time{}, err
	}

	if start > end {
		start, end = end, start
	}

	first := time.Date(start, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(time.Date(end+1, time.January, 1, 0, 0, 0, 0, time.UTC).Sub(first).Hours() / 24)

	return first.AddDate(0, 0, p.random.IntN(days)), nil
}

// FormattedDate returns date in layout, in date format of locale if layout is empty.
func (p *Datetime) FormattedDate(layout string, start, end int) (string, error) {
	layout, err := p.layout(layout, "formats.date")
	if err != nil {
		return "", err
	}

	date, err := p.Date(start, end)
	if err != nil {
		return "", err
	}

	return date.Format(layout), nil
}

// Time returns random time of day of zero date.
func (p *Datetime) Time() time.Time {
	return time.Date(0, time.January, 1, p.random.IntN(24), p.random.IntN(60), p.random.IntN(60), 0, time.UTC)
}

// FormattedTime returns time of day in layout, in time format of locale if layout is empty.
func (p *Datetime) FormattedTime(layout string) (string, error) {
	layout, err := p.layout(layout, "formats.time")
	if err != nil {
		return "", err
	}

	return p.Time().Format(layout), nil
}

// Datetime returns moment between beginning of start year and end of end year in UTC.
func (p *Datetime) Datetime(start, end int) (time.Time, error) {
	if err := checkYears(start, end); err != nil {
		return time.Time{}, err
	}

	if start > end {
		start, end = end, start
	}

	return p.random.DateRange(
		time.Date(start, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(end, time.December, 31, 23, 59, 59, 0, time.UTC),
	).Truncate(time.Second), nil
}

// Timestamp returns unix time of Datetime.
func (p *Datetime) Timestamp(start, end int) (int64, error) {
	dt, err := p.Datetime(start, end)
	if err != nil {
		return 0, err
	}

	return dt.Unix(), nil
}

// Timezone returns IANA time zone name.
func (p *Datetime) Timezone() string {
	return p.random.TimeZoneRegion()
}

func (p *Datetime) layout(layout, path string) (string, error) {
	if layout != "" {
		return layout, nil
	}

	return p.value(locale.DatetimeFile, path)
}

func checkYears(years ...int) error {
	for _, year := range years {
		if year < MinYear || year > MaxYear {
			return paramErrorf("year", "%d is out of range [%d, %d]", year, MinYear, MaxYear)
		}
	}

	return nil
}
