package models

import (
	"net/url"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/common"
)

const (
	DefaultOutputDir      = "output"
	DefaultOutputType     = "csv"
	DefaultDatetimeFormat = "2006-01-02T15:04:05Z07:00"
	defaultFormatTemplate = `{ "schema": {{ json .SchemaName }}, "rows": {{ rowsJson .ColumnNames .Rows }} }`
)

// DataRow type is used to represent any data row that was generated.
type DataRow struct {
	Values []any
}

// OutputConfig type is used to describe where and how generated rows are saved.
type OutputConfig struct {
	Type          string         `json:"type"   yaml:"type"`
	Dir           string         `json:"dir"    yaml:"dir"`
	Params        any            `json:"params" yaml:"params"`
	DevNullParams *DevNullConfig `json:"-"      yaml:"-"`
	CSVParams     *CSVConfig     `json:"-"      yaml:"-"`
	JSONParams    *JSONConfig    `json:"-"      yaml:"-"`
	ParquetParams *ParquetConfig `json:"-"      yaml:"-"`
	HTTPParams    *HTTPParams    `json:"-"      yaml:"-"`
}

var (
	OutputTypes          = []string{"csv", "json", "parquet", "http", "devnull"}
	DiskFilesOutputTypes = []string{"csv", "json", "parquet"} // output types that actually create files
)

func (c *OutputConfig) Parse() error {
	var err error

	switch c.Type {
	case "csv", "":
		c.CSVParams, err = common.AnyToStruct[CSVConfig](c.Params)
	case "json":
		c.JSONParams, err = common.AnyToStruct[JSONConfig](c.Params)
	case "parquet":
		c.ParquetParams, err = common.AnyToStruct[ParquetConfig](c.Params)
	case "http":
		c.HTTPParams, err = common.AnyToStruct[HTTPParams](c.Params)
	case "devnull":
		if c.DevNullParams == nil {
			c.DevNullParams, err = common.AnyToStruct[DevNullConfig](c.Params)
		}
	}

	if err != nil {
		return errors.WithMessagef(err, "%q output params", c.Type)
	}

	return nil
}

func (c *OutputConfig) FillDefaults() {
	if c.Type == "" {
		c.Type = DefaultOutputType
	}

	if c.Dir == "" {
		c.Dir = DefaultOutputDir
	}

	FieldFillDefaults(c.CSVParams)

	FieldFillDefaults(c.JSONParams)

	FieldFillDefaults(c.ParquetParams)

	FieldFillDefaults(c.HTTPParams)

	FieldFillDefaults(c.DevNullParams)
}

func (c *OutputConfig) Validate() []error {
	var errs []error

	if !slices.Contains(OutputTypes, c.Type) {
		errs = append(errs, errors.Errorf("unknown output type: %s", c.Type))
	}

	if csvParamsErrs := FieldValidate(c.CSVParams); len(csvParamsErrs) != 0 {
		errs = append(errs, errors.New("csv params:"))
		errs = append(errs, csvParamsErrs...)
	}

	if jsonParamsErrs := FieldValidate(c.JSONParams); len(jsonParamsErrs) != 0 {
		errs = append(errs, errors.New("json params:"))
		errs = append(errs, jsonParamsErrs...)
	}

	if parquetParamsErrs := FieldValidate(c.ParquetParams); len(parquetParamsErrs) != 0 {
		errs = append(errs, errors.New("parquet params:"))
		errs = append(errs, parquetParamsErrs...)
	}

	if httpParamsErrs := FieldValidate(c.HTTPParams); len(httpParamsErrs) != 0 {
		errs = append(errs, errors.New("http params:"))
		errs = append(errs, httpParamsErrs...)
	}

	return errs
}

// Verify interface compliance in compile time.
var _ Field = (*DevNullConfig)(nil)

// DevNullConfig type used to describe output config for devnull implementation.
type DevNullConfig struct {
	Handler func(row *DataRow) error `json:"-" yaml:"-"`
}

func (c *DevNullConfig) Parse() error { return nil }

func (c *DevNullConfig) FillDefaults() {}

func (c *DevNullConfig) Validate() []error { return nil }

// Verify interface compliance in compile time.
var _ Field = (*CSVConfig)(nil)

// CSVConfig type used to describe output config for CSV implementation.
type CSVConfig struct {
	FloatPrecision int    `json:"float_precision" yaml:"float_precision"`
	DatetimeFormat string `json:"datetime_format" yaml:"datetime_format"`
	Delimiter      string `json:"delimiter"       yaml:"delimiter"`
	WithoutHeaders bool   `json:"without_headers" yaml:"without_headers"`
}

func (c *CSVConfig) Parse() error { return nil }

func (c *CSVConfig) FillDefaults() {
	if c.FloatPrecision == 0 {
		c.FloatPrecision = 2
	}

	if c.DatetimeFormat == "" {
		c.DatetimeFormat = DefaultDatetimeFormat
	}

	if c.Delimiter == "" {
		c.Delimiter = ","
	}
}

func (c *CSVConfig) Validate() []error {
	var errs []error

	if c.FloatPrecision < 0 {
		errs = append(errs, errors.Errorf("float precision should be grater than 0, got %v", c.FloatPrecision))
	}

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		errs = append(errs, errors.Errorf("the delimiter must consist of one character, got %v", c.Delimiter))
	}

	return errs
}

// Verify interface compliance in compile time.
var _ Field = (*JSONConfig)(nil)

// JSONConfig type used to describe output config for JSON lines implementation.
type JSONConfig struct {
	DatetimeFormat string `json:"datetime_format" yaml:"datetime_format"`
}

func (c *JSONConfig) Parse() error { return nil }

func (c *JSONConfig) FillDefaults() {
	if c.DatetimeFormat == "" {
		c.DatetimeFormat = DefaultDatetimeFormat
	}
}

func (c *JSONConfig) Validate() []error { return nil }

// Verify interface compliance in compile time.
var _ Field = (*ParquetConfig)(nil)

// ParquetConfig type used to describe output config for parquet implementation.
type ParquetConfig struct {
	CompressionCodec string `json:"compression_codec" yaml:"compression_codec"`
	FloatPrecision   int    `json:"float_precision"   yaml:"float_precision"`
	DatetimeFormat   string `json:"datetime_format"   yaml:"datetime_format"`
}

//nolint:lll
var parquetSupportedCompressionCodecs = []string{"UNCOMPRESSED", "SNAPPY", "GZIP", "LZ4", "LZ4RAW", "ZSTD", "BROTLI"}

func (c *ParquetConfig) Parse() error { return nil }

func (c *ParquetConfig) FillDefaults() {
	if c.CompressionCodec == "" {
		c.CompressionCodec = "UNCOMPRESSED"
	}

	if c.FloatPrecision == 0 {
		c.FloatPrecision = 2
	}

	if c.DatetimeFormat == "" {
		c.DatetimeFormat = DefaultDatetimeFormat
	}
}

func (c *ParquetConfig) Validate() []error {
	var errs []error

	if !slices.Contains(parquetSupportedCompressionCodecs, c.CompressionCodec) {
		errs = append(errs, errors.Errorf("unknown compression codec %v, supported %v",
			c.CompressionCodec, parquetSupportedCompressionCodecs))
	}

	if c.FloatPrecision < 0 {
		errs = append(errs, errors.Errorf("float precision should be grater than 0, got %v", c.FloatPrecision))
	}

	return errs
}

// Verify interface compliance in compile time.
var _ Field = (*HTTPParams)(nil)

// HTTPParams type used to describe output config for HTTP implementation.
// Rows are sent in batches as POST requests with body rendered by FormatTemplate.
type HTTPParams struct {
	Endpoint       string            `json:"endpoint"        yaml:"endpoint"`
	Timeout        time.Duration     `json:"timeout"         yaml:"timeout"`
	BatchSize      int               `json:"batch_size"      yaml:"batch_size"`
	WorkersCount   int               `json:"workers_count"   yaml:"workers_count"`
	Headers        map[string]string `json:"headers"         yaml:"headers"`
	FormatTemplate string            `json:"format_template" yaml:"format_template"`
}

func (c *HTTPParams) Parse() error { return nil }

func (c *HTTPParams) FillDefaults() {
	if c.Timeout == 0 {
		c.Timeout = time.Minute
	}

	if c.BatchSize == 0 {
		c.BatchSize = 1000
	}

	if c.WorkersCount == 0 {
		c.WorkersCount = 1
	}

	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}

	if c.FormatTemplate == "" {
		c.FormatTemplate = defaultFormatTemplate
	}
}

func (c *HTTPParams) Validate() []error {
	var errs []error

	if u, err := url.Parse(c.Endpoint); err != nil {
		errs = append(errs, errors.New(err.Error()))
	} else if u.Scheme == "" || u.Host == "" {
		errs = append(errs, errors.Errorf("endpoint must be an absolute URL, got %q", c.Endpoint))
	}

	if c.Timeout < 0 {
		errs = append(errs, errors.Errorf("timeout should be grater or equals to 0, got %v", c.Timeout))
	}

	if c.BatchSize <= 0 {
		errs = append(errs, errors.Errorf("batch size should be grater than 0, got %v", c.BatchSize))
	}

	if c.WorkersCount <= 0 {
		errs = append(errs, errors.Errorf("workers count should be grater than 0, got %v", c.WorkersCount))
	}

	return errs
}
