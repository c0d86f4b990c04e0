package models

import (
	"bytes"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/common"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

const (
	DefaultSchemaName    = "schema"
	DefaultWorkersPerCPU = 2
	DefaultBatchSize     = 1000
)

var fieldNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SchemaConfig type is used to describe a set of named fields generated row by row.
type SchemaConfig struct {
	Name         string         `json:"name"          yaml:"name"`
	Locale       string         `json:"locale"        yaml:"locale"`
	Seed         int64          `json:"seed"          yaml:"seed"`
	RowsCount    uint64         `json:"rows_count"    yaml:"rows_count"`
	RowsPerFile  uint64         `json:"rows_per_file" yaml:"rows_per_file"`
	BatchSize    uint64         `json:"batch_size"    yaml:"batch_size"`
	WorkersCount int            `json:"workers_count" yaml:"workers_count"`
	Fields       []*SchemaField `json:"fields"        yaml:"fields"`
	OutputConfig *OutputConfig  `json:"output"        yaml:"output"`
}

func (sc *SchemaConfig) ParseFromFile(path string) error {
	err := DecodeFile(path, sc)
	if err != nil {
		return errors.WithMessagef(err, "failed to parse schema file %q", path)
	}

	return sc.PostProcess()
}

func (sc *SchemaConfig) ParseFromYAML(data []byte) error {
	err := DecodeReader("yaml", bytes.NewReader(data), sc)
	if err != nil {
		return errors.WithMessage(err, "failed to parse YAML schema")
	}

	return sc.PostProcess()
}

func (sc *SchemaConfig) ParseFromJSON(data []byte) error {
	err := DecodeReader("json", bytes.NewReader(data), sc)
	if err != nil {
		return errors.WithMessage(err, "failed to parse JSON schema")
	}

	return sc.PostProcess()
}

func (sc *SchemaConfig) PostProcess() error {
	err := sc.Parse()
	if err != nil {
		return errors.WithMessage(err, "failed to parse schema")
	}

	sc.FillDefaults()

	errs := sc.Validate()
	if len(errs) != 0 {
		return errors.Errorf("failed to validate schema:\n%v", parseErrsToString(errs))
	}

	return nil
}

func (sc *SchemaConfig) Parse() error {
	if len(sc.Fields) == 0 {
		return errors.New("no fields to generate")
	}

	for i, field := range sc.Fields {
		if field == nil {
			return errors.Errorf("fields[%d] is empty", i)
		}
	}

	if sc.OutputConfig == nil {
		sc.OutputConfig = &OutputConfig{}
	}

	return sc.OutputConfig.Parse()
}

// FillDefaults leaves Locale empty: the caller substitutes its own default locale.
func (sc *SchemaConfig) FillDefaults() {
	if sc.Name == "" {
		sc.Name = DefaultSchemaName
	}

	if sc.Locale != "" {
		sc.Locale = locale.Normalize(sc.Locale)
	}

	if sc.Seed == 0 {
		sc.Seed = time.Now().UnixNano()
	}

	if sc.RowsPerFile == 0 {
		sc.RowsPerFile = sc.RowsCount
	}

	if sc.BatchSize == 0 {
		sc.BatchSize = DefaultBatchSize
	}

	if sc.WorkersCount == 0 {
		sc.WorkersCount = runtime.GOMAXPROCS(0) * DefaultWorkersPerCPU
	}

	for _, field := range sc.Fields {
		field.FillDefaults()
	}

	sc.OutputConfig.FillDefaults()
}

func (sc *SchemaConfig) Validate() []error {
	var errs []error

	if sc.Locale != "" && !locale.IsSupported(sc.Locale) {
		errs = append(errs, errors.Errorf("unsupported locale: %s", sc.Locale))
	}

	if sc.RowsCount == 0 {
		errs = append(errs, errors.Errorf("rows_count must be greater than zero: %v", sc.RowsCount))
	}

	if sc.WorkersCount <= 0 {
		errs = append(errs, errors.Errorf("workers count should be grater than 0, got %v", sc.WorkersCount))
	}

	if strings.ContainsAny(sc.Name, `/\`) {
		errs = append(errs, errors.Errorf("name must not contain path separators: %q", sc.Name))
	}

	errs = append(errs, sc.validateFields()...)

	if outputErrs := sc.OutputConfig.Validate(); len(outputErrs) != 0 {
		errs = append(errs, errors.New("output config:"))
		errs = append(errs, outputErrs...)
	}

	return errs
}

func (sc *SchemaConfig) validateFields() []error {
	var errs []error

	names := make(map[string]struct{}, len(sc.Fields))

	for _, field := range sc.Fields {
		if _, ok := names[field.Name]; ok {
			errs = append(errs, errors.Errorf("forbidden to have fields with same name %q", field.Name))
		}

		names[field.Name] = struct{}{}

		if fieldErrs := field.Validate(); len(fieldErrs) != 0 {
			errs = append(errs, errors.Errorf("fields[%s]:", field.Name))
			errs = append(errs, fieldErrs...)
		}
	}

	for _, field := range sc.Fields {
		for _, ref := range common.ExtractValuesFromTemplate(field.Template) {
			if _, ok := names[ref]; !ok {
				errs = append(errs, errors.Errorf("fields[%s]: template references unknown field %q", field.Name, ref))
			}
		}
	}

	if len(errs) != 0 {
		return errs
	}

	if _, _, err := sc.FieldsOrder(); err != nil {
		errs = append(errs, errors.WithMessage(err, "fields templates"))
	}

	return errs
}

// FieldsOrder returns fields names in evaluation order: every template field goes after the fields it references.
func (sc *SchemaConfig) FieldsOrder() ([]string, bool, error) {
	return common.TopologicalSort(sc.Fields, func(field *SchemaField) (string, []string) {
		return field.Name, common.ExtractValuesFromTemplate(field.Template)
	})
}

// FieldNames returns fields names in declaration order.
func (sc *SchemaConfig) FieldNames() []string {
	names := make([]string, len(sc.Fields))
	for i, field := range sc.Fields {
		names[i] = field.Name
	}

	return names
}

// SchemaField type is used to describe a single generated value of a row.
// A field either calls a provider method by Key or renders Template over other fields of the row.
type SchemaField struct {
	Name           string         `json:"name"            yaml:"name"`
	Key            string         `json:"key"             yaml:"key"`
	Params         map[string]any `json:"params"          yaml:"params"`
	Locale         string         `json:"locale"          yaml:"locale"`
	Template       string         `json:"template"        yaml:"template"`
	NullPercentage float64        `json:"null_percentage" yaml:"null_percentage"`
}

func (f *SchemaField) FillDefaults() {
	f.Key = strings.ToLower(strings.TrimSpace(f.Key))

	if f.Locale != "" {
		f.Locale = locale.Normalize(f.Locale)
	}

	if f.Params == nil {
		f.Params = make(map[string]any)
	}
}

func (f *SchemaField) Validate() []error {
	var errs []error

	if !fieldNameRe.MatchString(f.Name) {
		errs = append(errs, errors.Errorf("invalid field name %q", f.Name))
	}

	switch {
	case f.Key == "" && f.Template == "":
		errs = append(errs, errors.New("one of key or template is required"))
	case f.Key != "" && f.Template != "":
		errs = append(errs, errors.New("key and template are mutually exclusive"))
	case f.Key != "":
		name, method, ok := strings.Cut(f.Key, ".")
		if !ok || name == "" || method == "" {
			errs = append(errs, errors.Errorf("key must look like provider.method, got %q", f.Key))
		}
	}

	if f.Locale != "" && !locale.IsSupported(f.Locale) {
		errs = append(errs, errors.Errorf("unsupported locale: %s", f.Locale))
	}

	if f.NullPercentage < 0 || f.NullPercentage > 1 {
		errs = append(errs, errors.Errorf("null percentage should be between 0 and 1, got %v", f.NullPercentage))
	}

	return errs
}
