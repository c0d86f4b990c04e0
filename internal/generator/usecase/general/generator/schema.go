package generator

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/provider"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// TemplateKey is reported to value observers for fields rendered from templates.
const TemplateKey = "template"

type fieldGenerator struct {
	name           string
	index          int
	key            string
	params         provider.Params
	locale         string
	template       *template.Template
	nullPercentage float64
}

// SchemaGenerator type creates rows of a schema. Fields are evaluated so that
// every field referenced by a template is generated before the template.
type SchemaGenerator struct {
	config  *models.SchemaConfig
	loader  locale.DataLoader
	fields  []*fieldGenerator // in evaluation order
	bufPool *sync.Pool
}

// NewSchemaGenerator checks locales, keys and templates of schema fields and creates SchemaGenerator.
// Fields without locale use schema locale, then defaultLocale.
func NewSchemaGenerator(
	cfg *models.SchemaConfig,
	loader locale.DataLoader,
	defaultLocale string,
) (*SchemaGenerator, error) {
	order, _, err := cfg.FieldsOrder()
	if err != nil {
		return nil, errors.WithMessage(err, "failed to sort fields")
	}

	schemaLocale := cfg.Locale
	if schemaLocale == "" {
		schemaLocale = defaultLocale
	}

	indexes := make(map[string]int, len(cfg.Fields))
	for i, field := range cfg.Fields {
		indexes[field.Name] = i
	}

	fields := make([]*fieldGenerator, 0, len(order))

	for _, name := range order {
		field := cfg.Fields[indexes[name]]

		fieldGen, err := newFieldGenerator(field, indexes[name], schemaLocale)
		if err != nil {
			return nil, errors.WithMessagef(err, "fields[%s]", field.Name)
		}

		fields = append(fields, fieldGen)
	}

	gen := &SchemaGenerator{
		config: cfg,
		loader: loader,
		fields: fields,
		bufPool: &sync.Pool{
			New: func() any {
				return new(bytes.Buffer)
			},
		},
	}

	if err = gen.checkValues(); err != nil {
		return nil, err
	}

	return gen, nil
}

func newFieldGenerator(
	field *models.SchemaField,
	index int,
	schemaLocale string,
) (*fieldGenerator, error) {
	fieldGen := &fieldGenerator{
		name:           field.Name,
		index:          index,
		key:            field.Key,
		params:         provider.Params(field.Params),
		locale:         field.Locale,
		nullPercentage: field.NullPercentage,
	}

	if fieldGen.locale == "" {
		fieldGen.locale = schemaLocale
	}

	if fieldGen.locale != "" {
		info, err := locale.Lookup(fieldGen.locale)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		fieldGen.locale = info.Code
	}

	if field.Template != "" {
		tmpl, err := template.New(field.Name).
			Option("missingkey=error").
			Funcs(template.FuncMap{
				"upper": strings.ToUpper,
				"lower": strings.ToLower,
			}).
			Parse(field.Template)
		if err != nil {
			return nil, errors.Errorf("failed to parse template: %s", err.Error())
		}

		fieldGen.template = tmpl

		return fieldGen, nil
	}

	if err := provider.ValidateParams(field.Key, fieldGen.params); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return fieldGen, nil
}

// checkValues generates one value of every key field with a throwaway random source,
// so invalid param values and missing locale data fail before any row is written.
func (g *SchemaGenerator) checkValues() error {
	for _, field := range g.fields {
		if field.template != nil {
			continue
		}

		generic, err := provider.NewGeneric(provider.Config{
			Locale: field.locale,
			Random: random.New(1),
			Loader: g.loader,
		})
		if err == nil {
			_, err = generic.Call(field.key, field.params)
		}

		if err != nil {
			return errors.WithMessagef(err, "fields[%s]", field.name)
		}
	}

	return nil
}

// FieldNames returns names of fields in order of row values.
func (g *SchemaGenerator) FieldNames() []string {
	return g.config.FieldNames()
}

// Create generates iterations rows with schema seed.
func (g *SchemaGenerator) Create(iterations uint64) ([]*models.DataRow, error) {
	batch, err := g.NewBatchGenerator(0, 0)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.DataRow, 0, iterations)

	for range iterations {
		row, err := batch.Row()
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// NewBatchGenerator creates generator of rows starting from row firstRow.
// Batches are independent: every one gets random sources seeded by schema seed, batch number and field name,
// so the same schema gives the same rows regardless of the order batches are generated in.
func (g *SchemaGenerator) NewBatchGenerator(batchNumber, firstRow uint64) (*BatchGenerator, error) {
	generics := make([]*provider.Generic, len(g.fields))
	seeds := make([]uint64, len(g.fields))

	for i, field := range g.fields {
		seed := getSeed(uint64(g.config.Seed)+batchNumber, field.name) //nolint:gosec
		if seed == 0 {
			seed = 1
		}

		seeds[i] = seed

		if field.template != nil {
			continue
		}

		generic, err := provider.NewGeneric(provider.Config{
			Locale: field.locale,
			Random: random.New(int64(seed)), //nolint:gosec
			Loader: g.loader,
		})
		if err != nil {
			return nil, errors.WithMessagef(err, "fields[%s]", field.name)
		}

		generics[i] = generic
	}

	return &BatchGenerator{
		schema:    g,
		generics:  generics,
		seeds:     seeds,
		rowNumber: firstRow,
	}, nil
}

// BatchGenerator type creates rows of one batch. It is not safe for concurrent use.
type BatchGenerator struct {
	schema    *SchemaGenerator
	generics  []*provider.Generic
	seeds     []uint64
	rowNumber uint64
}

// Row generates next row, values are placed in order of schema fields.
func (b *BatchGenerator) Row() (*models.DataRow, error) {
	fields := b.schema.fields

	row := &models.DataRow{Values: make([]any, len(fields))}
	values := make(map[string]any, len(fields))

	for i, field := range fields {
		value, err := b.value(i, field, values)
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to generate value of field %q", field.name)
		}

		values[field.name] = value
		row.Values[field.index] = value
	}

	b.rowNumber++

	return row, nil
}

func (b *BatchGenerator) value(i int, field *fieldGenerator, values map[string]any) (any, error) {
	if field.nullPercentage > 0 {
		if fastRandomFloat(b.seeds[i]+b.rowNumber) < field.nullPercentage {
			return nil, nil //nolint:nilnil
		}
	}

	if field.template != nil {
		return b.schema.render(field.template, values)
	}

	return b.generics[i].Call(field.key, field.params) //nolint:wrapcheck
}

func (g *SchemaGenerator) render(tmpl *template.Template, values map[string]any) (string, error) {
	buf := g.bufPool.Get().(*bytes.Buffer) //nolint:forcetypeassert
	buf.Reset()

	defer g.bufPool.Put(buf)

	if err := tmpl.Execute(buf, values); err != nil {
		return "", errors.New(err.Error())
	}

	return buf.String(), nil
}

// Keys returns keys of fields in order of row values, TemplateKey for template fields.
func (g *SchemaGenerator) Keys() []string {
	keys := make([]string, len(g.fields))

	for _, field := range g.fields {
		if field.template != nil {
			keys[field.index] = TemplateKey
		} else {
			keys[field.index] = field.key
		}
	}

	return keys
}
