package generator

import (
	"regexp"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/provider"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

func parseSchema(t *testing.T, schemaYAML string) *models.SchemaConfig {
	t.Helper()

	var cfg models.SchemaConfig

	require.NoError(t, cfg.ParseFromYAML([]byte(schemaYAML)))

	return &cfg
}

const testSchema = `
name: codes
seed: 42
rows_count: 20
fields:
  - name: label
    template: "{{ upper .code }}/{{ .id }}"
  - name: code
    key: code.pin
    params:
      mask: "@@##"
  - name: id
    key: cryptographic.uuid
  - name: first_name
    key: person.first_name
    locale: de
`

func TestSchemaGeneratorCreate(t *testing.T) {
	cfg := parseSchema(t, testSchema)

	gen, err := NewSchemaGenerator(cfg, locale.Default(), "")
	require.NoError(t, err)

	require.Equal(t, []string{"label", "code", "id", "first_name"}, gen.FieldNames())
	require.Equal(t, []string{TemplateKey, "code.pin", "cryptographic.uuid", "person.first_name"}, gen.Keys())

	rows, err := gen.Create(cfg.RowsCount)
	require.NoError(t, err)
	require.Len(t, rows, int(cfg.RowsCount))

	codeRe := regexp.MustCompile(`^[A-Z]{2}[0-9]{2}$`)

	for _, row := range rows {
		require.Len(t, row.Values, 4)

		code, ok := row.Values[1].(string)
		require.True(t, ok)
		require.Regexp(t, codeRe, code)

		id, ok := row.Values[2].(string)
		require.True(t, ok)

		require.Equal(t, code+"/"+id, row.Values[0])
		require.NotEmpty(t, row.Values[3])
	}

	again, err := gen.Create(cfg.RowsCount)
	require.NoError(t, err)
	require.Equal(t, rows, again)
}

func TestSchemaGeneratorBatches(t *testing.T) {
	cfg := parseSchema(t, testSchema)

	gen, err := NewSchemaGenerator(cfg, locale.Default(), "")
	require.NoError(t, err)

	generate := func(batchNumber, firstRow uint64) []any {
		batch, err := gen.NewBatchGenerator(batchNumber, firstRow)
		require.NoError(t, err)

		values := make([]any, 0, 5)

		for range 5 {
			row, err := batch.Row()
			require.NoError(t, err)

			values = append(values, row.Values[2])
		}

		return values
	}

	require.Equal(t, generate(1, 5), generate(1, 5))
	require.NotEqual(t, generate(0, 0), generate(1, 5))
}

func TestSchemaGeneratorNullPercentage(t *testing.T) {
	type testCase struct {
		name           string
		nullPercentage string
		check          func(t *testing.T, nulls int)
	}

	testCases := []testCase{
		{
			name:           "Never null",
			nullPercentage: "0",
			check:          func(t *testing.T, nulls int) { t.Helper(); require.Zero(t, nulls) },
		},
		{
			name:           "Always null",
			nullPercentage: "1",
			check:          func(t *testing.T, nulls int) { t.Helper(); require.Equal(t, 100, nulls) },
		},
		{
			name:           "Half null",
			nullPercentage: "0.5",
			check: func(t *testing.T, nulls int) {
				t.Helper()
				require.Greater(t, nulls, 20)
				require.Less(t, nulls, 80)
			},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		cfg := parseSchema(t, `
seed: 7
rows_count: 100
fields:
  - name: network
    key: code.issuing_network
    null_percentage: `+tc.nullPercentage+`
`)

		gen, err := NewSchemaGenerator(cfg, locale.Default(), "")
		require.NoError(t, err)

		rows, err := gen.Create(cfg.RowsCount)
		require.NoError(t, err)

		var nulls int

		for _, row := range rows {
			if row.Values[0] == nil {
				nulls++
			}
		}

		tc.check(t, nulls)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func checkParamError(name string) func(t *testing.T, err error) {
	return func(t *testing.T, err error) {
		t.Helper()

		var paramErr *provider.ParamError

		require.True(t, errors.As(err, &paramErr))
		require.Equal(t, name, paramErr.Name)
	}
}

func TestNewSchemaGeneratorErrors(t *testing.T) {
	type testCase struct {
		name          string
		schema        string
		defaultLocale string
		check         func(t *testing.T, err error)
	}

	testCases := []testCase{
		{
			name: "Unknown key",
			schema: `
rows_count: 1
fields:
  - name: value
    key: person.favourite_color
`,
			check: func(t *testing.T, err error) {
				t.Helper()

				var unknownErr *provider.UnknownMethodError

				require.True(t, errors.As(err, &unknownErr))
				require.Equal(t, "person.favourite_color", unknownErr.Key)
			},
		},
		{
			name: "Unsupported default locale",
			schema: `
rows_count: 1
fields:
  - name: value
    key: person.first_name
`,
			defaultLocale: "xx",
			check: func(t *testing.T, err error) {
				t.Helper()

				var localeErr *locale.UnsupportedLocaleError

				require.True(t, errors.As(err, &localeErr))
			},
		},
		{
			name: "Invalid param value",
			schema: `
rows_count: 1
fields:
  - name: value
    key: text.words
    params:
      quantity: abc
`,
			check: checkParamError("quantity"),
		},
		{
			name: "Unknown param",
			schema: `
rows_count: 1
fields:
  - name: value
    key: text.words
    params:
      quantity: 2
      bogus: 1
`,
			check: checkParamError("bogus"),
		},
		{
			name: "Too large quantity",
			schema: `
rows_count: 1
fields:
  - name: value
    key: text.words
    params:
      quantity: 4611686018427387904
`,
			check: checkParamError("quantity"),
		},
		{
			name: "Bad template",
			schema: `
rows_count: 1
fields:
  - name: value
    template: "{{ if .other }}"
  - name: other
    key: code.imei
`,
			check: func(t *testing.T, err error) {
				t.Helper()
				require.Contains(t, err.Error(), "failed to parse template")
			},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		_, err := NewSchemaGenerator(parseSchema(t, tc.schema), locale.Default(), tc.defaultLocale)
		require.Error(t, err)
		require.Contains(t, err.Error(), "fields[value]")
		tc.check(t, err)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestFastRandomFloat(t *testing.T) {
	for seed := range uint64(1000) {
		value := fastRandomFloat(seed)
		require.GreaterOrEqual(t, value, 0.0)
		require.Less(t, value, 1.0)
	}

	require.Equal(t, fastRandomFloat(12345), fastRandomFloat(12345))
}

func TestGetSeed(t *testing.T) {
	require.Equal(t, getSeed(1, "name"), getSeed(1, "name"))
	require.NotEqual(t, getSeed(1, "name"), getSeed(1, "email"))
	require.NotEqual(t, getSeed(1, "name"), getSeed(2, "name"))
}
