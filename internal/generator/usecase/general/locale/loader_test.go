package locale

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// countingFs counts opened files.
type countingFs struct {
	afero.Fs
	opens atomic.Int64
}

func (f *countingFs) Open(name string) (afero.File, error) {
	f.opens.Add(1)

	return f.Fs.Open(name) //nolint:wrapcheck
}

func newTestFs(t *testing.T, files map[string]string) *countingFs {
	t.Helper()

	fs := afero.NewMemMapFs()

	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	return &countingFs{Fs: fs}
}

func TestLoaderMerge(t *testing.T) {
	type testCase struct {
		name     string
		files    map[string]string
		fileName string
		code     string
		expected Document
	}

	testCases := []testCase{
		{
			name: "Regional override merges maps and replaces lists",
			files: map[string]string{
				"pt/address.json":    `{"a": {"x": 1, "y": 2}, "b": [1, 2]}`,
				"pt-br/address.json": `{"a": {"y": 99}, "b": [9]}`,
			},
			fileName: "address.json",
			code:     "pt-br",
			expected: Document{
				"a": map[string]any{"x": float64(1), "y": float64(99)},
				"b": []any{float64(9)},
			},
		},
		{
			name: "Master locale",
			files: map[string]string{
				"pt/address.json":    `{"a": {"x": 1, "y": 2}, "b": [1, 2]}`,
				"pt-br/address.json": `{"a": {"y": 99}, "b": [9]}`,
			},
			fileName: "address.json",
			code:     "pt",
			expected: Document{
				"a": map[string]any{"x": float64(1), "y": float64(2)},
				"b": []any{float64(1), float64(2)},
			},
		},
		{
			name: "Regional locale without override file",
			files: map[string]string{
				"en/text.json": `{"color": ["Red"]}`,
			},
			fileName: "text.json",
			code:     "en-gb",
			expected: Document{"color": []any{"Red"}},
		},
		{
			name: "Override replaces map with scalar",
			files: map[string]string{
				"de/finance.json":    `{"currency": {"code": "EUR"}, "bank": ["A"]}`,
				"de-at/finance.json": `{"currency": "ATS", "extra": {"k": "v"}}`,
			},
			fileName: "finance.json",
			code:     "DE-AT",
			expected: Document{
				"currency": "ATS",
				"bank":     []any{"A"},
				"extra":    map[string]any{"k": "v"},
			},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		loader := NewLoader(newTestFs(t, tc.files))

		doc, err := loader.Load(tc.fileName, tc.code)
		require.NoError(t, err)
		require.Equal(t, tc.expected, doc)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestLoaderMergeKeepsMasterDocument(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"pt/address.json":    `{"a": {"x": 1, "y": 2}}`,
		"pt-br/address.json": `{"a": {"y": 99}}`,
	})

	loader := NewLoader(fs)

	master, err := loader.Load("address.json", "pt")
	require.NoError(t, err)

	_, err = loader.Load("address.json", "pt-br")
	require.NoError(t, err)

	require.Equal(t, Document{"a": map[string]any{"x": float64(1), "y": float64(2)}}, master)
}

func TestLoaderCache(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"pt/address.json":    `{"city": ["Lisboa"]}`,
		"pt-br/address.json": `{"city": ["Recife"]}`,
	})

	var misses atomic.Int64

	loader := NewLoader(fs, WithMissHook(func(string, string) { misses.Add(1) }))

	first, err := loader.Load("address.json", "pt-br")
	require.NoError(t, err)
	require.Equal(t, int64(2), fs.opens.Load())

	second, err := loader.Load("address.json", "pt-br")
	require.NoError(t, err)

	require.Equal(t, int64(2), fs.opens.Load())
	require.Equal(t, int64(1), misses.Load())
	require.Equal(t, reflect.ValueOf(first).Pointer(), reflect.ValueOf(second).Pointer())

	loader.Reset()

	_, err = loader.Load("address.json", "pt-br")
	require.NoError(t, err)
	require.Equal(t, int64(4), fs.opens.Load())
	require.Equal(t, int64(2), misses.Load())
}

// blockingFs holds the first Open until release is closed.
type blockingFs struct {
	*countingFs
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (f *blockingFs) Open(name string) (afero.File, error) {
	f.once.Do(func() {
		close(f.entered)
		<-f.release
	})

	return f.countingFs.Open(name)
}

func TestLoaderResetDuringLoad(t *testing.T) {
	fs := &blockingFs{
		countingFs: newTestFs(t, map[string]string{
			"ru/person.json": `{"names": {"male": ["Иван"]}}`,
		}),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}

	var misses atomic.Int64

	loader := NewLoader(fs, WithMissHook(func(string, string) { misses.Add(1) }))

	done := make(chan error)

	go func() {
		_, err := loader.Load("person.json", "ru")
		done <- err
	}()

	<-fs.entered
	loader.Reset()
	close(fs.release)
	require.NoError(t, <-done)

	_, err := loader.Load("person.json", "ru")
	require.NoError(t, err)
	require.Equal(t, int64(2), misses.Load())
	require.Equal(t, int64(2), fs.opens.Load())
}

func TestLoaderConcurrentFirstAccess(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"ru/person.json": `{"names": {"male": ["Иван"]}}`,
	})

	loader := NewLoader(fs)

	const workers = 32

	var wg sync.WaitGroup

	docs := make([]Document, workers)

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			doc, err := loader.Load("person.json", "ru")
			if err == nil {
				docs[i] = doc
			}
		}()
	}

	wg.Wait()

	require.Equal(t, int64(1), fs.opens.Load())

	for _, doc := range docs {
		require.Equal(t, reflect.ValueOf(docs[0]).Pointer(), reflect.ValueOf(doc).Pointer())
	}
}

func TestLoaderErrors(t *testing.T) {
	type testCase struct {
		name      string
		files     map[string]string
		fileName  string
		code      string
		checkErr  func(t *testing.T, err error)
		wantOpens int64
	}

	testCases := []testCase{
		{
			name:     "Unsupported locale",
			files:    map[string]string{"xx/address.json": `{}`},
			fileName: "address.json",
			code:     "xx",
			checkErr: func(t *testing.T, err error) {
				t.Helper()

				var localeErr *UnsupportedLocaleError

				require.ErrorAs(t, err, &localeErr)
				require.Equal(t, "xx", localeErr.Locale)
			},
			wantOpens: 0,
		},
		{
			name:     "Unsupported region",
			files:    map[string]string{},
			fileName: "address.json",
			code:     "en-zz",
			checkErr: func(t *testing.T, err error) {
				t.Helper()

				var localeErr *UnsupportedLocaleError

				require.ErrorAs(t, err, &localeErr)
			},
			wantOpens: 0,
		},
		{
			name:     "Missing master file",
			files:    map[string]string{"pt-br/address.json": `{}`},
			fileName: "address.json",
			code:     "pt-br",
			checkErr: func(t *testing.T, err error) {
				t.Helper()

				var notFoundErr *DataFileNotFoundError

				require.ErrorAs(t, err, &notFoundErr)
				require.Equal(t, "pt/address.json", notFoundErr.Path)
				require.Equal(t, "pt-br", notFoundErr.Locale)
			},
			wantOpens: 1,
		},
		{
			name:     "Invalid JSON",
			files:    map[string]string{"en/address.json": `{"city": [`},
			fileName: "address.json",
			code:     "en",
			checkErr: func(t *testing.T, err error) {
				t.Helper()

				var formatErr *InvalidDataFormatError

				require.ErrorAs(t, err, &formatErr)
				require.Error(t, formatErr.Unwrap())
			},
			wantOpens: 1,
		},
		{
			name:     "JSON is not object",
			files:    map[string]string{"en/address.json": `["city"]`},
			fileName: "address.json",
			code:     "en",
			checkErr: func(t *testing.T, err error) {
				t.Helper()

				var formatErr *InvalidDataFormatError

				require.ErrorAs(t, err, &formatErr)
			},
			wantOpens: 1,
		},
		{
			name: "Invalid regional override",
			files: map[string]string{
				"en/address.json":    `{}`,
				"en-gb/address.json": `null`,
			},
			fileName: "address.json",
			code:     "en-gb",
			checkErr: func(t *testing.T, err error) {
				t.Helper()

				var formatErr *InvalidDataFormatError

				require.ErrorAs(t, err, &formatErr)
				require.Equal(t, "en-gb/address.json", formatErr.Path)
			},
			wantOpens: 2,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		fs := newTestFs(t, tc.files)
		loader := NewLoader(fs)

		_, err := loader.Load(tc.fileName, tc.code)
		require.Error(t, err)
		tc.checkErr(t, err)
		require.Equal(t, tc.wantOpens, fs.opens.Load())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestEmbeddedData(t *testing.T) {
	loader := NewLoader(EmbeddedFs())

	for _, code := range Codes() {
		for _, fileName := range DataFiles {
			doc, err := loader.Load(fileName, code)
			require.NoError(t, err, "locale %q file %q", code, fileName)
			require.NotEmpty(t, doc)
		}

		doc, err := loader.Load(AddressFile, code)
		require.NoError(t, err)

		for _, path := range []string{
			"street.name", "street.suffix", "state.name", "state.abbr",
			"country.name", "city", "postal_code_fmt",
		} {
			values, err := doc.Strings(path)
			require.NoError(t, err, "locale %q path %q", code, path)
			require.NotEmpty(t, values, "locale %q path %q", code, path)
		}
	}
}

func TestEmbeddedRegionalOverride(t *testing.T) {
	loader := NewLoader(EmbeddedFs())

	doc, err := loader.Load(AddressFile, "pt-br")
	require.NoError(t, err)

	code, err := doc.String("country.code")
	require.NoError(t, err)
	require.Equal(t, "BR", code)

	// inherited from pt
	streets, err := doc.Strings("street.name")
	require.NoError(t, err)
	require.NotEmpty(t, streets)

	require.Same(t, Default(), Default())
}
