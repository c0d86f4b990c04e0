package locale

import (
	"encoding/json"
	"log/slog"
	"os"
	"path"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"

	"github.com/mimesis-go/mimesis/internal/generator/logger/handlers"
)

// Verify interface compliance in compile time.
var _ DataLoader = (*Loader)(nil)

// Loader type resolves locale data files and caches parsed documents.
// Each (file name, locale) pair is read and parsed at most once.
type Loader struct {
	fs     afero.Fs
	cache  *atomic.Pointer[loaderCache]
	logger *slog.Logger
	onMiss func(fileName, code string)
}

// loaderCache holds documents loaded since the last Reset.
type loaderCache struct {
	docs  *sync.Map
	group *singleflight.Group
}

func newLoaderCache() *loaderCache {
	return &loaderCache{
		docs:  &sync.Map{},
		group: &singleflight.Group{},
	}
}

// LoaderOption type is used to configure Loader.
type LoaderOption func(*Loader)

// WithLogger sets logger for cache misses.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithMissHook sets function called on every cache miss before reading files.
func WithMissHook(fn func(fileName, code string)) LoaderOption {
	return func(l *Loader) {
		l.onMiss = fn
	}
}

// NewLoader function creates Loader object reading data files from fs root.
func NewLoader(fs afero.Fs, opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:     fs,
		cache:  &atomic.Pointer[loaderCache]{},
		logger: handlers.DummyLogger,
	}

	l.cache.Store(newLoaderCache())

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load returns document of file name for locale code. For regional locale (e.g. "pt-br")
// document of master locale is merged with regional document, if regional one exists.
func (l *Loader) Load(fileName, code string) (Document, error) {
	if _, err := Lookup(code); err != nil {
		return nil, err
	}

	key := cacheKey(fileName, code)
	cache := l.cache.Load()

	if doc, ok := cache.docs.Load(key); ok {
		return doc.(Document), nil //nolint:forcetypeassert
	}

	value, err, _ := cache.group.Do(key, func() (any, error) {
		if doc, ok := cache.docs.Load(key); ok {
			return doc, nil
		}

		if l.onMiss != nil {
			l.onMiss(fileName, code)
		}

		doc, err := l.load(fileName, code)
		if err != nil {
			return nil, err
		}

		cache.docs.Store(key, doc)

		return doc, nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return value.(Document), nil //nolint:forcetypeassert
}

// Reset drops all cached documents. Loads running during Reset keep
// their result out of the new cache.
func (l *Loader) Reset() {
	l.cache.Store(newLoaderCache())
}

func (l *Loader) load(fileName, code string) (Document, error) {
	master, region := Split(code)

	doc, err := l.read(code, path.Join(master, fileName), true)
	if err != nil {
		return nil, err
	}

	if region == "" {
		l.logger.Debug("locale data loaded", slog.String("file", fileName), slog.String("locale", code))

		return doc, nil
	}

	override, err := l.read(code, path.Join(master+Separator+region, fileName), false)
	if err != nil {
		return nil, err
	}

	if override == nil {
		l.logger.Debug("locale data loaded without regional override",
			slog.String("file", fileName), slog.String("locale", code))

		return doc, nil
	}

	l.logger.Debug("locale data loaded with regional override",
		slog.String("file", fileName), slog.String("locale", code))

	return merge(doc, override), nil
}

// read parses JSON object from file. Missing optional file gives nil document.
func (l *Loader) read(code, filePath string, required bool) (Document, error) {
	data, err := afero.ReadFile(l.fs, filePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithMessagef(err, "failed to read data file %q", filePath)
		}

		if !required {
			return nil, nil //nolint:nilnil
		}

		return nil, &DataFileNotFoundError{Locale: code, Path: filePath}
	}

	var doc map[string]any

	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidDataFormatError{Path: filePath, Err: err}
	}

	if doc == nil {
		return nil, &InvalidDataFormatError{Path: filePath, Err: errors.New("document is not an object")}
	}

	return doc, nil
}

func cacheKey(fileName, code string) string {
	return fileName + "\x00" + code
}
