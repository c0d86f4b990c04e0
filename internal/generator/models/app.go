package models

import (
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

var LogFormats = []string{"text", "json"}

// AppConfig type is used to describe application config.
type AppConfig struct {
	LogFormat      string         `env:"MIMESIS_LOG_FORMAT" json:"log_format" yaml:"log_format"`
	Locale         string         `env:"MIMESIS_LOCALE"     json:"locale"     yaml:"locale"`
	Seed           int64          `env:"MIMESIS_SEED"       json:"seed"       yaml:"seed"`
	DataDir        string         `env:"MIMESIS_DATA_DIR"   json:"data_dir"   yaml:"data_dir"`
	HTTPConfig     HTTPConfig     `json:"http"              yaml:"http"`
	DownloadConfig DownloadConfig `json:"download"          yaml:"download"`
}

func (m *AppConfig) ParseFromFile(path string) error {
	var err error

	if path != "" {
		err = DecodeFile(path, m)
	} else {
		err = cleanenv.ReadEnv(m)
		if err != nil {
			err = errors.New(err.Error())
		}
	}

	if err != nil {
		return errors.WithMessagef(err, "failed to parse app config file %q", path)
	}

	err = m.PostProcess()
	if err != nil {
		return errors.WithMessagef(err, "failed to post process app config file %q", path)
	}

	return nil
}

func (m *AppConfig) PostProcess() error {
	m.FillDefaults()

	errs := m.Validate()
	if len(errs) != 0 {
		return errors.Errorf("failed to validate app config:\n%v", parseErrsToString(errs))
	}

	return nil
}

// FillDefaults leaves Locale empty: the CLI resolves it from the environment.
func (m *AppConfig) FillDefaults() {
	if m.LogFormat == "" {
		m.LogFormat = "text"
	}

	if m.Locale != "" {
		m.Locale = locale.Normalize(m.Locale)
	}

	m.HTTPConfig.FillDefaults()
	m.DownloadConfig.FillDefaults()
}

func (m *AppConfig) Validate() []error {
	var errs []error

	if !slices.Contains(LogFormats, m.LogFormat) {
		errs = append(errs, errors.Errorf("unknown log format: %s", m.LogFormat))
	}

	if m.Locale != "" && !locale.IsSupported(m.Locale) {
		errs = append(errs, errors.Errorf("unsupported locale: %s", m.Locale))
	}

	httpParamsErrs := m.HTTPConfig.Validate()
	if len(httpParamsErrs) != 0 {
		errs = append(errs, errors.New("failed to validate HTTP configuration:"))
		errs = append(errs, httpParamsErrs...)
	}

	downloadErrs := m.DownloadConfig.Validate()
	if len(downloadErrs) != 0 {
		errs = append(errs, errors.New("failed to validate download configuration:"))
		errs = append(errs, downloadErrs...)
	}

	return errs
}
