package models

import (
	"time"

	"github.com/pkg/errors"
)

// DownloadConfig type used to describe config of the image download helper.
type DownloadConfig struct {
	Dir      string        `env:"MIMESIS_DOWNLOAD_DIR"       json:"dir"       yaml:"dir"`
	Timeout  time.Duration `env:"MIMESIS_DOWNLOAD_TIMEOUT"   json:"timeout"   yaml:"timeout"`
	RetryMax int           `env:"MIMESIS_DOWNLOAD_RETRY_MAX" json:"retry_max" yaml:"retry_max"`
}

func (c *DownloadConfig) FillDefaults() {
	if c.Dir == "" {
		c.Dir = "images"
	}

	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second //nolint:mnd
	}

	if c.RetryMax == 0 {
		c.RetryMax = 3
	}
}

func (c *DownloadConfig) Validate() []error {
	var errs []error

	if c.Timeout < 0 {
		errs = append(errs, errors.Errorf("timeout should be grater than 0, got %v", c.Timeout))
	}

	if c.RetryMax < 0 {
		errs = append(errs, errors.Errorf("retry max should be grater or equals to 0, got %v", c.RetryMax))
	}

	return errs
}
