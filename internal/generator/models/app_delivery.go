package models

import (
	"time"

	"github.com/pkg/errors"
)

// HTTPConfig type used to describe delivery config for http implementation.
type HTTPConfig struct {
	ListenAddress string        `env:"MIMESIS_HTTP_LISTEN_ADDRESS" json:"listen_address" yaml:"listen_address"`
	ReadTimeout   time.Duration `env:"MIMESIS_HTTP_READ_TIMEOUT"   json:"read_timeout"   yaml:"read_timeout"`
	WriteTimeout  time.Duration `env:"MIMESIS_HTTP_WRITE_TIMEOUT"  json:"write_timeout"  yaml:"write_timeout"`
	IdleTimeout   time.Duration `env:"MIMESIS_HTTP_IDLE_TIMEOUT"   json:"idle_timeout"   yaml:"idle_timeout"`
	// MaxRows limits rows count of a single schema request.
	MaxRows uint64 `env:"MIMESIS_HTTP_MAX_ROWS" json:"max_rows" yaml:"max_rows"`
}

func (c *HTTPConfig) FillDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = ":8080"
	}

	if c.ReadTimeout == 0 {
		c.ReadTimeout = time.Minute
	}

	if c.WriteTimeout == 0 {
		c.WriteTimeout = time.Minute
	}

	if c.IdleTimeout == 0 {
		c.IdleTimeout = time.Minute
	}

	if c.MaxRows == 0 {
		c.MaxRows = 10000
	}
}

func (c *HTTPConfig) Validate() []error {
	var errs []error

	if c.ReadTimeout < 0 {
		errs = append(errs, errors.Errorf("read timeout should be grater than 0, got %v", c.ReadTimeout))
	}

	if c.WriteTimeout < 0 {
		errs = append(errs, errors.Errorf("write timeout should be grater than 0, got %v", c.WriteTimeout))
	}

	if c.IdleTimeout < 0 {
		errs = append(errs, errors.Errorf("idle timeout should be grater than 0, got %v", c.IdleTimeout))
	}

	return errs
}
