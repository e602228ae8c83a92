package objectstore

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/JoannaDrx/Catalog/pkg/logging"
)

// ConfigKey is the root configuration key (in Viper) for this module.
var ConfigKey = "objectstore"

// Config holds the parameters required to build an S3Client.
// Fields are populated via viper, environment values, or Options.
type Config struct {
	AnotherLogger logging.Interface

	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	ForcePathStyle  bool   `mapstructure:"force_path_style"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key" validate:"required_with=AccessKeyID"`
	PartSize        int64  `mapstructure:"part_size"`
	Concurrency     int    `mapstructure:"concurrency"`
}

// DefaultConfig returns the default S3 client configuration.
func DefaultConfig() *Config {
	return &Config{
		PartSize:    5 * 1024 * 1024, // 5MB
		Concurrency: 10,
	}
}

// Option defines a functional configuration override for building a Config.
type Option func(*Config) error

// Apply applies a sequence of configuration options to the Config instance.
func (c *Config) Apply(opts ...Option) error {
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig constructs and returns a new Config by applying the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the config against its validation tags.
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// WithViper loads the configuration from viper under the "objectstore" key.
func WithViper(v *viper.Viper) Option {
	return func(c *Config) error {
		if v == nil {
			return errors.New("nil Viper")
		}
		return v.UnmarshalKey(ConfigKey, c)
	}
}

// WithAnotherLog sets the logger for the configuration.
func WithAnotherLog(logger logging.Interface) Option {
	return func(c *Config) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		c.AnotherLogger = logger
		return nil
	}
}
