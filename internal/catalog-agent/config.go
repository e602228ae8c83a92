package catalogagent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/JoannaDrx/Catalog/pkg/catalog"
	"github.com/JoannaDrx/Catalog/pkg/configutils"
	"github.com/JoannaDrx/Catalog/pkg/logging"
)

// Config holds the catalog agent configuration.
type Config struct {
	AnotherLogger logging.Interface

	// BasePath is the object-store prefix holding one sub-prefix per group.
	BasePath string `mapstructure:"base_path" validate:"required"`
	// SnapshotPath is the local file the catalog snapshot is persisted to.
	SnapshotPath string `mapstructure:"snapshot_path" validate:"required"`
	// ArrayThreshold is the loose-file count above which arrays are formed.
	ArrayThreshold int `mapstructure:"array_threshold"`
	// DownloadDir is where dataset downloads land by default.
	DownloadDir string `mapstructure:"download_dir"`
	// ScratchDir stages temporary files before upload.
	ScratchDir string `mapstructure:"scratch_dir"`
}

// Option defines a functional configuration override.
type Option func(*Config) error

// Apply applies the given options to the configuration.
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

// defaultConfig returns a new configuration with default values.
func defaultConfig() *Config {
	return &Config{
		ArrayThreshold: catalog.DefaultArrayThreshold,
		DownloadDir:    "/tmp/",
		ScratchDir:     "/tmp",
	}
}

// NewConfig builds and returns a new configuration from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration against its validation tags.
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// WithAnotherLog sets the logger for the configuration.
func WithAnotherLog(logger logging.Interface) Option {
	return func(c *Config) error {
		if logger == nil {
			return errors.New("nil another logger")
		}
		c.AnotherLogger = logger
		return nil
	}
}

// WithViper sets the viper for the configuration.
func WithViper(v *viper.Viper) Option {
	return func(c *Config) error {
		*c = *defaultConfig()
		if err := configutils.BindEnvsRecursive(v, c, ""); err != nil {
			return fmt.Errorf("error occurred when binding environment variables: %+v", err)
		}

		if err := v.Unmarshal(c); err != nil {
			return fmt.Errorf("error occurred when unmarshalling config: %+v", err)
		}

		// The base prefix must end with a slash for group listing to work.
		if c.BasePath != "" && !strings.HasSuffix(c.BasePath, "/") {
			c.BasePath += "/"
		}

		return nil
	}
}
