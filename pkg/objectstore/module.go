package objectstore

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/JoannaDrx/Catalog/pkg/logging"
)

// Module provides an S3-backed Client configured from viper.
var Module fx.Option = fx.Provide(
	func(v *viper.Viper, logger logging.Interface) (Client, error) {
		config, err := NewConfig(
			WithViper(v),
			WithAnotherLog(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("error reading objectstore configuration: %w", err)
		}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid objectstore configuration: %w", err)
		}

		return NewS3Client(context.Background(), config, logger)
	},
)
