package catalogagent

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/JoannaDrx/Catalog/pkg/logging"
	"github.com/JoannaDrx/Catalog/pkg/objectstore"
)

type catalogAgentParams struct {
	fx.In

	AnotherLogger logging.Interface
	Viper         *viper.Viper
	Client        objectstore.Client
	Fs            afero.Fs
}

// Module provides the catalog agent to the fx application.
var Module = fx.Provide(
	func(params catalogAgentParams) (*CatalogAgent, error) {
		config, err := NewConfig(
			WithViper(params.Viper),
			WithAnotherLog(params.AnotherLogger),
		)
		if err != nil {
			return nil, fmt.Errorf("error reading catalog agent configuration: %w", err)
		}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog agent configuration: %w", err)
		}

		return NewCatalogAgent(config, params.Client, params.Fs)
	},
)
