package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	catalogagent "github.com/JoannaDrx/Catalog/internal/catalog-agent"
	pkgafero "github.com/JoannaDrx/Catalog/pkg/afero"
	"github.com/JoannaDrx/Catalog/pkg/configutils"
	"github.com/JoannaDrx/Catalog/pkg/logging"
	"github.com/JoannaDrx/Catalog/pkg/objectstore"
)

// runCatalogCommand bootstraps the application and runs one agent action
// inside it.
func runCatalogCommand(cmd *cobra.Command, action func(context.Context, *catalogagent.CatalogAgent) error) {
	var agent *catalogagent.CatalogAgent

	options := []fx.Option{
		configutils.ProvideViperFromFile("CATALOG", cmd.Root().PersistentFlags(), configFilePath),
		pkgafero.Module,
		logging.Module,
		objectstore.Module,
		catalogagent.Module,
		fx.Populate(&agent),
	}

	options = append(options, fx.Invoke(func(lc fx.Lifecycle, l *zap.Logger, sh fx.Shutdowner) {
		lc.Append(
			fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						if err := action(cmd.Context(), agent); err != nil {
							l.Error("catalog-agent encountered an error during execution", zap.Error(err))
							os.Exit(1)
						}
						if err := sh.Shutdown(); err != nil {
							l.Error("Failed to shutdown catalog-agent", zap.Error(err))
						}
					}()
					return nil
				},
				OnStop: func(ctx context.Context) error {
					return nil
				},
			})
	}))

	app := fx.New(fx.Options(options...))
	app.Run()
	if err := app.Stop(context.Background()); err != nil {
		return
	}
}
