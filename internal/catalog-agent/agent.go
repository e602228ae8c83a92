// Package catalogagent glues the catalog core to its collaborators and
// exposes the operations driven by the CLI.
package catalogagent

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/JoannaDrx/Catalog/pkg/catalog"
	"github.com/JoannaDrx/Catalog/pkg/logging"
	"github.com/JoannaDrx/Catalog/pkg/objectstore"
)

// CatalogAgent builds and operates the persisted catalog.
type CatalogAgent struct {
	logger logging.Interface
	config *Config
	client objectstore.Client
	fs     afero.Fs
}

// NewCatalogAgent constructs the agent from a validated config.
func NewCatalogAgent(config *Config, client objectstore.Client, fs afero.Fs) (*CatalogAgent, error) {
	if config.AnotherLogger == nil {
		return nil, errors.New("catalog agent requires a logger")
	}
	return &CatalogAgent{
		logger: config.AnotherLogger,
		config: config,
		client: client,
		fs:     fs,
	}, nil
}

func (a *CatalogAgent) openCatalog(ctx context.Context, fresh bool) (*catalog.Catalog, error) {
	store := catalog.NewFileSnapshotStore(a.fs, a.config.SnapshotPath)
	cat, err := catalog.New(ctx, a.client, store, catalog.Options{
		BasePath:       a.config.BasePath,
		ArrayThreshold: a.config.ArrayThreshold,
		Fresh:          fresh,
		Logger:         a.logger,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog for %s", a.config.BasePath)
	}
	return cat, nil
}

// Create rebuilds the catalog from scratch by crawling the base path.
func (a *CatalogAgent) Create(ctx context.Context) error {
	cat, err := a.openCatalog(ctx, true)
	if err != nil {
		return err
	}
	a.logger.Infof("%s", cat)
	return nil
}

// Update refreshes one group when a group identifier is given, otherwise
// inserts every group present in storage but missing from the catalog.
func (a *CatalogAgent) Update(ctx context.Context, group string, formatID, allowArrays bool) error {
	cat, err := a.openCatalog(ctx, false)
	if err != nil {
		return err
	}

	if group == "" {
		err = cat.UpdateAll(ctx, allowArrays)
	} else {
		err = cat.UpdateGroup(ctx, group, formatID, allowArrays)
	}
	if err != nil {
		return errors.Wrap(err, "catalog update failed")
	}

	a.logger.Infof("%s", cat)
	return nil
}

// Search returns every dataset matching all attribute predicates.
func (a *CatalogAgent) Search(ctx context.Context, predicates map[string]string) ([]*catalog.Dataset, error) {
	cat, err := a.openCatalog(ctx, false)
	if err != nil {
		return nil, err
	}
	return cat.Search(predicates), nil
}

// Download fetches one dataset, or one member of an array dataset, into the
// configured download directory.
func (a *CatalogAgent) Download(ctx context.Context, group, name, format, key string) (string, error) {
	cat, err := a.openCatalog(ctx, false)
	if err != nil {
		return "", err
	}

	ds, err := resolveDataset(cat, group, name, format)
	if err != nil {
		return "", err
	}
	return ds.Download(ctx, a.client, key, a.config.DownloadDir)
}

// resolveDataset finds one dataset by group and artifact name, using format
// to pick among same-named artifacts when necessary.
func resolveDataset(cat *catalog.Catalog, group, name, format string) (*catalog.Dataset, error) {
	entries, ok := cat.Group(catalog.Normalize(group))
	if !ok {
		return nil, fmt.Errorf("no group %q in catalog", group)
	}
	entry, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("no artifact %q in group %q", name, group)
	}

	if !entry.Multi() {
		return entry.Single, nil
	}
	if format == "" {
		return nil, fmt.Errorf("artifact %q exists in %d formats, pick one", name, len(entry.Formats))
	}
	ds, ok := entry.Formats[format]
	if !ok {
		return nil, fmt.Errorf("artifact %q has no format %q", name, format)
	}
	return ds, nil
}
