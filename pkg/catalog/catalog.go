package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/JoannaDrx/Catalog/pkg/logging"
	"github.com/JoannaDrx/Catalog/pkg/objectstore"
)

// Contents is the catalog mapping: normalized group identifier to artifact
// name to entry.
type Contents map[string]map[string]NameEntry

// Options configures a Catalog.
type Options struct {
	// BasePath is the object-store prefix holding one sub-prefix per group.
	BasePath string
	// ArrayThreshold is the loose-file count above which arrays are formed.
	// Non-positive values fall back to DefaultArrayThreshold.
	ArrayThreshold int
	// Fresh discards any persisted snapshot and rebuilds the catalog by
	// crawling BasePath.
	Fresh bool
	// Logger defaults to a no-op logger when nil.
	Logger logging.Interface
}

// Catalog maps group identifiers to the data artifacts found under one
// object-store prefix, and owns every Dataset reachable from it. It persists
// its full contents after every mutating operation.
//
// A Catalog assumes a single writer; concurrent writers would race on the
// snapshot with last-write-wins semantics.
type Catalog struct {
	basePath   string
	client     objectstore.Client
	store      SnapshotStore
	classifier *Classifier
	logger     logging.Interface
	contents   Contents
}

// New builds a Catalog. With opts.Fresh it crawls the base path and persists
// the result; otherwise it loads the persisted snapshot, falling back to an
// empty catalog if the snapshot is missing or unreadable.
func New(ctx context.Context, client objectstore.Client, store SnapshotStore, opts Options) (*Catalog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	c := &Catalog{
		basePath:   opts.BasePath,
		client:     client,
		store:      store,
		classifier: NewClassifier(client, logger, opts.ArrayThreshold),
		logger:     logger,
	}

	if opts.Fresh {
		if err := c.Create(ctx); err != nil {
			return nil, err
		}
		return c, nil
	}

	c.logger.WithField("exists", store.Exists()).Debugf("Loading catalog snapshot")
	contents, err := store.Load()
	if err != nil {
		// A broken snapshot is recovered locally, never surfaced.
		c.logger.WithError(err).Error("Reading catalog snapshot failed, generating empty catalog")
		contents = Contents{}
	}
	c.contents = contents
	c.logger.Infof("Initialized catalog with %d records", len(c.contents))

	return c, nil
}

// String implements fmt.Stringer.
func (c *Catalog) String() string {
	return fmt.Sprintf("Catalog for %s: %d records.", c.basePath, len(c.contents))
}

// Len returns the number of cataloged groups.
func (c *Catalog) Len() int {
	return len(c.contents)
}

// Group returns the entries of one normalized group identifier.
func (c *Catalog) Group(id string) (map[string]NameEntry, bool) {
	entries, ok := c.contents[id]
	return entries, ok
}

// Contents exposes the full mapping. The catalog stays the sole mutator;
// callers must treat the result as read-only.
func (c *Catalog) Contents() Contents {
	return c.contents
}

// Create rebuilds the catalog from scratch by crawling every group under the
// base path, then persists it. Listing failures abort the whole crawl.
func (c *Catalog) Create(ctx context.Context) error {
	c.contents = Contents{}

	groups, err := c.client.List(ctx, c.basePath)
	if err != nil {
		return err
	}

	for _, groupPath := range groups {
		id := Normalize(objectstore.LastSegment(groupPath))
		c.logger.Infof("Creating group %s...", id)

		if err := c.classifyInto(ctx, groupPath, id, true); err != nil {
			return err
		}
	}

	return c.save()
}

// UpdateGroup resolves raw to exactly one storage prefix and replaces that
// group's entry wholesale, then persists. With formatID the raw identifier is
// normalized first; allowArrays controls loose-file array formation. The
// catalog is left untouched when resolution does not find exactly one match.
func (c *Catalog) UpdateGroup(ctx context.Context, raw string, formatID, allowArrays bool) error {
	id := raw
	if formatID {
		id = Normalize(raw)
	}

	matches, err := c.client.List(ctx, c.basePath, objectstore.WithNamePattern(id))
	if err != nil {
		return err
	}
	if len(matches) != 1 {
		return fmt.Errorf("%w: found %d prefixes matching %s", ErrAmbiguousMatch, len(matches), id)
	}

	if err := c.classifyInto(ctx, matches[0], id, allowArrays); err != nil {
		return err
	}

	return c.save()
}

// UpdateAll inserts every group present in storage but absent from the
// catalog, never touching existing groups, then persists.
func (c *Catalog) UpdateAll(ctx context.Context, allowArrays bool) error {
	c.logger.Info("Scanning for new records...")

	groups, err := c.client.List(ctx, c.basePath)
	if err != nil {
		return err
	}

	for _, groupPath := range groups {
		id := Normalize(objectstore.LastSegment(groupPath))
		if _, ok := c.contents[id]; ok {
			continue
		}
		c.logger.Infof("Creating group %s...", id)

		if err := c.classifyInto(ctx, groupPath, id, allowArrays); err != nil {
			return err
		}
	}

	return c.save()
}

// Search scans every dataset in every group and returns those matching all
// given predicates, where a predicate is an attribute name mapped to a
// substring of its value. No predicates matches everything.
func (c *Catalog) Search(predicates map[string]string) []*Dataset {
	var results []*Dataset

	for _, id := range sortedKeys(c.contents) {
		entries := c.contents[id]
		for _, name := range sortedKeys(entries) {
			for _, ds := range entries[name].Datasets() {
				if matchesAll(ds, predicates) {
					results = append(results, ds)
				}
			}
		}
	}

	if len(results) > 0 {
		c.logger.Infof("Found %d results for search: %v", len(results), predicates)
	}
	return results
}

func (c *Catalog) classifyInto(ctx context.Context, groupPath, id string, allowArrays bool) error {
	listing, err := c.client.List(ctx, groupPath)
	if err != nil {
		return err
	}

	entries, err := c.classifier.Classify(ctx, listing, id, allowArrays)
	if err != nil {
		return err
	}

	c.contents[id] = entries
	return nil
}

func (c *Catalog) save() error {
	if err := c.store.Save(c.contents); err != nil {
		return err
	}
	c.logger.Debug("Catalog snapshot saved")
	return nil
}

func matchesAll(ds *Dataset, predicates map[string]string) bool {
	for attr, substr := range predicates {
		value, ok := ds.attribute(attr)
		if !ok || !strings.Contains(value, substr) {
			return false
		}
	}
	return true
}

// attribute resolves a searchable attribute by name.
func (d *Dataset) attribute(name string) (string, bool) {
	switch name {
	case "group":
		return d.Group, true
	case "location":
		return d.Location, true
	case "format":
		return d.Format, true
	case "kind":
		return string(d.Kind), true
	case "pattern":
		return d.Pattern, true
	case "example":
		return d.Example, true
	default:
		return "", false
	}
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
