package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/JoannaDrx/Catalog/pkg/logging"
	"github.com/JoannaDrx/Catalog/pkg/objectstore"
)

// DefaultArrayThreshold is the leaf count above which a group's loose files
// are collapsed into arrays instead of being cataloged individually.
const DefaultArrayThreshold = 10

// Classifier turns a flat object-store listing into named dataset entries.
// It is a pure function of its inputs apart from the sub-prefix listings it
// requests through the client.
type Classifier struct {
	client         objectstore.Client
	logger         logging.Interface
	arrayThreshold int
}

// NewClassifier creates a classifier. A non-positive threshold falls back to
// DefaultArrayThreshold.
func NewClassifier(client objectstore.Client, logger logging.Interface, arrayThreshold int) *Classifier {
	if arrayThreshold <= 0 {
		arrayThreshold = DefaultArrayThreshold
	}
	return &Classifier{
		client:         client,
		logger:         logger,
		arrayThreshold: arrayThreshold,
	}
}

// Classify partitions the listing of one group into named entries. Sub-prefix
// contents always become array groups, one per distinct extension. Loose
// files become arrays only when allowArrays is set and there are more of them
// than the threshold; otherwise each is cataloged individually, with
// same-name different-extension files merged into a format-keyed entry.
func (c *Classifier) Classify(ctx context.Context, listing []string, group string, allowArrays bool) (map[string]NameEntry, error) {
	result := make(map[string]NameEntry)

	var folders, files []string
	for _, entry := range listing {
		if c.client.IsPrefix(entry) {
			folders = append(folders, entry)
		} else {
			files = append(files, entry)
		}
	}

	for _, prefix := range folders {
		sub, err := c.client.List(ctx, prefix)
		if err != nil {
			return nil, err
		}
		if len(sub) == 0 {
			c.logger.WithField("prefix", prefix).Debug("Skipping empty sub-prefix")
			continue
		}
		c.arrayRecords(sub, group, result)
	}

	if allowArrays && len(files) > c.arrayThreshold {
		c.arrayRecords(files, group, result)
		return result, nil
	}

	for _, fp := range files {
		name, ext, err := splitExtension(objectstore.LastSegment(fp))
		if err != nil {
			return nil, err
		}

		ds := &Dataset{
			Group:    group,
			Location: fp,
			Format:   strings.ToUpper(ext),
			Kind:     KindFile,
		}

		if existing, ok := result[name]; ok {
			result[name] = existing.WithFormat(strings.ToLower(ext), ds)
		} else {
			result[name] = SingleEntry(ds)
		}
	}

	return result, nil
}

// arrayRecords classifies one set of entries sharing a base directory as
// array groups, one per distinct extension found.
func (c *Classifier) arrayRecords(entries []string, group string, result map[string]NameEntry) {
	base := objectstore.ParentPrefix(entries[0])
	baseName := objectstore.LastSegment(base)

	// Extensions are taken from the last dot segment; a dot-less name
	// contributes itself and ends up in the "NA" fallback below.
	extSet := make(map[string]struct{})
	for _, entry := range entries {
		if strings.HasSuffix(entry, "/") {
			continue
		}
		seg := objectstore.LastSegment(entry)
		ext := seg
		if i := strings.LastIndex(seg, "."); i >= 0 {
			ext = seg[i+1:]
		}
		extSet[ext] = struct{}{}
	}

	exts := make([]string, 0, len(extSet))
	for ext := range extSet {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	for _, ext := range exts {
		// Each extension gets its own array even when formats share a
		// subfolder; the name disambiguates only when it has to.
		name := baseName + "_array"
		if len(exts) > 1 {
			name = baseName + "_" + strings.ToUpper(ext) + "_array"
		}

		var members []string
		for _, entry := range entries {
			if strings.HasSuffix(entry, "."+ext) {
				members = append(members, objectstore.LastSegment(entry))
			}
		}

		var ds *Dataset
		switch len(members) {
		case 0:
			// lone extension-less file
			ds = &Dataset{
				Group:    group,
				Location: ext,
				Format:   FormatNA,
				Kind:     KindFile,
			}
		case 1:
			ds = &Dataset{
				Group:    group,
				Location: objectstore.JoinLocation(base, members[0]),
				Format:   strings.ToUpper(ext),
				Kind:     KindFile,
			}
		default:
			ds = &Dataset{
				Group:    group,
				Location: base + "/",
				Format:   strings.ToUpper(ext),
				Kind:     KindArray,
				Count:    len(members),
				Pattern:  objectstore.JoinLocation(base, DerivePattern(members)),
				Example:  objectstore.JoinLocation(base, members[0]),
			}
		}

		result[name] = SingleEntry(ds)
	}
}
