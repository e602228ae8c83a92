package catalog

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/JoannaDrx/Catalog/pkg/objectstore"
	"github.com/JoannaDrx/Catalog/pkg/tabular"
)

// Kind discriminates single-file descriptors from homogeneous arrays.
type Kind string

const (
	// KindFile marks a descriptor for one storage object.
	KindFile Kind = "file"
	// KindArray marks a descriptor for a set of same-format objects
	// addressed collectively through a derived pattern.
	KindArray Kind = "array"
)

// FormatNA is the format recorded for degenerate array groups whose members
// carry no usable extension.
const FormatNA = "NA"

// Dataset describes one artifact, or one array of same-format artifacts,
// belonging to a group. Array datasets always carry Count, Pattern and
// Example; single-file datasets never do.
type Dataset struct {
	Group    string `json:"group"`
	Location string `json:"location"`
	Format   string `json:"format"`
	Kind     Kind   `json:"kind"`
	Count    int    `json:"count,omitempty"`
	Pattern  string `json:"pattern,omitempty"`
	Example  string `json:"example,omitempty"`
}

// memberLocation resolves the concrete storage location to act on. Array
// datasets require a member key and a usable format.
func (d *Dataset) memberLocation(key string) (string, error) {
	if d.Kind != KindArray {
		return d.Location, nil
	}
	if key == "" || d.Format == "" || d.Format == FormatNA {
		return "", fmt.Errorf("%w (key=%q, format=%q)", ErrMissingArrayKey, key, d.Format)
	}
	return objectstore.JoinLocation(d.Location, key+"."+strings.ToLower(d.Format)), nil
}

// Keys lists the member identifiers of an array dataset, usable as the key
// argument of Download, Open and ReadTabular. Calling it on a single-file
// dataset is an error.
func (d *Dataset) Keys(ctx context.Context, client objectstore.Client) ([]string, error) {
	if d.Kind != KindArray {
		return nil, ErrNotArray
	}

	entries, err := client.List(ctx, d.Location, objectstore.WithSuffix(strings.ToLower(d.Format)))
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := objectstore.LastSegment(entry)
		name, _, _ = strings.Cut(name, ".")
		keys = append(keys, name)
	}
	return keys, nil
}

// Download copies the dataset (or one array member) to destDir and returns
// the local path written.
func (d *Dataset) Download(ctx context.Context, client objectstore.Client, key, destDir string) (string, error) {
	location, err := d.memberLocation(key)
	if err != nil {
		return "", err
	}
	return client.Copy(ctx, location, destDir)
}

// Open streams the raw bytes of the dataset (or one array member).
func (d *Dataset) Open(ctx context.Context, client objectstore.Client, key string) (io.ReadCloser, error) {
	location, err := d.memberLocation(key)
	if err != nil {
		return nil, err
	}
	return client.Open(ctx, location)
}

// ReadTabular parses a CSV-format dataset (or one array member) into a Frame,
// using the column at indexColumn as the row index.
func (d *Dataset) ReadTabular(ctx context.Context, client objectstore.Client, key string, indexColumn int) (*tabular.Frame, error) {
	if d.Format != "CSV" {
		return nil, fmt.Errorf("catalog: dataset format %s is not CSV", d.Format)
	}

	rc, err := d.Open(ctx, client, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return tabular.ReadCSV(rc, indexColumn)
}

// String renders the dataset for humans: the owning group followed by every
// field that is set.
func (d *Dataset) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset from %s:", strings.ToUpper(d.Group))
	fmt.Fprintf(&b, "\n\t- location: %s", d.Location)
	if d.Format != "" {
		fmt.Fprintf(&b, "\n\t- format: %s", d.Format)
	}
	if d.Kind != "" {
		fmt.Fprintf(&b, "\n\t- kind: %s", d.Kind)
	}
	if d.Count > 0 {
		fmt.Fprintf(&b, "\n\t- count: %d", d.Count)
	}
	if d.Pattern != "" {
		fmt.Fprintf(&b, "\n\t- pattern: %s", d.Pattern)
	}
	if d.Example != "" {
		fmt.Fprintf(&b, "\n\t- example: %s", d.Example)
	}
	return b.String()
}

// BuildStoragePath computes the destination location for an uploaded
// artifact: basePath / normalized group / optional subfolder / file name.
func BuildStoragePath(basePath, rawGroup, localPath, subfolder string) string {
	return objectstore.JoinLocation(basePath, Normalize(rawGroup), subfolder, filepath.Base(localPath))
}

// FromLocalFile uploads a local artifact to its computed catalog destination
// and returns the single-file dataset describing it.
func FromLocalFile(ctx context.Context, client objectstore.Client, localPath, rawGroup, basePath, subfolder string) (*Dataset, error) {
	_, ext, err := splitExtension(filepath.Base(localPath))
	if err != nil {
		return nil, err
	}

	destination := BuildStoragePath(basePath, rawGroup, localPath, subfolder)
	if _, err := client.Copy(ctx, localPath, destination); err != nil {
		return nil, err
	}

	return &Dataset{
		Group:    Normalize(rawGroup),
		Location: destination,
		Format:   strings.ToUpper(ext),
		Kind:     KindFile,
	}, nil
}

// FromFrame serializes a tabular frame to a scratch CSV file, uploads it to
// its computed catalog destination, and returns the single-file dataset
// describing it. The scratch file is removed after upload.
func FromFrame(ctx context.Context, client objectstore.Client, fs afero.Fs, frame *tabular.Frame, name, rawGroup, basePath, subfolder, scratchDir string) (*Dataset, error) {
	scratch := filepath.Join(scratchDir, fmt.Sprintf("%s-%s.csv", name, uuid.NewString()))

	file, err := fs.Create(scratch)
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	if err := frame.WriteCSV(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to serialize frame: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, err
	}
	defer func() { _ = fs.Remove(scratch) }()

	destination := BuildStoragePath(basePath, rawGroup, name+".csv", subfolder)
	if _, err := client.Copy(ctx, scratch, destination); err != nil {
		return nil, err
	}

	return &Dataset{
		Group:    Normalize(rawGroup),
		Location: destination,
		Format:   "CSV",
		Kind:     KindFile,
	}, nil
}

// splitExtension splits a leaf name at its last dot. Names without an
// extension are rejected rather than guessed at.
func splitExtension(name string) (base, ext string, err error) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return "", "", fmt.Errorf("%w: %q", ErrNoExtension, name)
	}
	return name[:i], name[i+1:], nil
}
