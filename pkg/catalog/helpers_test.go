package catalog

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/JoannaDrx/Catalog/pkg/objectstore"
)

// fakeClient is an in-memory objectstore.Client for tests. Listings are keyed
// by the exact prefix being listed; prefixes end with a slash.
type fakeClient struct {
	listings map[string][]string
	objects  map[string][]byte
	listErrs map[string]error
	copies   map[string]string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		listings: make(map[string][]string),
		objects:  make(map[string][]byte),
		listErrs: make(map[string]error),
		copies:   make(map[string]string),
	}
}

func (f *fakeClient) List(_ context.Context, prefix string, opts ...objectstore.ListOption) ([]string, error) {
	if err := f.listErrs[prefix]; err != nil {
		return nil, err
	}

	options := objectstore.BuildListOptions(opts...)
	var out []string
	for _, entry := range f.listings[prefix] {
		if options.Match(entry) {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeClient) IsPrefix(entry string) bool {
	return strings.HasSuffix(entry, "/")
}

func (f *fakeClient) Copy(_ context.Context, source, destination string) (string, error) {
	target := destination
	if objectstore.IsRemote(source) && !objectstore.IsRemote(destination) &&
		strings.HasSuffix(destination, "/") {
		target = destination + objectstore.LastSegment(source)
	}
	f.copies[source] = target
	return target, nil
}

func (f *fakeClient) Open(_ context.Context, location string) (io.ReadCloser, error) {
	data, ok := f.objects[location]
	if !ok {
		return nil, objectstore.NewError("open", location, objectstore.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
