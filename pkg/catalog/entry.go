package catalog

import (
	"sort"
	"strings"
)

// NameEntry is the value stored under an artifact name: either exactly one
// dataset, or a format-keyed set of datasets when several artifacts share a
// base name and differ only in extension. Exactly one of the two fields is
// set; consumers switch on Multi().
type NameEntry struct {
	Single  *Dataset            `json:"single,omitempty"`
	Formats map[string]*Dataset `json:"formats,omitempty"`
}

// SingleEntry wraps one dataset in a NameEntry.
func SingleEntry(ds *Dataset) NameEntry {
	return NameEntry{Single: ds}
}

// Multi reports whether this entry holds several formats of the same name.
func (e NameEntry) Multi() bool {
	return e.Formats != nil
}

// WithFormat merges another format of the same artifact name into the entry,
// promoting a single entry to a format-keyed one on first collision. Format
// keys are lower-case extensions.
func (e NameEntry) WithFormat(ext string, ds *Dataset) NameEntry {
	if e.Formats != nil {
		e.Formats[ext] = ds
		return e
	}

	formats := map[string]*Dataset{ext: ds}
	if e.Single != nil {
		formats[strings.ToLower(e.Single.Format)] = e.Single
	}
	return NameEntry{Formats: formats}
}

// Datasets returns every dataset held by the entry, in deterministic order.
func (e NameEntry) Datasets() []*Dataset {
	if e.Single != nil {
		return []*Dataset{e.Single}
	}

	exts := make([]string, 0, len(e.Formats))
	for ext := range e.Formats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	out := make([]*Dataset, 0, len(exts))
	for _, ext := range exts {
		out = append(out, e.Formats[ext])
	}
	return out
}
