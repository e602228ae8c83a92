// Package tabular provides a minimal indexed-table representation for
// CSV-format catalog artifacts.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Frame is a column-labelled table with one designated index column.
type Frame struct {
	// IndexName is the header label of the index column.
	IndexName string
	// Columns are the non-index column labels, in file order.
	Columns []string
	// Index holds the index value of each row.
	Index []string
	// Rows holds the non-index cells of each row, aligned with Columns.
	Rows [][]string
}

// ReadCSV parses CSV data into a Frame, treating the column at indexColumn as
// the row index. The first record is interpreted as the header.
func ReadCSV(r io.Reader, indexColumn int) (*Frame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv data has no header row")
	}

	header := records[0]
	if indexColumn < 0 || indexColumn >= len(header) {
		return nil, fmt.Errorf("index column %d out of range for %d columns", indexColumn, len(header))
	}

	f := &Frame{IndexName: header[indexColumn]}
	for i, col := range header {
		if i != indexColumn {
			f.Columns = append(f.Columns, col)
		}
	}

	for _, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("row has %d cells, header has %d", len(rec), len(header))
		}
		row := make([]string, 0, len(rec)-1)
		for i, cell := range rec {
			if i == indexColumn {
				f.Index = append(f.Index, cell)
				continue
			}
			row = append(row, cell)
		}
		f.Rows = append(f.Rows, row)
	}

	return f, nil
}

// NumRows returns the number of data rows in the frame.
func (f *Frame) NumRows() int {
	return len(f.Rows)
}

// Column returns the cells of the named column.
func (f *Frame) Column(name string) ([]string, error) {
	if name == f.IndexName {
		return f.Index, nil
	}
	for i, col := range f.Columns {
		if col != name {
			continue
		}
		out := make([]string, len(f.Rows))
		for j, row := range f.Rows {
			out[j] = row[i]
		}
		return out, nil
	}
	return nil, fmt.Errorf("no column named %q", name)
}

// Row returns the cells of the first row whose index value equals idx.
func (f *Frame) Row(idx string) ([]string, error) {
	for i, v := range f.Index {
		if v == idx {
			return f.Rows[i], nil
		}
	}
	return nil, fmt.Errorf("no row with index %q", idx)
}

// WriteCSV serializes the frame back to CSV, index column first.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string{f.IndexName}, f.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, row := range f.Rows {
		rec := append([]string{f.Index[i]}, row...)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
