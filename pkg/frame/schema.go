package frame

import "fmt"

// Field declares one output column and how to read it from a row.
// Value may return nil (or a nil pointer) for a null cell.
type Field[T any] struct {
	Name  string
	Type  DType
	Value func(T) interface{}
}

// Schema is an ordered column declaration over row type T.
type Schema[T any] []Field[T]

// Names returns the declared column names in order.
func (s Schema[T]) Names() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.Name
	}
	return out
}

// Build projects rows into a table. The first conversion failure aborts the
// whole build; no partial table is returned.
func (s Schema[T]) Build(rows []T) (*Table, error) {
	cols := make([]*Column, len(s))
	for i, f := range s {
		c, err := NewColumn(f.Name, f.Type, len(rows))
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	for r, row := range rows {
		for i, f := range s {
			if err := cols[i].Append(f.Value(row)); err != nil {
				return nil, fmt.Errorf("row %d: %w", r, err)
			}
		}
	}
	return New(cols...)
}
