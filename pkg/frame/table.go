package frame

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Framer is implemented by collections that know their own tabular projection.
type Framer interface {
	Frame() (*Table, error)
}

// Table is an ordered set of equally long columns.
type Table struct {
	cols []*Column
}

// New assembles a table. All columns must have the same length and distinct names.
func New(cols ...*Column) (*Table, error) {
	seen := make(map[string]struct{}, len(cols))
	for i, c := range cols {
		if _, dup := seen[c.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.name)
		}
		seen[c.name] = struct{}{}
		if c.Len() != cols[0].Len() {
			return nil, fmt.Errorf("%w: column %d %q has %d rows, column 0 %q has %d",
				ErrLengthMismatch, i, c.name, c.Len(), cols[0].name, cols[0].Len())
		}
	}
	return &Table{cols: cols}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.cols) }

// Names returns column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.name
	}
	return out
}

// Column looks up a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.cols {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// At returns the column at position i.
func (t *Table) At(i int) *Column { return t.cols[i] }

// Row returns row i as a slice of cell values (nil for null).
func (t *Table) Row(i int) []interface{} {
	out := make([]interface{}, len(t.cols))
	for j, c := range t.cols {
		out[j] = c.Value(i)
	}
	return out
}

type schemaEntry struct {
	Name  string `json:"name"`
	DType DType  `json:"dtype"`
}

type tableJSON struct {
	Schema []schemaEntry   `json:"schema"`
	Data   [][]interface{} `json:"data"`
}

// MarshalJSON encodes the table column-major. Nulls and non-finite floats become null.
func (t *Table) MarshalJSON() ([]byte, error) {
	out := tableJSON{
		Schema: make([]schemaEntry, len(t.cols)),
		Data:   make([][]interface{}, len(t.cols)),
	}
	for j, c := range t.cols {
		out.Schema[j] = schemaEntry{Name: c.name, DType: c.dtype}
		vals := make([]interface{}, c.Len())
		for i := range vals {
			v := c.Value(i)
			if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
				v = nil
			}
			vals[i] = v
		}
		out.Data[j] = vals
	}
	return json.Marshal(out)
}

// Render writes the table as aligned text.
func (t *Table) Render(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader(t.Names())
	for i := 0; i < t.Len(); i++ {
		row := make([]string, len(t.cols))
		for j, c := range t.cols {
			row[j] = c.format(i)
		}
		tw.Append(row)
	}
	tw.Render()
}

func (t *Table) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "shape: (%d, %d)\n", t.Len(), t.Width())
	t.Render(b)
	return b.String()
}
