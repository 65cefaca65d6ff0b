package frame

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// DType is the element type of a column.
type DType string

const (
	Int64   DType = "int64"
	Float64 DType = "float64"
	String  DType = "string"
	Bool    DType = "bool"
)

var (
	ErrConversion      = errors.New("frame: value conversion failed")
	ErrLengthMismatch  = errors.New("frame: column length mismatch")
	ErrDuplicateColumn = errors.New("frame: duplicate column name")
	ErrUnknownDType    = errors.New("frame: unknown dtype")
)

// ConversionError reports a value that cannot be stored in a column.
type ConversionError struct {
	Column string
	DType  DType
	Value  interface{}
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("frame: column %q (%s): cannot store %T(%v)", e.Column, e.DType, e.Value, e.Value)
}

func (e *ConversionError) Unwrap() error { return ErrConversion }

// Column is a single named, typed column. Only the slice matching dtype is used.
type Column struct {
	name  string
	dtype DType

	ints   []int64
	floats []float64
	strs   []string
	bools  []bool
	valid  []bool
}

// NewColumn returns an empty column with the given capacity hint.
func NewColumn(name string, dtype DType, capacity int) (*Column, error) {
	c := &Column{name: name, dtype: dtype, valid: make([]bool, 0, capacity)}
	switch dtype {
	case Int64:
		c.ints = make([]int64, 0, capacity)
	case Float64:
		c.floats = make([]float64, 0, capacity)
	case String:
		c.strs = make([]string, 0, capacity)
	case Bool:
		c.bools = make([]bool, 0, capacity)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDType, dtype)
	}
	return c, nil
}

// Int64s builds a non-null int64 column.
func Int64s(name string, values []int64) *Column {
	return &Column{name: name, dtype: Int64, ints: values, valid: allValid(len(values))}
}

// Float64s builds a non-null float64 column.
func Float64s(name string, values []float64) *Column {
	return &Column{name: name, dtype: Float64, floats: values, valid: allValid(len(values))}
}

// Strings builds a non-null string column.
func Strings(name string, values []string) *Column {
	return &Column{name: name, dtype: String, strs: values, valid: allValid(len(values))}
}

// NullableFloat64s builds a float64 column where nil entries are null.
func NullableFloat64s(name string, values []*float64) *Column {
	c := &Column{name: name, dtype: Float64, floats: make([]float64, len(values)), valid: make([]bool, len(values))}
	for i, v := range values {
		if v != nil {
			c.floats[i] = *v
			c.valid[i] = true
		}
	}
	return c
}

func allValid(n int) []bool {
	v := make([]bool, n)
	for i := range v {
		v[i] = true
	}
	return v
}

func (c *Column) Name() string { return c.name }
func (c *Column) DType() DType { return c.dtype }
func (c *Column) Len() int     { return len(c.valid) }

// IsNull reports whether row i holds no value.
func (c *Column) IsNull(i int) bool { return !c.valid[i] }

// NullCount returns the number of null cells.
func (c *Column) NullCount() int {
	n := 0
	for _, ok := range c.valid {
		if !ok {
			n++
		}
	}
	return n
}

// Value returns row i as int64, float64, string or bool, or nil when null.
func (c *Column) Value(i int) interface{} {
	if !c.valid[i] {
		return nil
	}
	switch c.dtype {
	case Int64:
		return c.ints[i]
	case Float64:
		return c.floats[i]
	case String:
		return c.strs[i]
	default:
		return c.bools[i]
	}
}

// AppendNull appends a null cell.
func (c *Column) AppendNull() {
	switch c.dtype {
	case Int64:
		c.ints = append(c.ints, 0)
	case Float64:
		c.floats = append(c.floats, 0)
	case String:
		c.strs = append(c.strs, "")
	case Bool:
		c.bools = append(c.bools, false)
	}
	c.valid = append(c.valid, false)
}

// Append converts v to the column dtype and appends it. nil and nil pointers
// are stored as null.
func (c *Column) Append(v interface{}) error {
	if v == nil {
		c.AppendNull()
		return nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			c.AppendNull()
			return nil
		}
		v = rv.Elem().Interface()
	}

	switch c.dtype {
	case Int64:
		n, ok := toInt64(v)
		if !ok {
			return c.conversionError(v)
		}
		c.ints = append(c.ints, n)
	case Float64:
		f, ok := toFloat64(v)
		if !ok {
			return c.conversionError(v)
		}
		c.floats = append(c.floats, f)
	case String:
		switch s := v.(type) {
		case string:
			c.strs = append(c.strs, s)
		case fmt.Stringer:
			c.strs = append(c.strs, s.String())
		default:
			return c.conversionError(v)
		}
	case Bool:
		b, ok := v.(bool)
		if !ok {
			return c.conversionError(v)
		}
		c.bools = append(c.bools, b)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDType, c.dtype)
	}
	c.valid = append(c.valid, true)
	return nil
}

func (c *Column) conversionError(v interface{}) error {
	return &ConversionError{Column: c.name, DType: c.dtype, Value: v}
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v interface{}) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	}
	if n, ok := toInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}

// format renders row i for text output.
func (c *Column) format(i int) string {
	if !c.valid[i] {
		return "null"
	}
	switch c.dtype {
	case Int64:
		return strconv.FormatInt(c.ints[i], 10)
	case Float64:
		return strconv.FormatFloat(c.floats[i], 'f', -1, 64)
	case String:
		return c.strs[i]
	default:
		return strconv.FormatBool(c.bools[i])
	}
}
