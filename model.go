package flatfile

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode"
)

// Model is the external object MapInto populates and NewRecord copies from. Each method is
// probed per field, so a model only needs to expose the attributes it actually has.
type Model interface {
	// Value returns the current value of name and whether the model can read it.
	Value(name string) (any, bool)
	// Settable reports whether the model has a writable attribute name.
	Settable(name string) bool
	// SetValue stores v under name.
	SetValue(name string, v any) error
}

// MapModel adapts a map. It exposes exactly the keys it already holds.
type MapModel map[string]any

// Value returns m[name].
func (m MapModel) Value(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Settable reports whether name is a key of m.
func (m MapModel) Settable(name string) bool {
	_, ok := m[name]
	return ok
}

// SetValue stores v under an existing key.
func (m MapModel) SetValue(name string, v any) error {
	if _, ok := m[name]; !ok {
		return fmt.Errorf("%w %q: no such key", ErrModelField, name)
	}
	m[name] = v
	return nil
}

// StructModel adapts a pointer to a struct. Attributes are matched against a `flat:"name"`
// tag, then the Go field name, then the snake_case form of the Go field name
// (FirstName answers to first_name). A tag of "-" hides the field.
type StructModel struct {
	v     reflect.Value
	index map[string][]int
}

var errNotStructPointer = errors.New("flatfile: model must be a non-nil pointer to a struct")

// NewStructModel wraps ptr, which must be a non-nil pointer to a struct.
func NewStructModel(ptr any) (*StructModel, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, errNotStructPointer
	}
	elem := rv.Elem()
	return &StructModel{v: elem, index: structIndex(elem.Type())}, nil
}

func structIndex(t reflect.Type) map[string][]int {
	fields := reflect.VisibleFields(t)
	index := make(map[string][]int, len(fields)*2)
	var named []reflect.StructField
	for _, sf := range fields {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		tag := sf.Tag.Get("flat")
		if tag == "-" {
			continue
		}
		if tag != "" {
			index[tag] = sf.Index
		}
		named = append(named, sf)
	}
	// Tags win over Go names, Go names over snake_case.
	for _, sf := range named {
		if _, ok := index[sf.Name]; !ok {
			index[sf.Name] = sf.Index
		}
	}
	for _, sf := range named {
		key := snakeCase(sf.Name)
		if _, ok := index[key]; !ok {
			index[key] = sf.Index
		}
	}
	return index
}

func (m *StructModel) field(name string) (reflect.Value, bool) {
	idx, ok := m.index[name]
	if !ok {
		return reflect.Value{}, false
	}
	fv, err := m.v.FieldByIndexErr(idx)
	if err != nil {
		return reflect.Value{}, false
	}
	return fv, true
}

// Value returns the current value of the struct field mapped to name.
func (m *StructModel) Value(name string) (any, bool) {
	fv, ok := m.field(name)
	if !ok {
		return nil, false
	}
	return fv.Interface(), true
}

// Settable reports whether name maps to a settable struct field.
func (m *StructModel) Settable(name string) bool {
	fv, ok := m.field(name)
	return ok && fv.CanSet()
}

// SetValue assigns v to the field mapped to name. nil and blank strings store the zero value;
// numeric values convert between numeric kinds, except that a float with a fractional part is
// rejected by integer fields; any value stringifies into a string field.
func (m *StructModel) SetValue(name string, v any) error {
	fv, ok := m.field(name)
	if !ok || !fv.CanSet() {
		return fmt.Errorf("%w %q: no such field", ErrModelField, name)
	}
	if err := assign(fv, v); err != nil {
		return fmt.Errorf("%w %q: %v", ErrModelField, name, err)
	}
	return nil
}

func assign(dst reflect.Value, v any) error {
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	src := reflect.ValueOf(v)
	dt := dst.Type()

	switch {
	case src.Type().AssignableTo(dt):
		dst.Set(src)
		return nil
	case dt.Kind() == reflect.Pointer:
		elem := reflect.New(dt.Elem())
		if err := assign(elem.Elem(), v); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	case isNumeric(src.Kind()) && isNumeric(dt.Kind()):
		if isFloat(src.Kind()) && !isFloat(dt.Kind()) {
			if f := src.Float(); f != math.Trunc(f) || math.IsInf(f, 0) {
				return fmt.Errorf("cannot store non-integral %v in %s", f, dt)
			}
		}
		dst.Set(src.Convert(dt))
		return nil
	case dt.Kind() == reflect.String:
		dst.SetString(stringify(v))
		return nil
	case src.Kind() == reflect.String && IsBlank(v):
		dst.Set(reflect.Zero(dt))
		return nil
	}
	return fmt.Errorf("cannot use %T as %s", v, dt)
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// snakeCase converts a Go identifier such as PhoneNumber or HTTPCode to phone_number or http_code.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
