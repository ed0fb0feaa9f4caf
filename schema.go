package flatfile

import (
	"strconv"
	"sync/atomic"
)

// AutoName asks Pad to generate a schema-unique name.
const AutoName = ""

// Schema is the ordered list of declared fields. The first field occupies the leftmost columns.
// Fields are appended during a declaration phase; the schema seals itself on first use.
type Schema struct {
	fields []*Field
	index  map[string]int
	width  int
	padSeq int
	sealed atomic.Bool
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{index: make(map[string]int)}
}

// Add appends a field named name. The width defaults to DefaultWidth.
func (s *Schema) Add(name string, opts ...FieldOption) (*Field, error) {
	if name == "" {
		return nil, ErrEmptyFieldName
	}
	return s.add(newField(name, opts))
}

// Pad appends a padding field. Use AutoName to have the name generated.
func (s *Schema) Pad(name string, opts ...FieldOption) (*Field, error) {
	if name == AutoName {
		name = s.nextPadName()
	}
	f := newField(name, opts)
	f.padding = true
	return s.add(f)
}

func (s *Schema) add(f *Field) (*Field, error) {
	if s.sealed.Load() {
		return nil, ErrSchemaSealed
	}
	if f.width <= 0 {
		return nil, ErrInvalidWidth
	}
	if _, dup := s.index[f.name]; dup {
		return nil, &DuplicateFieldError{Name: f.name}
	}
	f.offset = s.width
	s.index[f.name] = len(s.fields)
	s.fields = append(s.fields, f)
	s.width += f.width
	return f, nil
}

// nextPadName returns pad_N for the next N not already taken in this schema.
func (s *Schema) nextPadName() string {
	for {
		s.padSeq++
		name := "pad_" + strconv.Itoa(s.padSeq)
		if _, taken := s.index[name]; !taken {
			return name
		}
	}
}

// Seal ends the declaration phase. It is called implicitly by the codec.
func (s *Schema) Seal() { s.sealed.Store(true) }

// Sealed reports whether declarations are closed.
func (s *Schema) Sealed() bool { return s.sealed.Load() }

// TotalWidth returns the sum of all field widths.
func (s *Schema) TotalWidth() int { return s.width }

// Len returns the number of declared fields, padding included.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns the declared fields in layout order.
func (s *Schema) Fields() []*Field {
	return append([]*Field(nil), s.fields...)
}

// Field returns the field named name.
func (s *Schema) Field(name string) (*Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

// FieldNames returns every field name in layout order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// HasField reports whether name is declared.
func (s *Schema) HasField(name string) bool {
	_, ok := s.index[name]
	return ok
}

// NonPaddingFields returns the fields visible to record consumers, in layout order.
func (s *Schema) NonPaddingFields() []*Field {
	out := make([]*Field, 0, len(s.fields))
	for _, f := range s.fields {
		if !f.padding {
			out = append(out, f)
		}
	}
	return out
}
