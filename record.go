package flatfile

import (
	"fmt"
	"strings"
)

// Record holds the values of one line, keyed by the fields of the schema it is bound to.
// It owns its values; the codec and schema are shared and must outlive it.
type Record struct {
	codec  *Codec
	values []any
	line   int
}

// newRecord ends the declaration phase: the values slice is sized to the schema.
func newRecord(c *Codec, line int) *Record {
	c.schema.Seal()
	values := make([]any, c.schema.Len())
	for i := range values {
		values[i] = ""
	}
	return &Record{codec: c, values: values, line: line}
}

// LineNumber returns the line the record was parsed from, or NoLine.
func (r *Record) LineNumber() int { return r.line }

// Schema returns the schema the record is bound to.
func (r *Record) Schema() *Schema { return r.codec.schema }

// Get returns the stored value of name.
func (r *Record) Get(name string) (any, error) {
	i, ok := r.codec.schema.index[name]
	if !ok {
		return nil, &UnknownFieldError{Name: name}
	}
	return r.values[i], nil
}

// Set stores v under name without running filters; store values in the shape the
// formatters expect.
func (r *Record) Set(name string, v any) error {
	i, ok := r.codec.schema.index[name]
	if !ok {
		return &UnknownFieldError{Name: name}
	}
	r.values[i] = v
	return nil
}

// lookup returns the value of name, or nil when the schema does not declare it.
func (r *Record) lookup(name string) any {
	i, ok := r.codec.schema.index[name]
	if !ok {
		return nil
	}
	return r.values[i]
}

// Values returns a copy of the non-padding values keyed by field name.
func (r *Record) Values() map[string]any {
	out := make(map[string]any, len(r.values))
	for i, f := range r.codec.schema.fields {
		if !f.padding {
			out[f.name] = r.values[i]
		}
	}
	return out
}

// Line renders the record as a fixed-width line.
func (r *Record) Line() (string, error) {
	return r.codec.Build(r)
}

// String renders the record as a fixed-width line. It returns "" if a formatter fails;
// use Line to see the error.
func (r *Record) String() string {
	s, err := r.Line()
	if err != nil {
		return ""
	}
	return s
}

// DebugString returns one "name: value" line per field in layout order. Padding fields
// show an empty value.
func (r *Record) DebugString() string {
	var b strings.Builder
	for i, f := range r.codec.schema.fields {
		if f.padding {
			fmt.Fprintf(&b, "%s: \n", f.name)
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", f.name, stringify(r.values[i]))
	}
	return b.String()
}

// MapInto copies the record into model, field by field, for every non-padding field:
//
//  1. a MapIn procedure, when declared, owns the whole decision;
//  2. fields the model cannot set are skipped;
//  3. the record value is written when the field is aggressive or the model value is blank;
//  4. a model value that is still blank receives the field default.
func (r *Record) MapInto(model Model) error {
	logger := r.codec.pipe.logger
	for i, f := range r.codec.schema.fields {
		if f.padding {
			continue
		}
		if f.mapIn != nil {
			if err := f.mapIn(model, r); err != nil {
				return fmt.Errorf("flatfile: map in %q: %w", f.name, err)
			}
			continue
		}
		if !model.Settable(f.name) {
			logger.Debug().Str("field", f.name).Msg("model cannot set field, skipping")
			continue
		}

		current, _ := model.Value(f.name)
		if f.aggressive || IsBlank(current) {
			if err := model.SetValue(f.name, r.values[i]); err != nil {
				return err
			}
		}

		current, _ = model.Value(f.name)
		if IsBlank(current) {
			if err := model.SetValue(f.name, f.def); err != nil {
				return err
			}
		}
	}
	return nil
}
