package flatfile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Option configures a Definition or Codec.
type Option func(*config)

type config struct {
	host   Host
	logger zerolog.Logger
	strict bool
}

func newConfig(opts []Option) config {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithHost sets the Host that resolves Named transforms.
func WithHost(h Host) Option {
	return func(c *config) { c.host = h }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStrictTransforms turns unresolved transforms into errors instead of pass-through steps.
func WithStrictTransforms() Option {
	return func(c *config) { c.strict = true }
}

// Definition describes one flat file layout: it owns the schema and the codec bound to it.
type Definition struct {
	schema *Schema
	codec  *Codec
}

// New returns a Definition with an empty schema.
func New(opts ...Option) *Definition {
	s := NewSchema()
	return &Definition{schema: s, codec: NewCodec(s, opts...)}
}

// Field declares the next field.
func (d *Definition) Field(name string, opts ...FieldOption) (*Field, error) {
	return d.schema.Add(name, opts...)
}

// Pad declares the next padding field. Use AutoName to have the name generated.
func (d *Definition) Pad(name string, opts ...FieldOption) (*Field, error) {
	return d.schema.Pad(name, opts...)
}

// Validate reports every Named transform the host cannot resolve.
func (d *Definition) Validate() error {
	var errs []error
	for _, f := range d.schema.fields {
		for _, steps := range [][]Transform{f.filters, f.formatters} {
			for _, step := range steps {
				if _, ok := step.resolve(d.codec.pipe.host); !ok {
					errs = append(errs, fmt.Errorf("field %q: %w: %s", f.name, ErrUnresolvedTransform, step))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// ParseLine parses one line, stripping a trailing "\n" or "\r\n" first. A blank line yields
// a nil Record and a nil error.
func (d *Definition) ParseLine(line string) (*Record, error) {
	return d.codec.Parse(trimEOL(line), NoLine)
}

// ParseLineAt is ParseLine with the line number recorded on the Record and on errors.
func (d *Definition) ParseLineAt(line string, lineNumber int) (*Record, error) {
	return d.codec.Parse(trimEOL(line), lineNumber)
}

// Build renders rec as a fixed-width line without a terminator.
func (d *Definition) Build(rec *Record) (string, error) {
	return d.codec.Build(rec)
}

// NewRecord returns a record with every field set to "". When model is non-nil, each field
// the model can read is copied from it. The schema is sealed from here on.
func (d *Definition) NewRecord(model Model) *Record {
	rec := newRecord(d.codec, NoLine)
	if model == nil {
		return rec
	}
	for i, f := range d.schema.fields {
		if v, ok := model.Value(f.name); ok {
			rec.values[i] = v
		}
	}
	return rec
}

// NewReader returns a Reader producing records of this definition from r.
func (d *Definition) NewReader(r io.Reader) *Reader {
	return NewReader(r, d.codec)
}

// EachRecord calls fn with every record in r and the line it was parsed from. Blank lines
// are skipped. Iteration stops at the first error from parsing or from fn.
func (d *Definition) EachRecord(r io.Reader, fn func(rec *Record, line string) error) error {
	rd := d.NewReader(r)
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec, rd.Text()); err != nil {
			return err
		}
	}
}

// Schema returns the underlying schema.
func (d *Definition) Schema() *Schema { return d.schema }

// Codec returns the codec bound to the schema.
func (d *Definition) Codec() *Codec { return d.codec }

// Width returns the required line length.
func (d *Definition) Width() int { return d.schema.TotalWidth() }

// Fields returns every field in layout order.
func (d *Definition) Fields() []*Field { return d.schema.Fields() }

// NonPadFields returns the fields visible on records.
func (d *Definition) NonPadFields() []*Field { return d.schema.NonPaddingFields() }

// HasField reports whether name is declared.
func (d *Definition) HasField(name string) bool { return d.schema.HasField(name) }

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
