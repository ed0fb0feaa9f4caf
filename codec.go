package flatfile

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// NoLine marks a record that was not read from a numbered line.
const NoLine = -1

// Codec splits fixed-width lines into Records and joins Records back into lines.
// Parse and Build hold no mutable state beyond sealing the schema, so one Codec can serve
// many goroutines once every declaration is complete.
type Codec struct {
	schema *Schema
	pipe   pipeline
}

// NewCodec binds a codec to schema.
func NewCodec(schema *Schema, opts ...Option) *Codec {
	cfg := newConfig(opts)
	return &Codec{
		schema: schema,
		pipe:   pipeline{host: cfg.host, logger: cfg.logger, strict: cfg.strict},
	}
}

// Schema returns the bound schema.
func (c *Codec) Schema() *Schema { return c.schema }

// Logger returns the logger transforms and readers report to.
func (c *Codec) Logger() zerolog.Logger { return c.pipe.logger }

// Parse splits line into a Record. The line terminator must already be stripped.
// An empty line yields a nil Record and a nil error: the caller should skip it.
// Each raw column has trailing spaces and NULs removed before its filters run; padding
// columns are discarded unfiltered.
func (c *Codec) Parse(line string, lineNumber int) (*Record, error) {
	c.schema.Seal()
	if len(line) == 0 {
		return nil, nil
	}

	expected := c.schema.TotalWidth()
	actual := utf8.RuneCountInString(line)
	if actual != expected {
		return nil, &RecordLengthError{Line: lineNumber, Actual: actual, Expected: expected}
	}

	rec := newRecord(c, lineNumber)
	cols := splitColumns(line, c.schema.fields, actual)
	for i, f := range c.schema.fields {
		if f.padding {
			continue
		}
		raw := strings.TrimRight(cols[i], " \x00")
		v, err := c.pipe.run(f.filters, raw, f.name, StageFilter, lineNumber)
		if err != nil {
			return nil, err
		}
		rec.values[i] = v
	}
	return rec, nil
}

// Build renders rec as one line of exactly TotalWidth characters. Each stored value is
// stringified and passed through its formatters; the result is space-filled on the right or
// truncated to the field width, with a Warn logged on truncation. Padding fields always render
// blank and skip their formatters. Values are looked up by name, so a record bound to another
// schema contributes only the fields both share.
func (c *Codec) Build(rec *Record) (string, error) {
	c.schema.Seal()

	var b strings.Builder
	b.Grow(c.schema.TotalWidth())
	line := NoLine
	if rec != nil {
		line = rec.line
	}
	for _, f := range c.schema.fields {
		if f.padding {
			writeColumn(&b, "", f.width)
			continue
		}
		var v any
		if rec != nil {
			v = rec.lookup(f.name)
		}
		out, err := c.pipe.run(f.formatters, stringify(v), f.name, StageFormatter, line)
		if err != nil {
			return "", err
		}
		if text := stringify(out); !writeColumn(&b, text, f.width) {
			c.pipe.logger.Warn().
				Str("field", f.name).
				Int("width", f.width).
				Str("value", text).
				Int("line", line).
				Msg("value truncated to field width")
		}
	}
	return b.String(), nil
}

// splitColumns cuts line at the field boundaries. runes is the rune count of line, which the
// caller has already matched against the schema width.
func splitColumns(line string, fields []*Field, runes int) []string {
	cols := make([]string, len(fields))
	if runes == len(line) {
		// ASCII fast path: byte offsets equal column offsets.
		for i, f := range fields {
			cols[i] = line[f.offset : f.offset+f.width]
		}
		return cols
	}

	pos := 0
	for i, f := range fields {
		start := pos
		for n := 0; n < f.width; n++ {
			_, size := utf8.DecodeRuneInString(line[pos:])
			pos += size
		}
		cols[i] = line[start:pos]
	}
	return cols
}

// writeColumn writes s into exactly width columns, truncating or space-filling on the right.
// It reports false when s was truncated.
func writeColumn(b *strings.Builder, s string, width int) bool {
	n := 0
	for _, r := range s {
		if n == width {
			return false
		}
		b.WriteRune(r)
		n++
	}
	for ; n < width; n++ {
		b.WriteByte(' ')
	}
	return true
}
