package flatfile

// DefaultWidth is the width given to fields declared without Width.
const DefaultWidth = 10

// MapInFunc replaces the default MapInto behaviour for one field.
type MapInFunc func(model Model, rec *Record) error

// Field describes one declared column range. It is immutable once appended to a Schema.
type Field struct {
	name       string
	width      int
	offset     int
	padding    bool
	filters    []Transform
	formatters []Transform
	def        any
	mapIn      MapInFunc
	aggressive bool
}

// FieldOption configures a Field at declaration time.
type FieldOption func(*Field)

// Width sets the number of characters the field occupies.
func Width(n int) FieldOption {
	return func(f *Field) { f.width = n }
}

// Filter appends read-side transforms.
func Filter(steps ...Transform) FieldOption {
	return func(f *Field) { f.filters = append(f.filters, steps...) }
}

// Formatter appends write-side transforms.
func Formatter(steps ...Transform) FieldOption {
	return func(f *Field) { f.formatters = append(f.formatters, steps...) }
}

// Default sets the value MapInto writes when the model is still blank. Pass nil for "no value".
func Default(v any) FieldOption {
	return func(f *Field) { f.def = v }
}

// MapIn installs a procedure that owns the MapInto decision for the field.
func MapIn(fn MapInFunc) FieldOption {
	return func(f *Field) { f.mapIn = fn }
}

// Aggressive makes MapInto overwrite the model regardless of its current value.
func Aggressive() FieldOption {
	return func(f *Field) { f.aggressive = true }
}

// Padding marks the field as padding. Pad sets this implicitly.
func Padding() FieldOption {
	return func(f *Field) { f.padding = true }
}

func newField(name string, opts []FieldOption) *Field {
	f := &Field{name: name, width: DefaultWidth, def: ""}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Width returns the declared width.
func (f *Field) Width() int { return f.width }

// Offset returns the zero-based column where the field starts.
func (f *Field) Offset() int { return f.offset }

// IsPadding reports whether the field is padding.
func (f *Field) IsPadding() bool { return f.padding }

// IsAggressive reports whether MapInto always overwrites the model for this field.
func (f *Field) IsAggressive() bool { return f.aggressive }

// Default returns the value MapInto falls back to.
func (f *Field) Default() any { return f.def }

// HasMapIn reports whether a MapIn procedure was declared.
func (f *Field) HasMapIn() bool { return f.mapIn != nil }

// Filters returns a copy of the read pipeline.
func (f *Field) Filters() []Transform {
	return append([]Transform(nil), f.filters...)
}

// Formatters returns a copy of the write pipeline.
func (f *Field) Formatters() []Transform {
	return append([]Transform(nil), f.formatters...)
}
