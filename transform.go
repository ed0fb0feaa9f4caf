package flatfile

import (
	"fmt"

	"github.com/rs/zerolog"
)

// TransformFunc converts a field value. Filters receive the raw column text on their first step;
// formatters receive the stringified stored value.
type TransformFunc func(v any) (any, error)

// Filterer is implemented by objects that can act as a filter or formatter step.
type Filterer interface {
	Filter(v any) (any, error)
}

// Host resolves named transforms. A Definition consults its host every time a Named step runs.
type Host interface {
	Lookup(name string) (TransformFunc, bool)
}

// Methods is a Host backed by a plain map.
type Methods map[string]TransformFunc

// Lookup returns the function registered under name.
func (m Methods) Lookup(name string) (TransformFunc, bool) {
	fn, ok := m[name]
	if !ok || fn == nil {
		return nil, false
	}
	return fn, true
}

// Merge returns a new Methods holding m overlaid with other.
func (m Methods) Merge(other Methods) Methods {
	out := make(Methods, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

type transformKind uint8

const (
	kindNone transformKind = iota
	kindNamed
	kindFunc
	kindFilterer
)

// Transform is one step of a filter or formatter pipeline. Build it with Named, Func,
// StringFunc, or Using; the zero Transform is treated as an unrecognized step.
type Transform struct {
	kind transformKind
	name string
	fn   TransformFunc
	obj  Filterer
}

// Named references an operation resolved against the Definition's Host.
func Named(name string) Transform {
	return Transform{kind: kindNamed, name: name}
}

// Func wraps fn as a pipeline step.
func Func(fn TransformFunc) Transform {
	return Transform{kind: kindFunc, fn: fn}
}

// StringFunc wraps an infallible string transform. The incoming value is stringified first.
func StringFunc(fn func(string) string) Transform {
	if fn == nil {
		return Transform{kind: kindFunc}
	}
	return Func(func(v any) (any, error) {
		return fn(stringify(v)), nil
	})
}

// Using wraps an object implementing Filterer.
func Using(f Filterer) Transform {
	return Transform{kind: kindFilterer, obj: f}
}

// String describes the step for logs and error messages.
func (t Transform) String() string {
	switch t.kind {
	case kindNamed:
		return "named:" + t.name
	case kindFunc:
		return "func"
	case kindFilterer:
		return fmt.Sprintf("filterer:%T", t.obj)
	default:
		return "unrecognized"
	}
}

// resolve returns the callable for t, or false if the step degrades to identity.
func (t Transform) resolve(host Host) (TransformFunc, bool) {
	switch t.kind {
	case kindNamed:
		if host == nil {
			return nil, false
		}
		return host.Lookup(t.name)
	case kindFunc:
		return t.fn, t.fn != nil
	case kindFilterer:
		if t.obj == nil {
			return nil, false
		}
		return t.obj.Filter, true
	default:
		return nil, false
	}
}

// pipeline runs transforms strictly left to right; each step receives the previous output.
type pipeline struct {
	host   Host
	logger zerolog.Logger
	strict bool
}

func (p pipeline) run(steps []Transform, v any, field string, stage Stage, line int) (any, error) {
	for _, step := range steps {
		fn, ok := step.resolve(p.host)
		if !ok {
			if p.strict {
				return nil, &TransformError{
					Field: field,
					Line:  line,
					Stage: stage,
					Err:   fmt.Errorf("%w: %s", ErrUnresolvedTransform, step),
				}
			}
			p.logger.Warn().
				Str("field", field).
				Str("stage", string(stage)).
				Stringer("transform", step).
				Msg("transform not applied, passing value through")
			continue
		}
		out, err := fn(v)
		if err != nil {
			return nil, &TransformError{Field: field, Line: line, Stage: stage, Err: err}
		}
		v = out
	}
	return v, nil
}

// stringify renders a stored value the way the builder sees it. nil renders as "".
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
