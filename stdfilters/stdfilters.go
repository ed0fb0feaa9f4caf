// Package stdfilters provides common filters and formatters for flatfile definitions.
//
// Methods returns them as a Host so layouts can refer to them by name:
//
//	trim    strip surrounding whitespace
//	upper   upper-case
//	lower   lower-case
//	int     parse a base-10 integer; blank parses as 0
//	float   parse a float64; blank parses as 0
//	fixed1  render a number with one decimal place
//	fixed2  render a number with two decimal places
package stdfilters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oleg578/flatfile"
)

// Methods returns a fresh host holding every named transform of this package.
func Methods() flatfile.Methods {
	return flatfile.Methods{
		"trim":   Trim,
		"upper":  Upper,
		"lower":  Lower,
		"int":    Int,
		"float":  Float,
		"fixed1": Fixed(1),
		"fixed2": Fixed(2),
	}
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Trim strips leading and trailing whitespace.
func Trim(v any) (any, error) {
	return strings.TrimSpace(text(v)), nil
}

// Upper upper-cases the value.
func Upper(v any) (any, error) {
	return strings.ToUpper(text(v)), nil
}

// Lower lower-cases the value.
func Lower(v any) (any, error) {
	return strings.ToLower(text(v)), nil
}

// Int parses the trimmed value as a base-10 int. Integers pass through unchanged.
func Int(v any) (any, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		return int(x), nil
	}
	s := strings.TrimSpace(text(v))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("stdfilters: int: %w", err)
	}
	return n, nil
}

// Float parses the trimmed value as a float64. Numbers pass through converted.
func Float(v any) (any, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	}
	s := strings.TrimSpace(text(v))
	if s == "" {
		return 0.0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("stdfilters: float: %w", err)
	}
	return f, nil
}

// Fixed returns a formatter rendering numbers with prec decimal places. Blank renders blank.
func Fixed(prec int) flatfile.TransformFunc {
	return func(v any) (any, error) {
		if strings.TrimSpace(text(v)) == "" {
			return "", nil
		}
		f, err := Float(v)
		if err != nil {
			return nil, err
		}
		return strconv.FormatFloat(f.(float64), 'f', prec, 64), nil
	}
}

// RightJustify returns a formatter that left-fills the value with fill up to width.
// Longer values are returned unchanged and truncated by the builder.
func RightJustify(width int, fill rune) flatfile.Transform {
	return flatfile.StringFunc(func(s string) string {
		n := len([]rune(s))
		if n >= width {
			return s
		}
		return strings.Repeat(string(fill), width-n) + s
	})
}
