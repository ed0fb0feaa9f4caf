package flatfile

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Lines of the person layout: f_name(10) l_name(10) gender(1) phone(10) age(4) pad(3) ignore(3).
const (
	captainLine = "Captain   Stubing   M          4      xxx"
	noPhoneLine = "No        Phone                5      xxx"
	hasPhone    = "Has       Phone     F11111111116      xxx"
)

func toInt(v any) (any, error) {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func toFloatString(v any) (any, error) {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return "0.0", nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return strconv.FormatFloat(f, 'f', 1, 64), nil
}

// keepPhone writes the record phone only when the model holds no phone at all.
func keepPhone(model Model, rec *Record) error {
	if v, ok := model.Value("phone"); ok && v != nil {
		return nil
	}
	phone, err := rec.Get("phone")
	if err != nil {
		return err
	}
	return model.SetValue("phone", phone)
}

func newPersonDefinition(t testing.TB, opts ...Option) *Definition {
	t.Helper()

	def := New(opts...)
	_, err := def.Field("f_name", Width(10))
	require.NoError(t, err)
	_, err = def.Field("l_name", Width(10), Aggressive())
	require.NoError(t, err)
	_, err = def.Field("gender", Width(1), Default(nil))
	require.NoError(t, err)
	_, err = def.Field("phone", Width(10), MapIn(keepPhone))
	require.NoError(t, err)
	_, err = def.Field("age", Width(4), Filter(Func(toInt)), Formatter(Func(toFloatString)))
	require.NoError(t, err)
	_, err = def.Pad(AutoName, Width(3))
	require.NoError(t, err)
	_, err = def.Field("ignore", Width(3), Padding())
	require.NoError(t, err)
	return def
}

func personModel(fName, lName, gender, phone any) MapModel {
	return MapModel{
		"f_name": fName,
		"l_name": lName,
		"gender": gender,
		"phone":  phone,
		"age":    "4",
		"ignore": nil,
	}
}
