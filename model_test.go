package flatfile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type embeddedContact struct {
	Email string
}

type account struct {
	embeddedContact
	AccountID  string `flat:"acct"`
	HTTPCode   int
	Balance    float64
	Nickname   *string
	Hidden     string `flat:"-"`
	unexported string
}

func TestStructModelMatching(t *testing.T) {
	t.Parallel()

	a := account{AccountID: "A-1", HTTPCode: 200, unexported: "u"}
	m, err := NewStructModel(&a)
	require.NoError(t, err)

	tests := []struct {
		name string
		want any
		ok   bool
	}{
		{name: "acct", want: "A-1", ok: true},
		{name: "AccountID", want: "A-1", ok: true},
		{name: "account_id", want: "A-1", ok: true},
		{name: "http_code", want: 200, ok: true},
		{name: "HTTPCode", want: 200, ok: true},
		{name: "email", want: "", ok: true},
		{name: "Hidden", ok: false},
		{name: "hidden", ok: false},
		{name: "unexported", ok: false},
		{name: "missing", ok: false},
	}
	for _, tc := range tests {
		v, ok := m.Value(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.ok, m.Settable(tc.name), tc.name)
		if tc.ok {
			assert.Equal(t, tc.want, v, tc.name)
		}
	}
}

func TestStructModelSetValue(t *testing.T) {
	t.Parallel()

	var a account
	m, err := NewStructModel(&a)
	require.NoError(t, err)

	require.NoError(t, m.SetValue("balance", 12))
	assert.Equal(t, 12.0, a.Balance)

	require.NoError(t, m.SetValue("http_code", int64(404)))
	assert.Equal(t, 404, a.HTTPCode)

	require.NoError(t, m.SetValue("acct", 77))
	assert.Equal(t, "77", a.AccountID)

	require.NoError(t, m.SetValue("nickname", "Skip"))
	require.NotNil(t, a.Nickname)
	assert.Equal(t, "Skip", *a.Nickname)

	require.NoError(t, m.SetValue("nickname", nil))
	assert.Nil(t, a.Nickname)

	require.NoError(t, m.SetValue("http_code", "  "))
	assert.Zero(t, a.HTTPCode)

	require.NoError(t, m.SetValue("email", "a@b.c"))
	assert.Equal(t, "a@b.c", a.Email)

	require.NoError(t, m.SetValue("http_code", 500.0))
	assert.Equal(t, 500, a.HTTPCode)

	err = m.SetValue("http_code", 4.7)
	require.ErrorIs(t, err, ErrModelField)
	assert.Contains(t, err.Error(), "non-integral 4.7")
	assert.Equal(t, 500, a.HTTPCode, "rejected values leave the field unchanged")

	assert.ErrorIs(t, m.SetValue("http_code", math.NaN()), ErrModelField)
	assert.ErrorIs(t, m.SetValue("http_code", "abc"), ErrModelField)
	assert.ErrorIs(t, m.SetValue("missing", "x"), ErrModelField)
	assert.ErrorIs(t, m.SetValue("Hidden", "x"), ErrModelField)
}

func TestStructModelEmbeddedPointer(t *testing.T) {
	t.Parallel()

	type wrapper struct {
		*embeddedContact
		Name string
	}

	m, err := NewStructModel(&wrapper{})
	require.NoError(t, err)

	_, ok := m.Value("email")
	assert.False(t, ok)
	assert.False(t, m.Settable("email"))
	assert.True(t, m.Settable("name"))
}

func TestNewStructModelRejectsNonStructPointer(t *testing.T) {
	t.Parallel()

	var nilAccount *account
	for _, v := range []any{nil, account{}, nilAccount, new(int)} {
		_, err := NewStructModel(v)
		assert.Error(t, err)
	}
}

func TestMapModel(t *testing.T) {
	t.Parallel()

	m := MapModel{"a": 1}
	v, ok := m.Value("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, m.Settable("a"))
	assert.False(t, m.Settable("b"))

	require.NoError(t, m.SetValue("a", "x"))
	assert.Equal(t, "x", m["a"])
	assert.ErrorIs(t, m.SetValue("b", "x"), ErrModelField)
	assert.NotContains(t, m, "b")
}

func TestSnakeCase(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Name":        "name",
		"FirstName":   "first_name",
		"HTTPCode":    "http_code",
		"AccountID":   "account_id",
		"Line2Street": "line2_street",
		"ID":          "id",
	}
	for in, want := range tests {
		assert.Equal(t, want, snakeCase(in), in)
	}
}
