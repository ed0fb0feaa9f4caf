package flatfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaWidthAccounting(t *testing.T) {
	t.Parallel()

	s := NewSchema()
	widths := []int{3, 7, 1, 12}
	for i, w := range widths {
		_, err := s.Add(string(rune('a'+i)), Width(w))
		require.NoError(t, err)
	}
	_, err := s.Pad(AutoName, Width(5))
	require.NoError(t, err)

	sum := 0
	for _, f := range s.Fields() {
		assert.Equal(t, sum, f.Offset(), f.Name())
		sum += f.Width()
	}
	assert.Equal(t, 28, sum)
	assert.Equal(t, sum, s.TotalWidth())
	assert.Equal(t, 5, s.Len())
}

func TestSchemaDefaultWidth(t *testing.T) {
	t.Parallel()

	s := NewSchema()
	f, err := s.Add("name")
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, f.Width())
	assert.Equal(t, 10, s.TotalWidth())
	assert.Equal(t, "", f.Default())
	assert.False(t, f.IsAggressive())
	assert.False(t, f.IsPadding())
	assert.False(t, f.HasMapIn())
}

func TestSchemaDuplicateField(t *testing.T) {
	t.Parallel()

	s := NewSchema()
	_, err := s.Add("phone", Width(10))
	require.NoError(t, err)

	_, err = s.Add("phone", Width(4))
	require.ErrorIs(t, err, ErrDuplicateField)

	var derr *DuplicateFieldError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "phone", derr.Name)

	_, err = s.Pad("phone", Width(1))
	assert.ErrorIs(t, err, ErrDuplicateField)
	assert.Equal(t, 10, s.TotalWidth(), "failed declarations must not change the width")
}

func TestSchemaInvalidDeclarations(t *testing.T) {
	t.Parallel()

	s := NewSchema()
	_, err := s.Add("", Width(3))
	assert.ErrorIs(t, err, ErrEmptyFieldName)

	_, err = s.Add("zero", Width(0))
	assert.ErrorIs(t, err, ErrInvalidWidth)

	_, err = s.Add("negative", Width(-2))
	assert.ErrorIs(t, err, ErrInvalidWidth)

	assert.Zero(t, s.Len())
}

func TestSchemaAutoPadNames(t *testing.T) {
	t.Parallel()

	s := NewSchema()
	_, err := s.Add("pad_2", Width(1))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := s.Pad(AutoName, Width(1))
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"pad_2", "pad_1", "pad_3", "pad_4"}, s.FieldNames())

	other := NewSchema()
	f, err := other.Pad(AutoName, Width(1))
	require.NoError(t, err)
	assert.Equal(t, "pad_1", f.Name(), "counters are per schema")
}

func TestSchemaQueries(t *testing.T) {
	t.Parallel()

	def := newPersonDefinition(t)
	s := def.Schema()

	assert.Equal(t, []string{"f_name", "l_name", "gender", "phone", "age", "pad_1", "ignore"}, s.FieldNames())
	assert.True(t, s.HasField("phone"))
	assert.True(t, s.HasField("pad_1"))
	assert.False(t, s.HasField("missing"))
	assert.True(t, def.HasField("ignore"))

	var visible []string
	for _, f := range def.NonPadFields() {
		assert.False(t, f.IsPadding())
		visible = append(visible, f.Name())
	}
	assert.Equal(t, []string{"f_name", "l_name", "gender", "phone", "age"}, visible)

	age, ok := s.Field("age")
	require.True(t, ok)
	assert.Equal(t, 31, age.Offset())
	assert.Len(t, age.Filters(), 1)
	assert.Len(t, age.Formatters(), 1)

	gender, ok := s.Field("gender")
	require.True(t, ok)
	assert.Nil(t, gender.Default())

	lName, _ := s.Field("l_name")
	assert.True(t, lName.IsAggressive())
	phone, _ := s.Field("phone")
	assert.True(t, phone.HasMapIn())

	_, ok = s.Field("missing")
	assert.False(t, ok)
}

func TestSchemaFieldsReturnsCopy(t *testing.T) {
	t.Parallel()

	def := newPersonDefinition(t)
	fields := def.Fields()
	fields[0] = nil
	assert.NotNil(t, def.Fields()[0])

	age, _ := def.Schema().Field("age")
	filters := age.Filters()
	filters[0] = Transform{}
	assert.Equal(t, "func", age.Filters()[0].String())
}
