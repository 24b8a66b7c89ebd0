package schema_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowmend/rowmend/schema"
)

// txnFields returns the canonical four-field transaction schema used
// across the test suite.
func txnFields() []schema.FieldSpec {
	return []schema.FieldSpec{
		{Name: "id", Validate: schema.Identifier("TXN", 0)},
		{Name: "from_id", Validate: schema.Identifier("ACC", 0)},
		{Name: "to_id", Validate: schema.Identifier("ACC", 0)},
		{Name: "amount", Validate: schema.Numeric()},
	}
}

// TestNew_TooFewFields verifies that a schema with arity < 2 is
// rejected at construction time.
func TestNew_TooFewFields(t *testing.T) {
	_, err := schema.New(schema.FieldSpec{Name: "only", Validate: schema.Any()})
	assert.ErrorIs(t, err, schema.ErrTooFewFields, "single-field schema must error")

	_, err = schema.New()
	assert.ErrorIs(t, err, schema.ErrTooFewFields, "empty schema must error")
}

// TestNew_MalformedSpecs covers empty names, nil validators and
// duplicate field names.
func TestNew_MalformedSpecs(t *testing.T) {
	_, err := schema.New(
		schema.FieldSpec{Name: "", Validate: schema.Any()},
		schema.FieldSpec{Name: "b", Validate: schema.Any()},
	)
	assert.ErrorIs(t, err, schema.ErrEmptyFieldName)

	_, err = schema.New(
		schema.FieldSpec{Name: "a", Validate: nil},
		schema.FieldSpec{Name: "b", Validate: schema.Any()},
	)
	assert.ErrorIs(t, err, schema.ErrNilValidator)

	_, err = schema.New(
		schema.FieldSpec{Name: "a", Validate: schema.Any()},
		schema.FieldSpec{Name: "a", Validate: schema.Any()},
	)
	assert.ErrorIs(t, err, schema.ErrDuplicateField)
}

// TestSchema_ArityAndAccessors verifies Arity, Field, Name, Kind and
// Names on a well-formed schema.
func TestSchema_ArityAndAccessors(t *testing.T) {
	s, err := schema.New(txnFields()...)
	require.NoError(t, err, "canonical schema must construct")

	assert.Equal(t, 4, s.Arity(), "four fields declared")
	assert.Equal(t, []string{"id", "from_id", "to_id", "amount"}, s.Names())
	assert.Equal(t, "amount", s.Name(3))
	assert.Equal(t, schema.KindNumeric, s.Kind(3))
	assert.Equal(t, schema.KindIdentifier, s.Kind(0))

	f, err := s.Field(1)
	require.NoError(t, err)
	assert.Equal(t, "from_id", f.Name)

	_, err = s.Field(4)
	assert.ErrorIs(t, err, schema.ErrFieldIndex, "index past arity must error")
	_, err = s.Field(-1)
	assert.ErrorIs(t, err, schema.ErrFieldIndex, "negative index must error")
}

// TestSchema_ValidTrims verifies that Valid trims surrounding
// whitespace before applying the predicate.
func TestSchema_ValidTrims(t *testing.T) {
	s, err := schema.New(txnFields()...)
	require.NoError(t, err)

	assert.True(t, s.Valid(3, " 55.00 "), "padded numeric must validate after trim")
	assert.True(t, s.Valid(0, "TXN0000000001"))
	assert.False(t, s.Valid(3, "12|34.56"), "embedded delimiter is not numeric")
	assert.False(t, s.Valid(9, "55.00"), "out-of-range index reports false")
}

// TestValidators_Numeric exercises the numeric validator against
// overflow, Inf/NaN spellings and plain garbage.
func TestValidators_Numeric(t *testing.T) {
	v := schema.Numeric()
	assert.Equal(t, schema.KindNumeric, v.Kind())

	assert.True(t, v.Validate("55.00"))
	assert.True(t, v.Validate("-0.5"))
	assert.True(t, v.Validate("1e10"))
	assert.False(t, v.Validate(""), "empty is not numeric")
	assert.False(t, v.Validate("12l34.56"), "corruption marker is not numeric")
	assert.False(t, v.Validate("1e400"), "overflow must fail, never panic")
	assert.False(t, v.Validate("Inf"))
	assert.False(t, v.Validate("NaN"))
}

// TestValidators_Identifier exercises prefix and digit-run constraints.
func TestValidators_Identifier(t *testing.T) {
	exact := schema.Identifier("ACC", 8)
	assert.Equal(t, schema.KindIdentifier, exact.Kind())
	assert.True(t, exact.Validate("ACC01234567"))
	assert.False(t, exact.Validate("ACC0123456"), "seven digits with digits=8 must fail")
	assert.False(t, exact.Validate("ACX01234567"), "wrong prefix must fail")
	assert.False(t, exact.Validate("ACC"), "empty digit run must fail")
	assert.False(t, exact.Validate("ACC0123456x"), "non-digit tail must fail")

	loose := schema.Identifier("TXN", 0)
	assert.True(t, loose.Validate("TXN1"), "digits=0 accepts any positive run")
	assert.True(t, loose.Validate("TXN0000000042"))
}

// TestValidators_PatternNonEmptyAny covers the remaining variants.
func TestValidators_PatternNonEmptyAny(t *testing.T) {
	p := schema.Pattern(regexp.MustCompile(`^[A-Z]{3}\d+$`))
	assert.Equal(t, schema.KindPattern, p.Kind())
	assert.True(t, p.Validate("ABC123"))
	assert.False(t, p.Validate("abc123"))
	assert.False(t, schema.Pattern(nil).Validate("anything"), "nil regexp rejects everything")

	ne := schema.NonEmpty()
	assert.Equal(t, schema.KindNonEmpty, ne.Kind())
	assert.True(t, ne.Validate("x"))
	assert.False(t, ne.Validate("   "))

	any := schema.Any()
	assert.Equal(t, schema.KindAny, any.Kind())
	assert.True(t, any.Validate(""))
}
