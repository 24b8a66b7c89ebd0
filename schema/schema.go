package schema

import "strings"

// FieldSpec names one field position and carries its validator.
type FieldSpec struct {
	// Name identifies the field in audit entries and reference sets.
	Name string
	// Validate is the field's acceptance predicate.
	Validate Validator
}

// Schema is an ordered, immutable sequence of field specifications.
// The zero Schema is invalid; construct via New.
type Schema struct {
	fields []FieldSpec
}

// New constructs a Schema from the given FieldSpecs, copying the slice
// to guarantee immutability. Returns ErrTooFewFields when fewer than
// two fields are supplied, ErrEmptyFieldName, ErrNilValidator or
// ErrDuplicateField on malformed specs. These are the only fatal,
// batch-aborting conditions of the pipeline; detect them once at
// startup.
// Complexity: O(n) time and memory for n fields.
func New(fields ...FieldSpec) (Schema, error) {
	if len(fields) < 2 {
		return Schema{}, ErrTooFewFields
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return Schema{}, ErrEmptyFieldName
		}
		if f.Validate == nil {
			return Schema{}, ErrNilValidator
		}
		if _, dup := seen[f.Name]; dup {
			return Schema{}, ErrDuplicateField
		}
		seen[f.Name] = struct{}{}
	}
	cp := make([]FieldSpec, len(fields))
	copy(cp, fields)
	return Schema{fields: cp}, nil
}

// Arity returns the fixed number of fields a valid record must contain.
// Complexity: O(1).
func (s Schema) Arity() int { return len(s.fields) }

// Field returns the FieldSpec at index i.
// Returns ErrFieldIndex when i is outside [0, Arity).
func (s Schema) Field(i int) (FieldSpec, error) {
	if i < 0 || i >= len(s.fields) {
		return FieldSpec{}, ErrFieldIndex
	}
	return s.fields[i], nil
}

// Name returns the name of field i, or "" when i is out of range.
func (s Schema) Name(i int) string {
	if i < 0 || i >= len(s.fields) {
		return ""
	}
	return s.fields[i].Name
}

// Kind returns the validator kind of field i, or KindAny when i is out
// of range.
func (s Schema) Kind(i int) Kind {
	if i < 0 || i >= len(s.fields) {
		return KindAny
	}
	return s.fields[i].Validate.Kind()
}

// Names returns the ordered field names as a fresh slice.
func (s Schema) Names() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// Valid reports whether the raw value is acceptable for field i after
// trimming surrounding whitespace. Out-of-range indexes report false.
// Deterministic and side-effect free: safe to call repeatedly during
// combinatorial candidate search.
func (s Schema) Valid(i int, raw string) bool {
	if i < 0 || i >= len(s.fields) {
		return false
	}
	return s.fields[i].Validate.Validate(Trim(raw))
}

// Trim normalizes a raw field value the way validation and healed
// records see it: surrounding whitespace removed, interior untouched.
func Trim(raw string) string { return strings.TrimSpace(raw) }
