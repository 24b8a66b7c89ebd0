package schema

import "errors"

var (
	// ErrTooFewFields indicates a schema with fewer than two fields;
	// a single-field record implies no delimiter and nothing to heal.
	ErrTooFewFields = errors.New("schema: at least two fields required")
	// ErrEmptyFieldName indicates a FieldSpec with an empty name.
	ErrEmptyFieldName = errors.New("schema: field name must be non-empty")
	// ErrDuplicateField indicates two FieldSpecs sharing one name.
	ErrDuplicateField = errors.New("schema: duplicate field name")
	// ErrNilValidator indicates a FieldSpec without a validator.
	ErrNilValidator = errors.New("schema: field validator must be non-nil")
	// ErrFieldIndex indicates a field index outside [0, Arity).
	ErrFieldIndex = errors.New("schema: field index out of range")
)
