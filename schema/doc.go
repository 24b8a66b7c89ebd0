// Package schema defines row schemas for fixed-arity delimited records
// and the closed set of per-field validators used during healing.
//
// What:
//
//   - FieldSpec pairs a field name with a Validator.
//   - Schema is an ordered, immutable sequence of FieldSpecs; its length
//     is the record arity.
//   - Validators are pure, deterministic predicates over a raw field
//     value. They are selected once at schema construction time and are
//     safe to invoke repeatedly during combinatorial candidate search.
//
// Why:
//
//   - The healing pipeline validates the same field values many times
//     while scoring split candidates; validators must be side-effect
//     free and never panic, even on garbage input.
//   - The validator set is closed (Numeric, Identifier, Pattern,
//     NonEmpty, Any); each Validator reports its Kind so downstream
//     correction logic can dispatch without runtime type sniffing.
//
// Validation trims surrounding ASCII whitespace before applying the
// predicate; the trimmed value is also what a healed record carries.
//
// Errors:
//
//   - ErrTooFewFields: a schema needs at least two fields (one delimiter).
//   - ErrEmptyFieldName: every field must be named for audit correlation.
//   - ErrDuplicateField: field names must be unique.
//   - ErrNilValidator: every field must carry a validator.
//
// Complexity: Validate is O(len(value)) for every validator kind.
package schema
