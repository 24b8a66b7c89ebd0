package schema

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Kind identifies one variant of the closed validator set. Correction
// logic dispatches on Kind (e.g. numeric marker repair applies only to
// KindNumeric fields) instead of inspecting validator internals.
type Kind int

const (
	// KindAny accepts every value, including the empty string.
	KindAny Kind = iota
	// KindNonEmpty accepts any value with at least one non-space rune.
	KindNonEmpty
	// KindNumeric accepts finite decimal numbers parseable as float64.
	KindNumeric
	// KindIdentifier accepts prefix + digit-run identifiers.
	KindIdentifier
	// KindPattern accepts values matching a caller-supplied regexp.
	KindPattern
)

// String returns the lowercase name of the Kind.
func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindNonEmpty:
		return "nonempty"
	case KindNumeric:
		return "numeric"
	case KindIdentifier:
		return "identifier"
	case KindPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Validator is a pure, deterministic predicate over a trimmed field
// value. Implementations never panic and carry no mutable state, so a
// single Validator may be shared across concurrent healing workers.
type Validator interface {
	// Validate reports whether value is acceptable for the field.
	Validate(value string) bool
	// Kind reports which variant of the closed set this validator is.
	Kind() Kind
}

// Numeric returns a Validator accepting finite decimal numbers.
// Overflow, Inf, NaN and non-numeric text all fail; nothing throws.
// Complexity: O(len(value)).
func Numeric() Validator { return numericValidator{} }

type numericValidator struct{}

func (numericValidator) Kind() Kind { return KindNumeric }

func (numericValidator) Validate(value string) bool {
	if value == "" {
		return false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	// ParseFloat accepts "Inf" and "NaN" spellings; a record amount is
	// neither.
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Identifier returns a Validator accepting values of the form
// prefix + digit-run. A digits value of 0 accepts any positive run
// length; digits > 0 requires exactly that many digits.
// Complexity: O(len(value)).
func Identifier(prefix string, digits int) Validator {
	return identifierValidator{prefix: prefix, digits: digits}
}

type identifierValidator struct {
	prefix string
	digits int
}

func (identifierValidator) Kind() Kind { return KindIdentifier }

func (v identifierValidator) Validate(value string) bool {
	if !strings.HasPrefix(value, v.prefix) {
		return false
	}
	rest := value[len(v.prefix):]
	if rest == "" {
		return false
	}
	for _, r := range rest {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	if v.digits > 0 && len(rest) != v.digits {
		return false
	}
	return true
}

// Pattern returns a Validator accepting values matching re in full.
// The regexp is anchored by the caller's pattern semantics; Pattern
// wraps it with MatchString, so anchor explicitly when full-string
// matching is intended. A nil re rejects everything.
func Pattern(re *regexp.Regexp) Validator { return patternValidator{re: re} }

type patternValidator struct{ re *regexp.Regexp }

func (patternValidator) Kind() Kind { return KindPattern }

func (v patternValidator) Validate(value string) bool {
	if v.re == nil {
		return false
	}
	return v.re.MatchString(value)
}

// NonEmpty returns a Validator accepting any value with at least one
// non-space rune.
func NonEmpty() Validator { return nonEmptyValidator{} }

type nonEmptyValidator struct{}

func (nonEmptyValidator) Kind() Kind { return KindNonEmpty }

func (nonEmptyValidator) Validate(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Any returns a Validator accepting every value.
func Any() Validator { return anyValidator{} }

type anyValidator struct{}

func (anyValidator) Kind() Kind { return KindAny }

func (anyValidator) Validate(string) bool { return true }
