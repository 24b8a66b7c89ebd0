package split

import "errors"

var (
	// ErrArity indicates a target arity below two.
	ErrArity = errors.New("split: arity must be at least 2")
	// ErrBudgetExceeded indicates the merge search would exceed the
	// configured span or candidate budget; the search fails closed.
	ErrBudgetExceeded = errors.New("split: candidate budget exceeded")
)
