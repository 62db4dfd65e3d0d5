// Package error defines domain-specific errors for the ledger application.
package error

import (
	"errors"
	"strings"
)

// ErrorKind classifies a domain error independently of the aggregate that raised it.
type ErrorKind string

const (
	KindUnknown            ErrorKind = "unknown"
	KindInvalidArgument    ErrorKind = "invalid_argument"
	KindNotFound           ErrorKind = "not_found"
	KindInvariantViolation ErrorKind = "invariant_violation"
	KindConflict           ErrorKind = "conflict"
)

// kinded is implemented by every coded domain error.
type kinded interface {
	error
	Kind() ErrorKind
}

// KindOf returns the kind of the first coded domain error in err's chain.
func KindOf(err error) ErrorKind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// kindFromCode reads the two digit kind after the dash of a PFX-KKYYYY code.
func kindFromCode(code string) ErrorKind {
	idx := strings.IndexByte(code, '-')
	if idx < 0 || len(code) < idx+3 {
		return KindUnknown
	}

	switch code[idx+1 : idx+3] {
	case "01":
		return KindInvalidArgument
	case "02":
		return KindNotFound
	case "03":
		return KindInvariantViolation
	case "04":
		return KindConflict
	default:
		return KindUnknown
	}
}
