package chain

import (
	"errors"
	"fmt"
)

var ErrValidationFailed = errors.New("validation failed")

type Kind int

const (
	// KindSuccess means the chain was exhausted without a failing link.
	KindSuccess Kind = iota
	KindValidationFailed
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindValidationFailed:
		return "validation_failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the terminal result of one traversal. The zero value is a success.
type Outcome struct {
	kind       Kind
	identifier string
}

func Succeeded() Outcome {
	return Outcome{kind: KindSuccess}
}

func Failed(identifier string) Outcome {
	return Outcome{kind: KindValidationFailed, identifier: identifier}
}

func (o Outcome) Kind() Kind {
	return o.kind
}

func (o Outcome) IsSuccess() bool {
	return o.kind == KindSuccess
}

// Identifier names the failing link; empty on success.
func (o Outcome) Identifier() string {
	return o.identifier
}

// Err returns nil on success and a *ValidationError otherwise.
func (o Outcome) Err() error {
	if o.IsSuccess() {
		return nil
	}
	return &ValidationError{Identifier: o.identifier}
}

func (o Outcome) String() string {
	if o.IsSuccess() {
		return o.kind.String()
	}
	return fmt.Sprintf("%s: %s", o.kind, o.identifier)
}

type ValidationError struct {
	Identifier string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("error: %s is invalid", e.Identifier)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
