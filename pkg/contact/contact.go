// Package contact provides the validation chain for contact details: a head
// link followed by name and phone links whose rules are validator tags.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ib-77/ropchain/pkg/rop/chain"
)

const (
	HeadID  = "Head"
	NameID  = "name"
	PhoneID = "phone"
)

const (
	KindHead  = "head"
	KindName  = "name"
	KindPhone = "phone"
)

var (
	ErrUnknownKind = errors.New("unknown link kind")
	ErrInvalidRule = errors.New("invalid rule")
)

var validate = validator.New()

type Contact struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

// Rules holds one validator tag per field. An empty rule always passes.
type Rules struct {
	Name  string
	Phone string
}

// DefaultRules are what the chainrun CLI applies when nothing is configured.
var DefaultRules = Rules{Name: "required", Phone: "required,e164"}

// Spec describes one configured link.
type Spec struct {
	Kind string `yaml:"kind" validate:"required,oneof=head name phone"`
	Rule string `yaml:"rule,omitempty"`
}

type head struct{}

// Head is the entry link; it performs no check of its own.
func Head() chain.Validator[Contact] {
	return &head{}
}

func (*head) Identifier() string                    { return HeadID }
func (*head) IsValid(context.Context, Contact) bool { return true }

type field struct {
	id    string
	rule  string
	value func(Contact) string
}

func (f *field) Identifier() string {
	return f.id
}

func (f *field) IsValid(ctx context.Context, c Contact) bool {
	if f.rule == "" {
		return true
	}
	return validate.VarCtx(ctx, f.value(c), f.rule) == nil
}

func Name(rule string) (chain.Validator[Contact], error) {
	return newField(NameID, rule, func(c Contact) string { return c.Name })
}

func Phone(rule string) (chain.Validator[Contact], error) {
	return newField(PhoneID, rule, func(c Contact) string { return c.Phone })
}

func newField(id, rule string, value func(Contact) string) (chain.Validator[Contact], error) {
	rule = strings.TrimSpace(rule)
	if err := checkRule(rule); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return &field{id: id, rule: rule, value: value}, nil
}

// checkRule rejects tags the validator does not know; it panics on those at
// validation time otherwise.
func checkRule(rule string) (err error) {
	if rule == "" {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%q: %v: %w", rule, r, ErrInvalidRule)
		}
	}()
	_ = validate.Var("", rule)
	return nil
}

// NewChain builds Head -> name -> phone.
func NewChain(rules Rules) (chain.Link[Contact], error) {
	return FromSpecs([]Spec{
		{Kind: KindHead},
		{Kind: KindName, Rule: rules.Name},
		{Kind: KindPhone, Rule: rules.Phone},
	})
}

// FromSpecs builds a chain in the order given.
func FromSpecs(specs []Spec) (chain.Link[Contact], error) {
	validators := make([]chain.Validator[Contact], 0, len(specs))

	for i, s := range specs {
		var (
			v   chain.Validator[Contact]
			err error
		)
		switch strings.ToLower(s.Kind) {
		case KindHead:
			v = Head()
		case KindName:
			v, err = Name(s.Rule)
		case KindPhone:
			v, err = Phone(s.Rule)
		default:
			err = fmt.Errorf("%q: %w", s.Kind, ErrUnknownKind)
		}
		if err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
		validators = append(validators, v)
	}

	return chain.Build(validators...)
}
