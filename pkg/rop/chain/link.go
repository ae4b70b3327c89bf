package chain

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/ib-77/ropchain/pkg/rop"
)

var (
	ErrEmptyChain          = errors.New("chain has no links")
	ErrNilValidator        = errors.New("nil validator")
	ErrEmptyIdentifier     = errors.New("empty identifier")
	ErrDuplicateLink       = errors.New("validator appears more than once")
	ErrDuplicateIdentifier = errors.New("identifier appears more than once")
	ErrCycle               = errors.New("chain is cyclic")
)

// Validator checks one condition of a T. IsValid must not have side effects
// that later links depend on.
type Validator[T any] interface {
	Identifier() string
	IsValid(ctx context.Context, in T) bool
}

// Link is a Validator placed in a chain.
type Link[T any] interface {
	Validator[T]
	// Next returns nil for the last link.
	Next() Link[T]
}

type funcValidator[T any] struct {
	id    string
	check func(ctx context.Context, in T) bool
}

// New returns a Validator named id. A nil check always passes. Every call
// returns a distinct instance.
func New[T any](id string, check func(ctx context.Context, in T) bool) Validator[T] {
	return &funcValidator[T]{id: id, check: check}
}

func (v *funcValidator[T]) Identifier() string {
	return v.id
}

func (v *funcValidator[T]) IsValid(ctx context.Context, in T) bool {
	if v.check == nil {
		return true
	}
	return v.check(ctx, in)
}

type node[T any] struct {
	Validator[T]
	next *node[T]
}

func (n *node[T]) Next() Link[T] {
	if n.next == nil {
		return nil
	}
	return n.next
}

// Build wires validators in order and returns the head. The successor of each
// entry is the following entry; the last has none.
func Build[T any](validators ...Validator[T]) (Link[T], error) {
	if len(validators) == 0 {
		return nil, ErrEmptyChain
	}

	instances := make(map[any]int, len(validators))
	identifiers := make(map[string]int, len(validators))

	for i, v := range validators {
		if rop.IsNil(v) {
			return nil, fmt.Errorf("position %d: %w", i, ErrNilValidator)
		}

		id := v.Identifier()
		if id == "" {
			return nil, fmt.Errorf("position %d: %w", i, ErrEmptyIdentifier)
		}

		if reflect.ValueOf(v).Comparable() {
			if prev, ok := instances[v]; ok {
				return nil, fmt.Errorf("%q at positions %d and %d: %w", id, prev, i, ErrDuplicateLink)
			}
			instances[v] = i
		}

		if prev, ok := identifiers[id]; ok {
			return nil, fmt.Errorf("%q at positions %d and %d: %w", id, prev, i, ErrDuplicateIdentifier)
		}
		identifiers[id] = i
	}

	var next *node[T]
	for i := len(validators) - 1; i >= 0; i-- {
		next = &node[T]{Validator: validators[i], next: next}
	}
	return next, nil
}

func MustBuild[T any](validators ...Validator[T]) Link[T] {
	head, err := Build(validators...)
	if err != nil {
		panic(err)
	}
	return head
}

// maxWalk bounds Links for links that cannot be compared for identity.
const maxWalk = 1 << 16

// Links returns the chain starting at head in traversal order.
func Links[T any](head Link[T]) ([]Link[T], error) {
	var (
		out  []Link[T]
		seen = make(map[any]struct{})
	)

	for link := head; !isEnd(link); link = link.Next() {
		if len(out) >= maxWalk {
			return out, ErrCycle
		}
		if reflect.ValueOf(link).Comparable() {
			if _, ok := seen[link]; ok {
				return out, fmt.Errorf("%q revisited: %w", link.Identifier(), ErrCycle)
			}
			seen[link] = struct{}{}
		}
		out = append(out, link)
	}
	return out, nil
}

func Identifiers[T any](head Link[T]) ([]string, error) {
	links, err := Links(head)
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.Identifier())
	}
	return ids, err
}

func isEnd[T any](link Link[T]) bool {
	return rop.IsNil(link)
}
