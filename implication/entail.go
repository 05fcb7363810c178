package implication

import (
	"context"

	"github.com/katalvlaran/fca/sparse"
)

// Entails reports whether lhs⇒rhs is a semantic consequence of store: whether
// rhs ⊆ the forward-chaining closure of lhs under store (spec.md §4.9).
func Entails(ctx context.Context, store *Store, lhs, rhs sparse.Vector) (bool, error) {
	closure, _, err := Closure(ctx, store, lhs, false)
	if err != nil {
		return false, err
	}

	return sparse.Subset(rhs, closure)
}

// Equivalent reports whether a and b generate the same closure under store,
// i.e. a⇒b and b⇒a both hold (spec.md §4.9).
func Equivalent(ctx context.Context, store *Store, a, b sparse.Vector) (bool, error) {
	ca, _, err := Closure(ctx, store, a, false)
	if err != nil {
		return false, err
	}
	cb, _, err := Closure(ctx, store, b, false)
	if err != nil {
		return false, err
	}

	return sparse.Equal(ca, cb)
}

// StoreEntails reports whether a ⊨ b: every rule of b is a semantic
// consequence of a, i.e. for every column j, RHS[:,j] ⊆ cl_a(LHS[:,j])
// (spec.md §4.9).
func StoreEntails(ctx context.Context, a, b *Store) (bool, error) {
	for j := 0; j < b.Cardinality(); j++ {
		ok, err := Entails(ctx, a, b.LHS.Col(j), b.RHS.Col(j))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// StoreEquivalent reports whether a ≡ b: a ⊨ b and b ⊨ a both hold
// (spec.md §4.9).
func StoreEquivalent(ctx context.Context, a, b *Store) (bool, error) {
	ab, err := StoreEntails(ctx, a, b)
	if err != nil || !ab {
		return false, err
	}

	return StoreEntails(ctx, b, a)
}
