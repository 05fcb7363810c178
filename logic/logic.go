package logic

import (
	"strings"
	"sync"

	"github.com/katalvlaran/fca/fcaerr"
)

// Logic is a residuated lattice ([0,1], ⊗, →, ¬): a commutative, associative,
// monotone t-norm with unit 1, its residuum (x⊗y ≤ z ⇔ x ≤ y→z), and an
// induced negation ¬x = x→0.
//
// Complexity: every field evaluates a single value in O(1).
type Logic struct {
	Name     string
	Tnorm    func(x, y float64) float64
	Residuum func(x, y float64) float64
}

// Negation returns ¬x = x→0, the residuum-induced negation (spec.md §3).
func (l Logic) Negation(x float64) float64 {
	return l.Residuum(x, 0)
}

// Godel is the Gödel logic: ⊗ = min, x→y = 1 if x≤y else y.
func Godel() Logic {
	return Logic{
		Name:  "godel",
		Tnorm: func(x, y float64) float64 { return min(x, y) },
		Residuum: func(x, y float64) float64 {
			if x <= y {
				return 1
			}
			return y
		},
	}
}

// Lukasiewicz is the Łukasiewicz logic: ⊗ = max(0, x+y−1), x→y = min(1, 1−x+y).
func Lukasiewicz() Logic {
	return Logic{
		Name:  "lukasiewicz",
		Tnorm: func(x, y float64) float64 { return max(0, x+y-1) },
		Residuum: func(x, y float64) float64 {
			return min(1, 1-x+y)
		},
	}
}

// Product is the Product (Goguen) logic: ⊗ = x·y, x→y = 1 if x≤y else y/x.
func Product() Logic {
	return Logic{
		Name:  "product",
		Tnorm: func(x, y float64) float64 { return x * y },
		Residuum: func(x, y float64) float64 {
			if x <= y {
				return 1
			}
			if x == 0 {
				return 1
			}
			return y / x
		},
	}
}

// registry holds every named Logic, keyed by lower-cased name (spec.md §6:
// "Logic names: case-insensitive").
type registry struct {
	mu     sync.RWMutex
	byName map[string]Logic
	active Logic
}

var global = newRegistry()

func newRegistry() *registry {
	r := &registry{byName: make(map[string]Logic, 4)}
	for _, l := range []Logic{Godel(), Lukasiewicz(), Product()} {
		r.byName[l.Name] = l
	}
	r.active = r.byName["godel"] // classical/binary default: min is also boolean AND
	return r
}

// Register adds or replaces a named logic in the global registry. Names are
// matched case-insensitively.
func Register(l Logic) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.byName[strings.ToLower(l.Name)] = l
}

// Use sets the process-scoped active logic by name. Returns
// fcaerr.UnknownLogic if the name is not registered.
func Use(name string) error {
	global.mu.Lock()
	defer global.mu.Unlock()

	l, ok := global.byName[strings.ToLower(name)]
	if !ok {
		return fcaerr.Wrap(fcaerr.UnknownLogic, "logic.Use", name)
	}
	global.active = l

	return nil
}

// Get returns the currently active logic.
func Get() Logic {
	global.mu.RLock()
	defer global.mu.RUnlock()

	return global.active
}

// Lookup returns a registered logic by name without changing the active one.
func Lookup(name string) (Logic, error) {
	global.mu.RLock()
	defer global.mu.RUnlock()

	l, ok := global.byName[strings.ToLower(name)]
	if !ok {
		return Logic{}, fcaerr.Wrap(fcaerr.UnknownLogic, "logic.Lookup", name)
	}

	return l, nil
}

// With scopes a temporary active-logic switch: it sets name, runs fn, and
// restores the previous active logic on every exit path, including a panic
// inside fn. This is the only sanctioned way to mutate the active logic for
// the duration of an operation (spec.md §4.1).
func With(name string, fn func() error) error {
	global.mu.Lock()
	l, ok := global.byName[strings.ToLower(name)]
	if !ok {
		global.mu.Unlock()
		return fcaerr.Wrap(fcaerr.UnknownLogic, "logic.With", name)
	}
	previous := global.active
	global.active = l
	global.mu.Unlock()

	defer func() {
		global.mu.Lock()
		global.active = previous
		global.mu.Unlock()
	}()

	return fn()
}
