package nextclosure

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/fca/sparse"
)

// Mode selects what Run emits alongside the intent sequence (spec.md §4.5).
type Mode int

const (
	// Concepts emits each intent (and its matching extent when
	// WithSaveConcepts(true) is given).
	Concepts Mode = iota
	// Implications additionally emits the canonical (Duquenne-Guigues) basis.
	Implications
)

// Options configures a Run call. Build one with the With* functions; the
// zero value runs in Concepts-compatible defaults (no extents saved, no
// logging).
type Options struct {
	SaveConcepts bool
	Verbose      bool
	Logger       *zap.SugaredLogger
}

// Option mutates Options, following the teacher's functional-option
// convention (builder.BuilderOption / matrix.Option).
type Option func(*Options)

// WithSaveConcepts controls whether Run also computes and stores each
// intent's matching extent (spec.md §4.5 "concepts mode").
func WithSaveConcepts(save bool) Option {
	return func(o *Options) { o.SaveConcepts = save }
}

// WithVerbose turns on step-by-step Debugw logging of the lectic search
// (candidate k, grade tried, accept/reject) via the configured Logger,
// defaulting to a production zap logger set to debug level if none was
// supplied.
func WithVerbose(verbose bool) Option {
	return func(o *Options) { o.Verbose = verbose }
}

// WithLogger injects a logger for verbose diagnostics (spec.md §4.10 ambient
// logging stack). Passing nil is a no-op.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolveOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		if o.Verbose {
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			l, _ := cfg.Build()
			o.Logger = l.Sugar()
		} else {
			o.Logger = zap.NewNop().Sugar()
		}
	}

	return o
}

// Result holds everything Run's Enumerate contract (spec.md §6) promises.
type Result struct {
	// Intents is every closed attribute set, in strictly ascending lectic
	// order; Intents[0] == cl(∅).
	Intents []sparse.Vector
	// Extents[i] is the matching extent of Intents[i], present only when
	// Options.SaveConcepts was true.
	Extents []sparse.Vector
	// LHS/RHS hold the canonical basis (Implications mode only): column i
	// is pseudo-intent LHS[:,i] ⇒ RHS[:,i].
	LHS, RHS sparse.Matrix
	// ClosureCount is the number of closed sets accepted during the sweep
	// (diagnostics; spec.md §4.5 "Closure count is reported").
	ClosureCount int
}
