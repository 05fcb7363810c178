// Package rewrite implements the simplification rewrite engine (C8): the
// four closure-preserving equivalences over an implication's LHS/RHS banks
// (reduction, composition, generalization, simplification) plus the
// "rsimp" reverse variant, each registered under a name and runnable as a
// sequence to a fixpoint.
//
// Grounded on the teacher's builder package: Registry/Apply mirror
// builder.BuildGraph's "single orchestrator, named Constructors applied in
// deterministic order, no partial mutation on failure" contract, and
// Func/errors follow builder/errors.go's sentinel-plus-wrapf discipline
// (errors.go's rewriteErrorf corresponds to builder.builderErrorf).
package rewrite
