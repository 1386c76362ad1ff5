// Package pattern provides a generic recursive decorated-sequence container.
//
// # Overview
//
// A Pattern[V] pairs one decoration value with an ordered sequence of element
// patterns. Elements are themselves patterns, creating a strictly finite,
// acyclic recursive structure. The value decorates the elements: it carries
// information about the subtree as a whole.
//
// Patterns are immutable by convention. Every operation in this package
// rebuilds its result and never mutates its input; two patterns never share
// observable state through an operation's output.
//
// # Operations
//
// The package provides five operation families over Pattern[V]:
//
//   - Equality and total ordering (Equal, EqualFunc, Compare, CompareFunc)
//   - Pure shape-preserving mapping (Map)
//   - Pre-order folding and derived queries (Fold, Size, Depth, Values,
//     AnyValue, AllValues, Filter, FindFirst)
//   - Effectful traversal with four sequencing policies (TraverseOption,
//     TraverseResult, ValidateAll, TraverseContext) plus sequencing
//     shortcuts (SequenceOption, SequenceResult)
//   - Structural utilities (Combine, Extend, Unfold, Hash64, CheckLimits,
//     AnalyzeStructure, Render)
//
// All traversals visit the root decoration first, then each element's
// subtree left to right.
package pattern
