// Package subject provides the Subject decoration type: a self-descriptive
// value with an identity symbol, a set of labels, and a record of typed
// properties. Subject is the primary decoration for pattern.Pattern and the
// package supplies the equality, ordering, merge, reconciliation, and
// predicate support consumers need to use it there.
package subject
