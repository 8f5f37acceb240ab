// Package interp is a tree-walking evaluator for the jsubset language.
//
// Values live on a heap of four independently-indexed handle kinds
// (environments, variables, boxed values, and objects); closures and
// variable bindings reference each other by handle rather than by Go
// pointer, which keeps cyclic structures (an object whose property
// refers back to the environment that produced it) collectible by the
// Go garbage collector without any reference-counting of our own.
package interp
