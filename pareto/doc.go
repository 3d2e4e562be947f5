// Package pareto implements the Pareto frontier used by the router: an
// immutable set of packed.Criteria values in which no entry dominates
// another, plus a mutable Builder that maintains that invariant under
// insertion and bulk merge.
package pareto
