// Package journey holds the traveler-facing value objects — Stop, Leg,
// Journey — and Extract, which walks a router.Profile forward from a
// departure station to rebuild the concrete legs of every journey on its
// Pareto frontier.
package journey
