// Package courier implements the courier aggregate.
//
// A courier moves through an operator approval workflow (Pending, Approved,
// Rejected, Suspended) and, once approved, toggles between available and
// busy. The busy flag is owned exclusively by the order lifecycle and
// dispatch handlers: a courier is busy exactly while bound to an active
// order, which is what prevents one courier from winning two orders.
//
// Lifetime statistics (delivery counter, running rating average) accumulate
// through explicit methods invoked by order transitions.
package courier
