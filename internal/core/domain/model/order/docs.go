// Package order implements the order aggregate and its lifecycle state
// machine.
//
// An order is created Pending (or parked PendingApproval for channels that
// require manual price review), won by exactly one courier through the
// acceptance race, picked up into InProgress, and finished Delivered,
// Cancelled, or Rejected. Terminal states are never left and orders are
// never physically deleted.
//
// The aggregate enforces the guards of every transition; the financial and
// courier side effects that must commit atomically with a transition (ledger
// bookings, freeing the courier, delivery counters) are orchestrated by the
// command handlers inside a single unit of work.
package order
