// Package ledger contains the financial aggregates of the dispatch domain:
// the per-company running balance and the per-day reconciliation buckets
// that order bookings and payments settle against.
package ledger
