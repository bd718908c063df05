// Package ledger holds the order rules shared by the API server and the
// front-end desk: cart editing, discount and total computation, the
// pending/paid state machine, monthly order numbering and revenue folds.
//
// Amounts are whole VND. Nothing in this package performs I/O.
package ledger
