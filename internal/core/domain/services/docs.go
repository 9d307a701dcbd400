// Package services provides domain services that coordinate more than one
// aggregate.
//
// The package includes:
//   - OrderDispatcher: claims an order for a driver and completes the
//     delivery, keeping order, driver and earnings ledger consistent
//   - TransitionPolicy: decides which actor may request which status change
//
// Services never persist anything; the application layer wraps each call in
// a unit of work.
package services
