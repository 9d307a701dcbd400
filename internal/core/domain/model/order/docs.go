// Package order implements the Order aggregate and the order status state
// machine.
//
// The package includes:
//   - Order: the aggregate root tracking items, parties, assignment and the
//     append-only audit trail of steps
//   - Status: the lifecycle states and the table of legal edges
//   - Step: one immutable audit entry {kind, timestamp, message}
//
// State machine:
//
//	placed ──> accepted ──> preparing ──> ready ──> picked_up ──> out_for_delivery ──> delivered
//	  │           │                                     │                                  ^
//	  └──> rejected <──┘                                └──────────────────────────────────┘
//
//	any non-terminal state ──> cancelled
//
// Key business rules:
//   - delivered, rejected and cancelled are terminal
//   - a driver is assigned exactly once, and only to a ready order
//   - picked_up and delivered are entered only through AssignDriver and
//     Deliver, because both couple the driver aggregate
//   - steps only ever grow; earlier entries are never rewritten
package order
