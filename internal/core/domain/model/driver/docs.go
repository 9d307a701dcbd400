// Package driver provides the Driver aggregate: a delivery driver's
// availability, live position and running totals.
//
// Key business rules:
//   - a driver is unavailable exactly while holding an order in picked_up
//     or out_for_delivery
//   - a driver takes one order at a time
//   - location updates are last-write-wins
//   - totalEarnings grows by the net earning of every delivery
package driver
