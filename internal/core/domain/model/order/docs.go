// Package order provides the Order aggregate root and its lifecycle state
// machine, the core of the order-processing engine.
//
// The package includes:
//   - Order: the aggregate root holding channel, status, line items, and
//     channel-specific fields
//   - Status: a state machine enforcing the monotonic lifecycle
//     Waiting -> Accepted -> Served -> (Delivering -> Delivered) -> Completed
//   - Type: the order channel (delivery, takeout, eat-in), which decides the
//     required fields and the state-machine branch
//   - LineItem: an immutable snapshot of a menu reference, quantity, and the
//     menu price frozen at order-creation time
//
// Key business rules:
//   - Orders are created in Waiting status and no transition ever reverses
//   - Delivering/Delivered apply only to delivery orders; takeout and eat-in
//     orders complete straight from Served
//   - Delivery orders require a delivery address; eat-in orders capture the id
//     of an occupied table
//   - Line-item quantities must be non-negative except on eat-in orders, where
//     negative adjustment lines are permitted
package order
