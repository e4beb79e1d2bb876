// Package order contains the order aggregate of the dispatch domain.
// An order is a unit of work routed to exactly one worker at a time. It owns
// its lifecycle status, the snapshot of eligible workers captured at creation,
// and the cursor marking which of them currently holds the assignment. The
// payload carried by the order is opaque to the engine and immutable after
// construction.
package order
