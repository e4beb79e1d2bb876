// Package worker contains the worker aggregate of the dispatch domain.
// A worker is a pool member capable of accepting or rejecting orders. Workers
// carry an opaque identity, an availability flag toggled by administration,
// a role separating the protected root identity from dispatchable workers,
// and the timestamp of their last offline-to-online transition, which orders
// them at selection time.
package worker
