// Package kernel contains the shared value objects of the dispatch domain:
// customer identity (UUID) and order amounts. These types are immutable,
// validated at construction, and safe for concurrent use.
package kernel
