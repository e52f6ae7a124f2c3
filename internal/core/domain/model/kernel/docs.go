// Package kernel contains shared value objects used across all aggregates:
// UUID identifiers and Money amounts. Both are immutable, validated at
// construction, and safe for concurrent use.
//
// The zero value of each type is invalid; construct them through the provided
// factory functions and check Validate when reconstructing from persistence.
package kernel
