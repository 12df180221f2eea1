// Package abi decodes EVM ABI-encoded call data, return data, and
// event logs without allocating a heap buffer for the decoded values.
// Every reader in the package takes a caller-owned byte slice and an
// offset, and returns a typed view that borrows a subrange of that
// slice for its entire lifetime, plus an error describing why the
// bytes did not fit the requested shape.
//
// The package does not encode values, does not derive decoders from
// contract ABI JSON, and performs no I/O of its own; it is a pure,
// synchronous function of its input. Wide integers (uint256/int256)
// are exposed as 32-byte views with narrowing accessors that fail with
// IntegerOverflow rather than as an arbitrary-precision type.
package abi
