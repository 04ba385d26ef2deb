// Package store implements the in-memory activity store.
//
// The store holds the canonical mapping of activity name to record. It is
// seeded once at process start from the fixed set in seed.go and lives for
// the lifetime of the process; only participant lists are ever mutated.
//
// # Concurrency
//
// A single store-wide mutex guards every operation. Signup and Unregister are
// check-then-mutate sequences, so both the membership check and the mutation
// happen under one lock acquisition; two concurrent signups for the same
// email cannot both be admitted.
//
// # Copy Semantics
//
// List and Get return deep copies. Callers never hold a reference to the
// store's internal participant slices.
package store
