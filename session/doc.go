// Package session implements the persisted session store: durable,
// prefix-scoped key/value storage for the fields a client must remember
// across restarts (token, role, profile metadata, install identity).
//
// The store is deliberately dumb. It does not validate roles, does not know
// about loading states, and treats absent keys as a normal condition (first
// launch). Interpreting what it returns is the bootstrapper's job.
//
// All operations are I/O-bound and context-aware; callers must never assume
// a read or write completed synchronously.
package session
