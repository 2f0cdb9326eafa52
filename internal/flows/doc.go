// Package flows contains the session lifecycle orchestrations (bootstrap,
// login, logout) behind the public Client methods. Each flow receives its
// dependencies as a struct of funcs so the ordering guarantees — persist
// before returning, clear state before clearing storage, always release the
// loading latch — are enforced in exactly one place and testable without a
// real store or backend.
package flows
