// Package authapi is the client of the fitpair login backend. It performs
// exactly one operation — credentials in, a role-bearing session fragment
// out — and owns the sentinel error taxonomy for it.
//
// The package never touches session state or persisted storage. Writing the
// fragment into memory, persisting it, and navigating afterwards is the
// caller's responsibility, in that order.
package authapi
