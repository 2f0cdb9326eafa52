// Package fitpair implements the client-side session core of the fitpair
// coaching app: the persisted session store, the observable in-memory session
// state, the login/logout/bootstrap flows, and the route guard that decides
// which area of the app (sign-in, member area, coach area) a user may enter.
//
// The package is the public surface. It exposes [Client], [Builder], [Config],
// [Guard], and value types (Snapshot, Destination, MetricsSnapshot). All flow
// orchestration, state fan-out, and audit dispatch live under internal/ and
// are never exported.
//
// # Session model
//
// A session is a [Snapshot]: token, role, profile metadata, and a loading
// latch that is true only while the one-time bootstrap reconciles persisted
// storage into memory. A role is never trusted without a token, and a role
// outside the student/instructor enumeration is treated as absent.
//
// # Architecture boundaries
//
//   - [Client] owns all mutation: every write to session state is a single
//     combined snapshot replacement, never a field-by-field mutation an
//     observer could catch mid-way.
//   - The authapi backend performs the login network call and nothing else;
//     persisting and publishing the result belongs to [Client.Login].
//   - [Guard] is a pure decision over the current snapshot plus an
//     idempotence check against the current location. It never mutates
//     session state.
//
// # Failure posture
//
// Storage failures degrade to "no persisted session" and never leave the
// loading latch stuck. Login failures surface to the caller and leave state
// untouched. The worst outcome of any failure path is a redirect to sign-in.
package fitpair
