// Package role defines the closed two-member role enumeration used across
// the session core. The UI layer may speak of "members" and "coaches"; those
// labels are display vocabulary only and must be translated at the UI
// boundary — storage, state, and the route guard see only these values.
package role

import "strings"

const (
	// Student is a user training under a coach.
	Student = "student"
	// Instructor is a coach managing students.
	Instructor = "instructor"
)

// Valid reports whether r is a member of the enumeration. Any other value —
// including legacy UI labels like "member" or "coach" — is not a role.
func Valid(r string) bool {
	return r == Student || r == Instructor
}

// Normalize maps a raw stored or wire value onto the enumeration. It
// tolerates case and surrounding whitespace but nothing else: unrecognized
// values return ok=false and must be treated as absent, never as a third role.
func Normalize(raw string) (string, bool) {
	r := strings.ToLower(strings.TrimSpace(raw))
	if Valid(r) {
		return r, true
	}
	return "", false
}
