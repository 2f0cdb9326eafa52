package fitpair

import (
	"errors"

	"github.com/fitpair/fitpair/authapi"
	"github.com/fitpair/fitpair/session"
)

var (
	// ErrClientNotReady is returned when a Client method runs before Build completed.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrBootstrapRan is returned when Bootstrap is invoked a second time on the same Client.
	ErrBootstrapRan = errors.New("bootstrap already ran")
	// ErrSessionNotPersisted is returned by Login when state was updated but the durable write failed.
	ErrSessionNotPersisted = errors.New("session not persisted")

	// ErrInvalidCredentials is the authapi rejection sentinel, re-exported for callers.
	ErrInvalidCredentials = authapi.ErrInvalidCredentials
	// ErrAuthUnavailable is the authapi transport/server failure sentinel, re-exported for callers.
	ErrAuthUnavailable = authapi.ErrUnavailable
	// ErrMalformedResponse is the authapi untrusted-payload sentinel, re-exported for callers.
	ErrMalformedResponse = authapi.ErrMalformedResponse
	// ErrStoreUnavailable is the persisted-store failure sentinel, re-exported for callers.
	ErrStoreUnavailable = session.ErrStoreUnavailable
)
