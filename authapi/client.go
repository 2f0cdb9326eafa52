package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fitpair/fitpair/role"
)

var (
	// ErrInvalidCredentials is returned when the backend rejects the email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnavailable is returned on transport failures and server-side errors.
	ErrUnavailable = errors.New("auth backend unavailable")
	// ErrMalformedResponse is returned when the backend answers with a payload the client cannot trust.
	ErrMalformedResponse = errors.New("malformed auth response")
)

// Fragment is the session slice a successful login produces. Token presence
// is what "authenticated" means; Role is always a member of the closed
// enumeration by the time a Fragment leaves this package.
type Fragment struct {
	Token string
	Role  string
	Name  string
	Email string
}

// Backend performs the login network operation.
type Backend interface {
	Login(ctx context.Context, email, password string) (*Fragment, error)
}

const defaultTimeout = 15 * time.Second

// Config configures the HTTP backend client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	DeviceID   string
	HTTPClient *http.Client
}

// Client is the HTTP implementation of [Backend].
type Client struct {
	base     string
	deviceID string
	http     *http.Client
}

// NewClient validates cfg and returns a ready Client. Construction does no I/O.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("authapi: base URL required")
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return nil, errors.New("authapi: base URL must be http or https")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		base:     base,
		deviceID: cfg.DeviceID,
		http:     httpClient,
	}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Error string `json:"error"`
}

// Login posts credentials to the backend and returns the session fragment.
// Failures map onto the package's three sentinels; the server's own message,
// when present, is preserved for user display via error wrapping.
func (c *Client) Login(ctx context.Context, email, password string) (*Fragment, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v1/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.deviceID != "" {
		req.Header.Set("X-Device-ID", c.deviceID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var decoded loginResponse
	decodeErr := json.Unmarshal(payload, &decoded)

	switch {
	case resp.StatusCode == http.StatusOK:
		// handled below
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden ||
		resp.StatusCode == http.StatusBadRequest:
		if decodeErr == nil && decoded.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, decoded.Error)
		}
		return nil, ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, decodeErr)
	}
	if decoded.Token == "" {
		return nil, fmt.Errorf("%w: missing token", ErrMalformedResponse)
	}

	normalized, ok := role.Normalize(decoded.Role)
	if !ok {
		return nil, fmt.Errorf("%w: role %q outside enumeration", ErrMalformedResponse, decoded.Role)
	}

	if err := checkTokenClaims(decoded.Token, normalized); err != nil {
		return nil, err
	}

	return &Fragment{
		Token: decoded.Token,
		Role:  normalized,
		Name:  decoded.Name,
		Email: decoded.Email,
	}, nil
}

// checkTokenClaims cross-checks the bearer token against the response body
// when the token happens to be a JWT. The client holds no verification key,
// so the parse is unverified; the point is catching a backend that answers
// with contradictory role data, not validating the signature. Opaque tokens
// pass through untouched.
func checkTokenClaims(token, responseRole string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	if raw, ok := claims["role"].(string); ok {
		claimRole, valid := role.Normalize(raw)
		if !valid || claimRole != responseRole {
			return fmt.Errorf("%w: token role %q contradicts response role %q",
				ErrMalformedResponse, raw, responseRole)
		}
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if exp.Before(time.Now()) {
			return fmt.Errorf("%w: token already expired", ErrMalformedResponse)
		}
	}

	return nil
}
