// Package cli implements the fitpair command tree. It is presentation
// territory: the only place where the canonical student/instructor roles are
// translated into the member/coach labels users see.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	fitpair "github.com/fitpair/fitpair"
)

var (
	apiURL    string
	redisAddr string
	profile   string
)

const (
	defaultAPIURL    = "http://localhost:8080"
	defaultRedisAddr = "127.0.0.1:6379"
)

var rootCmd = &cobra.Command{
	Use:   "fitpair",
	Short: "fitpair coaching client",
	Long: `fitpair is the reference client for the fitpair coaching service.

It keeps one signed-in session per profile, restores it across runs, and
routes you to the member or coach area depending on your role.

Environment variables (a .env file in the working directory is honored):
  FITPAIR_API_URL     Auth backend URL (default: http://localhost:8080)
  FITPAIR_REDIS_ADDR  Session store address (default: 127.0.0.1:6379)
  FITPAIR_PROFILE     Session profile name (default: default)
  FITPAIR_AUDIT_LOG   File to append JSON audit events to (optional)`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Auth backend URL (overrides FITPAIR_API_URL)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "Session store address (overrides FITPAIR_REDIS_ADDR)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "Session profile (overrides FITPAIR_PROFILE)")
}

func getAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if env := os.Getenv("FITPAIR_API_URL"); env != "" {
		return env
	}
	return defaultAPIURL
}

func getRedisAddr() string {
	if redisAddr != "" {
		return redisAddr
	}
	if env := os.Getenv("FITPAIR_REDIS_ADDR"); env != "" {
		return env
	}
	return defaultRedisAddr
}

func getProfile() string {
	if profile != "" {
		return profile
	}
	return os.Getenv("FITPAIR_PROFILE")
}

// newClient builds a session client from flags and environment. The returned
// cleanup closes both the client and the store connection.
func newClient() (*fitpair.Client, func(), error) {
	rdb := redis.NewClient(&redis.Options{Addr: getRedisAddr()})

	cfg := fitpair.DefaultConfig()
	cfg.Backend.BaseURL = getAPIURL()
	cfg.Store.Profile = getProfile()

	builder := fitpair.New().
		WithConfig(cfg).
		WithRedis(rdb)

	var auditFile *os.File
	if path := os.Getenv("FITPAIR_AUDIT_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("open audit log: %w", err)
		}
		auditFile = f
		builder = builder.WithAuditSink(fitpair.NewJSONWriterSink(f))
	}

	client, err := builder.Build()
	if err != nil {
		if auditFile != nil {
			_ = auditFile.Close()
		}
		_ = rdb.Close()
		return nil, nil, err
	}

	cleanup := func() {
		client.Close()
		if auditFile != nil {
			_ = auditFile.Close()
		}
		_ = rdb.Close()
	}

	return client, cleanup, nil
}

// areaLabel maps a destination to the label users see. This is the UI
// boundary where member/coach vocabulary is allowed to exist.
func areaLabel(d fitpair.Destination) string {
	switch d {
	case fitpair.DestMemberArea:
		return "member area"
	case fitpair.DestCoachArea:
		return "coach area"
	case fitpair.DestSignIn:
		return "sign-in"
	case fitpair.DestLoading:
		return "loading"
	default:
		return d.String()
	}
}

// roleLabel maps a canonical role to its display name.
func roleLabel(role string) string {
	switch role {
	case fitpair.RoleStudent:
		return "member"
	case fitpair.RoleInstructor:
		return "coach"
	default:
		return "-"
	}
}
