package evolve

import "github.com/google/uuid"

// TokenSource mints the identifier that correlates all iteration events
// of one run.
type TokenSource interface {
	Token() string
}

// UUIDSource mints a fresh RFC 4122 version-4 token per run. The default.
type UUIDSource struct{}

// Token returns a new random UUID string.
func (UUIDSource) Token() string { return uuid.NewString() }

// FixedSource always answers with itself, making event streams
// reproducible in tests and replays.
type FixedSource string

// Token returns the fixed string.
func (s FixedSource) Token() string { return string(s) }
