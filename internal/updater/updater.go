// Package updater keeps a command checkout current before installation.
package updater

import "context"

// Status describes the outcome of a pull.
type Status int

const (
	// StatusUpdated means new commits were fetched and applied.
	StatusUpdated Status = iota
	// StatusAlreadyCurrent means the checkout was already at the latest commit.
	StatusAlreadyCurrent
	// StatusFailed means the pull did not complete.
	StatusFailed
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusAlreadyCurrent:
		return "already-current"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a pull attempt.
type Result struct {
	Status  Status
	Message string
}

// Updater refreshes a checkout. Implementations must never mutate the
// checkout from IsRepository; only Pull may change state.
type Updater interface {
	// IsRepository reports whether the directory is part of a repository.
	IsRepository(ctx context.Context) bool

	// Pull brings the checkout up to date. Failures are reported in the
	// Result rather than as an error so callers can downgrade them to
	// warnings.
	Pull(ctx context.Context) Result
}
