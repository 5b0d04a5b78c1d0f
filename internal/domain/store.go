package domain

import "context"

// Session holds the state one caller has uploaded and computed. Each session
// is independent; the core computation never reads another session's tables.
type Session struct {
	Tables Tables
	Result *Result
}

// SessionRepository defines the interface for per-session state storage.
// Implementations must be safe for concurrent use.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, id string, session *Session) error
	Delete(ctx context.Context, id string) error
}
