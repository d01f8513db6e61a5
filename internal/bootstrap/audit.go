package bootstrap

import "context"

// AuditLog is a single lifecycle event worth keeping a trail of.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records lifecycle events (startup, shutdown) outside the
// request path.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
