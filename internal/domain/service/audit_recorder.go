// Package service defines interfaces for core, stateless domain logic.
package service

import "context"

// AuditRecorder emits structured, sanitized audit events. Every event is
// tagged with the correlation id and the resolved caller identity from the
// request context; anonymous callers are recorded under a "system" sentinel.
// Free-form payloads must pass through Sanitize before being recorded.
type AuditRecorder interface {
	Create(ctx context.Context, resource, resourceID, detail string)
	Update(ctx context.Context, resource, resourceID, oldDetail, newDetail string)
	Delete(ctx context.Context, resource, resourceID string)
	Access(ctx context.Context, resource, resourceID string)

	LoginSuccess(ctx context.Context, email, kind string)
	LoginFailure(ctx context.Context, email, reason string)
	Logout(ctx context.Context, email string)

	PermissionChange(ctx context.Context, target, detail string)
	DataExport(ctx context.Context, resource, detail string)
	StatusChange(ctx context.Context, resource, resourceID, from, to string)
	SecurityEvent(ctx context.Context, event, detail string)

	// Sanitize redacts key-like password/token/secret values and truncates
	// the result to the configured bound.
	Sanitize(data string) string
}
