// Package audit implements the structured audit trail. Every event is one
// slog line tagged with the correlation id and the resolved caller identity,
// so the trail can be joined against the access log by correlation id.
package audit

import (
	"context"
	"log/slog"

	"vetclinic/config"
	deliverycontext "vetclinic/internal/delivery/context"
	"vetclinic/internal/domain/service"
)

// systemActor is recorded when no authenticated identity exists on the context.
const systemActor = "system"

const defaultMaxDetailLength = 500

type recorder struct {
	logger          *slog.Logger
	maxDetailLength int
}

// NewRecorder is the constructor for the audit recorder.
func NewRecorder(logger *slog.Logger, cfg *config.Config) service.AuditRecorder {
	maxDetailLength := defaultMaxDetailLength
	if cfg != nil && cfg.Audit != nil && cfg.Audit.MaxDetailLength > 0 {
		maxDetailLength = cfg.Audit.MaxDetailLength
	}

	return &recorder{
		logger:          logger.With(slog.String("log", "audit")),
		maxDetailLength: maxDetailLength,
	}
}

// event emits one audit line with the shared correlation/actor attributes.
func (r *recorder) event(ctx context.Context, action string, attrs ...slog.Attr) {
	actor := systemActor
	kind := ""
	if principal, ok := deliverycontext.GetPrincipal(ctx); ok {
		actor = principal.Email
		kind = principal.Kind.String()
	}

	base := []slog.Attr{
		slog.String("action", action),
		slog.String("actor", actor),
	}
	if kind != "" {
		base = append(base, slog.String("actor_kind", kind))
	}
	if correlationID := deliverycontext.GetCorrelationIDFromContext(ctx); correlationID != "" {
		base = append(base, slog.String("correlation_id", correlationID))
	}

	r.logger.LogAttrs(ctx, slog.LevelInfo, "Audit event", append(base, attrs...)...)
}

func (r *recorder) Create(ctx context.Context, resource, resourceID, detail string) {
	r.event(ctx, "CREATE",
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.String("detail", r.Sanitize(detail)),
	)
}

func (r *recorder) Update(ctx context.Context, resource, resourceID, oldDetail, newDetail string) {
	// Both snapshots pass through the sanitizer; the old value can carry
	// secrets just as easily as the new one.
	r.event(ctx, "UPDATE",
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.String("old", r.Sanitize(oldDetail)),
		slog.String("new", r.Sanitize(newDetail)),
	)
}

func (r *recorder) Delete(ctx context.Context, resource, resourceID string) {
	r.event(ctx, "DELETE",
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
	)
}

func (r *recorder) Access(ctx context.Context, resource, resourceID string) {
	r.event(ctx, "ACCESS",
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
	)
}

func (r *recorder) LoginSuccess(ctx context.Context, email, kind string) {
	r.event(ctx, "LOGIN_SUCCESS",
		slog.String("email", email),
		slog.String("kind", kind),
	)
}

func (r *recorder) LoginFailure(ctx context.Context, email, reason string) {
	r.event(ctx, "LOGIN_FAILURE",
		slog.String("email", email),
		slog.String("reason", reason),
	)
}

func (r *recorder) Logout(ctx context.Context, email string) {
	r.event(ctx, "LOGOUT", slog.String("email", email))
}

func (r *recorder) PermissionChange(ctx context.Context, target, detail string) {
	r.event(ctx, "PERMISSION_CHANGE",
		slog.String("target", target),
		slog.String("detail", r.Sanitize(detail)),
	)
}

func (r *recorder) DataExport(ctx context.Context, resource, detail string) {
	r.event(ctx, "DATA_EXPORT",
		slog.String("resource", resource),
		slog.String("detail", r.Sanitize(detail)),
	)
}

func (r *recorder) StatusChange(ctx context.Context, resource, resourceID, from, to string) {
	r.event(ctx, "STATUS_CHANGE",
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.String("from", from),
		slog.String("to", to),
	)
}

func (r *recorder) SecurityEvent(ctx context.Context, event, detail string) {
	r.event(ctx, "SECURITY_EVENT",
		slog.String("event", event),
		slog.String("detail", r.Sanitize(detail)),
	)
}
