package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/config"
	deliverycontext "vetclinic/internal/delivery/context"
	"vetclinic/internal/domain/entity"
	"vetclinic/internal/domain/service"
)

func newCapturedRecorder(t *testing.T) (service.AuditRecorder, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	return NewRecorder(logger, &config.Config{}), buf
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))

	return entry
}

func TestSanitize_MasksSecrets(t *testing.T) {
	rec, _ := newCapturedRecorder(t)

	got := rec.Sanitize("password=secret123")
	assert.Contains(t, got, "password="+maskValue)
	assert.NotContains(t, got, "secret123")

	got = rec.Sanitize(`{"name":"Rocky","token":"abc.def.ghi","apiSecret":"hunter2"}`)
	assert.NotContains(t, got, "abc.def.ghi")
	assert.NotContains(t, got, "hunter2")
	assert.Contains(t, got, "Rocky")
}

func TestSanitize_CaseInsensitive(t *testing.T) {
	rec, _ := newCapturedRecorder(t)

	got := rec.Sanitize("PASSWORD=topsecret&Token=abcd")
	assert.NotContains(t, got, "topsecret")
	assert.NotContains(t, got, "abcd")
}

func TestSanitize_Truncates(t *testing.T) {
	rec, _ := newCapturedRecorder(t)

	long := strings.Repeat("x", 600)
	got := rec.Sanitize(long)
	assert.True(t, strings.HasSuffix(got, truncationMarker))
	assert.Len(t, got, defaultMaxDetailLength+len(truncationMarker))
}

func TestSanitize_MasksQuotedValuesWithSpaces(t *testing.T) {
	rec, _ := newCapturedRecorder(t)

	got := rec.Sanitize(`{"password": "correct horse battery staple"}`)
	assert.NotContains(t, got, "horse")
	assert.NotContains(t, got, "staple")
	assert.Contains(t, got, maskValue)
}

func TestSanitize_TruncatesOnRuneBoundary(t *testing.T) {
	rec, _ := newCapturedRecorder(t)

	// "ñ" is two bytes; an odd-length ASCII prefix lands the cut inside it.
	long := strings.Repeat("x", defaultMaxDetailLength-1) + strings.Repeat("ñ", 20)
	got := rec.Sanitize(long)

	assert.True(t, strings.HasSuffix(got, truncationMarker))
	assert.True(t, utf8.ValidString(got), "truncation must never split a rune")
	assert.LessOrEqual(t, len(got), defaultMaxDetailLength+len(truncationMarker))
}

func TestSanitize_ShortInputUntouched(t *testing.T) {
	rec, _ := newCapturedRecorder(t)

	assert.Equal(t, "species=canino", rec.Sanitize("species=canino"))
}

func TestRecorder_AnonymousActorIsSystem(t *testing.T) {
	rec, buf := newCapturedRecorder(t)

	rec.Access(context.Background(), "paciente", "12")

	entry := lastLogLine(t, buf)
	assert.Equal(t, "system", entry["actor"])
	assert.Equal(t, "ACCESS", entry["action"])
}

func TestRecorder_TagsActorAndCorrelation(t *testing.T) {
	rec, buf := newCapturedRecorder(t)

	ctx := deliverycontext.WithCorrelationID(context.Background(), "corr-123")
	ctx = deliverycontext.WithPrincipal(ctx, &entity.Principal{
		ID:        3,
		Email:     "vet@clinica.com",
		Kind:      entity.KindStaff,
		Authority: "ROLE_VET",
	})

	rec.Create(ctx, "paciente", "12", "name=Rocky")

	entry := lastLogLine(t, buf)
	assert.Equal(t, "vet@clinica.com", entry["actor"])
	assert.Equal(t, "corr-123", entry["correlation_id"])
	assert.Equal(t, "CREATE", entry["action"])
}

func TestRecorder_UpdateSanitizesBothSnapshots(t *testing.T) {
	rec, buf := newCapturedRecorder(t)

	rec.Update(context.Background(), "usuario", "1", "password=oldpass", "password=newpass")

	entry := lastLogLine(t, buf)
	oldDetail, _ := entry["old"].(string)
	newDetail, _ := entry["new"].(string)
	assert.NotContains(t, oldDetail, "oldpass")
	assert.NotContains(t, newDetail, "newpass")
	assert.Contains(t, oldDetail, maskValue)
	assert.Contains(t, newDetail, maskValue)
}
