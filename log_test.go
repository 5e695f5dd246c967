package fluent

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger_ReportsRejections(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewLogger(&buf, slog.LevelDebug))
	t.Cleanup(func() { SetLogger(nil) })

	_, err := NewSequence(1, 2).With(5, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	out := buf.String()
	assert.Contains(t, out, "op=With")
	assert.Contains(t, out, "err=")
	assert.Contains(t, out, "index out of range")
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewLogger(&buf, slog.LevelDebug))
	SetLogger(nil)

	_, _ = SequenceFromIndexed(map[int]int{3: 1})
	assert.Empty(t, buf.String())
}

func TestNewLogger_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelInfo).Info("x", "error", "boom")

	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=")
}
