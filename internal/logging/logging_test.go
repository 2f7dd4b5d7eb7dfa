// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_JSONForNonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf)
	logger.Info("validated", zap.Int("ok", 7))
	_ = logger.Sync()

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}

	if line["msg"] != "validated" {
		t.Errorf("msg = %v, want validated", line["msg"])
	}

	if line["level"] != "info" {
		t.Errorf("level = %v, want info", line["level"])
	}

	if line["ok"] != float64(7) {
		t.Errorf("ok = %v, want 7", line["ok"])
	}
}

func TestNew_DropsDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf)
	logger.Debug("entry")
	_ = logger.Sync()

	if buf.Len() != 0 {
		t.Errorf("debug line written at info level: %q", buf.String())
	}
}

func TestNewWithLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithLevel(&buf, zapcore.DebugLevel)
	logger.Debug("entry", zap.String("name", "jump.wav"))
	_ = logger.Sync()

	if !strings.Contains(buf.String(), "jump.wav") {
		t.Errorf("debug line missing: %q", buf.String())
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(bytes.Buffer) = true, want false")
	}
}
