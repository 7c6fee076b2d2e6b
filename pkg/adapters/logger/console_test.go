package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/bouncer/pkg/ports"
)

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		level     ports.LogLevel
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
		wantError bool
	}{
		{ports.LevelDebug, true, true, true, true},
		{ports.LevelInfo, false, true, true, true},
		{ports.LevelWarn, false, false, true, true},
		{ports.LevelError, false, false, false, true},
		{ports.LevelQuiet, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var out, errOut bytes.Buffer
			log := NewConsoleWriter(tt.level, &out, &errOut)

			log.Debug("debug line")
			log.Info("info line")
			log.Warn("warn line")
			log.Error("error line")

			checks := []struct {
				buf  *bytes.Buffer
				text string
				want bool
			}{
				{&out, "debug line", tt.wantDebug},
				{&out, "info line", tt.wantInfo},
				{&errOut, "warn line", tt.wantWarn},
				{&errOut, "error line", tt.wantError},
			}
			for _, c := range checks {
				if got := strings.Contains(c.buf.String(), c.text); got != c.want {
					t.Errorf("%q present = %v, want %v", c.text, got, c.want)
				}
			}
		})
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &out, &out)

	log.WithComponent("sequence").Debug("Frame %d: center y=%d", 3, 45)

	got := out.String()
	if !strings.HasPrefix(got, "[sequence] ") {
		t.Errorf("expected component prefix, got %q", got)
	}
	if !strings.Contains(got, "3") || !strings.Contains(got, "45") {
		t.Errorf("expected formatted arguments, got %q", got)
	}
	if strings.Contains(got, "\033[") {
		t.Error("expected no color codes when writing to a buffer")
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	log.Info("ignored %d", 1)

	if log.WithComponent("x") != log {
		t.Error("expected WithComponent to return the same logger")
	}
}
