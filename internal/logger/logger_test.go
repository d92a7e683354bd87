package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetupLevel(t *testing.T) {
	var buf bytes.Buffer
	l := setup(&buf, "warn", "text")
	if l.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", l.GetLevel())
	}
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
}

func TestSetupUnknownLevel(t *testing.T) {
	l := setup(&bytes.Buffer{}, "loud", "")
	if l.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", l.GetLevel())
	}
}

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	l := setup(&buf, "debug", "JSON")
	l.WithField("area", 0.5).Debug("computed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "computed" || entry["area"] != 0.5 {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestL(t *testing.T) {
	defaultLogger = nil
	if L() == nil {
		t.Fatal("L should never return nil")
	}
	if L() != L() {
		t.Error("L should return the same logger")
	}
}
