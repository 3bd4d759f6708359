package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dataidea/dataidea-cli/internal/ui"
)

func TestLogger_EnabledAndSetWriter(t *testing.T) {
	var l Logger
	if l.Enabled() {
		t.Fatalf("expected disabled when Writer is nil")
	}

	var buf bytes.Buffer
	l.SetWriter(&buf)
	if !l.Enabled() {
		t.Fatalf("expected enabled after setting Writer")
	}
}

func TestLogger_Logf_WritesPrefixSubjectAndMessage(t *testing.T) {
	ui.Init(true) // disable ANSI color for stable assertions

	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "X:", PrefixColor: ui.FgGreen}
	l.Logf("  iris-flowers  ", "msg %d", 1)

	out := buf.String()
	if !strings.Contains(out, "X:") {
		t.Fatalf("expected prefix, got %q", out)
	}
	if !strings.Contains(out, "slug=iris-flowers") {
		t.Fatalf("expected trimmed slug, got %q", out)
	}
	if !strings.Contains(out, "msg 1") {
		t.Fatalf("expected formatted message, got %q", out)
	}
}

func TestLogger_Logf_CustomField(t *testing.T) {
	ui.Init(true)

	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "X:", Field: "route"}
	l.Logf("/datasets", "x")

	if got := buf.String(); got != "X: route=/datasets x\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestLogger_Logf_EmptySubject_UsesNone(t *testing.T) {
	ui.Init(true)

	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "X:"}
	l.Logf("   ", "x")

	out := buf.String()
	if !strings.Contains(out, "slug=(none)") {
		t.Fatalf("expected placeholder subject, got %q", out)
	}
}

func TestLogger_Logf_DefaultPrefix(t *testing.T) {
	ui.Init(true)

	var buf bytes.Buffer
	l := Logger{Writer: &buf}
	l.Logf("iris", "x")

	out := buf.String()
	if !strings.Contains(out, "Log:") {
		t.Fatalf("expected default prefix, got %q", out)
	}
}

func TestLogger_Logf_OmitSubject(t *testing.T) {
	ui.Init(true)

	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "X:", OmitSubject: true}
	l.Logf("iris", "x")

	out := buf.String()
	if out != "X: x\n" {
		t.Fatalf("output = %q, want %q", out, "X: x\\n")
	}
}

func TestLogger_Logf_NilReceiver_NoPanic(t *testing.T) {
	ui.Init(true)

	var l *Logger
	l.Logf("iris", "x")
}
