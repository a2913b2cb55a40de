package output

import (
	"testing"
)

func TestColorSchemes(t *testing.T) {
	for name, scheme := range map[string]*ColorScheme{
		"default":  DefaultColorScheme(),
		"no-color": NoColorScheme(),
	} {
		if scheme.Label == nil || scheme.Value == nil || scheme.Spread == nil ||
			scheme.Count == nil || scheme.File == nil || scheme.Error == nil || scheme.Success == nil {
			t.Errorf("%s scheme has a nil color", name)
		}
	}

	// Disabled colors print plain text
	noColor := NoColorScheme()
	if got := noColor.Label.Sprint("EXACT"); got != "EXACT" {
		t.Errorf("NoColorScheme().Label.Sprint() = %q, want plain text", got)
	}
}

func TestErrorIcon(t *testing.T) {
	if got := ErrorIcon(true); got != "✗" {
		t.Errorf("ErrorIcon(true) = %q, want %q", got, "✗")
	}
	if got := ErrorIcon(false); got == "" {
		t.Error("ErrorIcon(false) should not be empty")
	}
}
