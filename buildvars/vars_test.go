package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected default, got %q", got)
	}
	Version = "v2.0.0"
	if got := VersionOrDefault("dev"); got != "v2.0.0" {
		t.Fatalf("expected injected version, got %q", got)
	}
}
