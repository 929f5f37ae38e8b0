package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName != "WelcomePath" {
		t.Fatalf("AppName = %q, want %q", AppName, "WelcomePath")
	}
}
