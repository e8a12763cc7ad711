package backend

import (
	"os"
	"path/filepath"
	"testing"
)

// writeScript drops an executable fake checker into a test temp dir.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checker")
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("writing fake checker: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	cases := []struct {
		name    string
		backend string
		wantErr bool
	}{
		{"aspell", "aspell", false},
		{"languagetool", "languagetool", false},
		{"unknown", "hunspell", true},
		{"empty", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checker, err := New(tc.backend, "", "")
			if tc.wantErr {
				if err == nil {
					t.Errorf("New(%q) succeeded, want error", tc.backend)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) failed: %v", tc.backend, err)
			}
			if checker == nil {
				t.Errorf("New(%q) returned nil checker", tc.backend)
			}
		})
	}
}
