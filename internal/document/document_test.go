package document

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "alpha\nbeta\n", []string{"alpha", "beta"}},
		{"no trailing newline", "alpha\nbeta", []string{"alpha", "beta"}},
		{"crlf", "alpha\r\nbeta\r\n", []string{"alpha", "beta"}},
		{"empty lines kept", "alpha\n\nbeta\n", []string{"alpha", "", "beta"}},
		{"empty input", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Load(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// fakePDFToText drops an executable pdftotext stand-in into a temp dir
// and puts that dir first on PATH for the test.
func fakePDFToText(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "pdftotext")
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("writing fake pdftotext: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestLoadPDF(t *testing.T) {
	fakePDFToText(t, "#!/bin/sh\nprintf 'alpha\\nbeta\\n'\n")

	got, err := LoadPDF("paper.pdf")
	if err != nil {
		t.Fatalf("LoadPDF() failed: %v", err)
	}

	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadPDF() = %q, want %q", got, want)
	}
}

func TestLoadPDFKeepsConsumedOutput(t *testing.T) {
	// The converter is terminated and waited on only after its output
	// has been consumed, so text the converter managed to produce still
	// comes back even when it exits abnormally afterwards.
	fakePDFToText(t, "#!/bin/sh\nprintf 'alpha\\nbeta\\n'\nexit 1\n")

	got, err := LoadPDF("paper.pdf")
	if err != nil {
		t.Fatalf("LoadPDF() failed: %v", err)
	}

	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadPDF() = %q, want %q", got, want)
	}
}

func TestLoadPDFConverterMissing(t *testing.T) {
	// Only an empty dir on PATH: the converter cannot be found.
	t.Setenv("PATH", t.TempDir())

	if _, err := LoadPDF("paper.pdf"); err == nil {
		t.Error("LoadPDF() without a converter succeeded, want error")
	}
}
