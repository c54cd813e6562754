package render

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/packviz/packviz/pkg/errors"
)

func TestConvertToolMissing(t *testing.T) {
	// An empty PATH guarantees LookPath cannot find the converter.
	t.Setenv("PATH", t.TempDir())

	_, err := ToPDF([]byte("<svg/>"))
	if err == nil {
		t.Fatal("ToPDF() should fail when rsvg-convert is not installed")
	}
	if !errors.Is(err, errors.ErrCodeConvert) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeConvert)
	}
	if !strings.Contains(err.Error(), rsvgConvert) {
		t.Errorf("error should name the missing tool: %v", err)
	}
}

func TestConvertToolFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub not portable to windows")
	}

	// Stub the converter with a script that fails loudly.
	dir := t.TempDir()
	stub := filepath.Join(dir, rsvgConvert)
	script := "#!/bin/sh\necho 'bad svg input' >&2\nexit 1\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	_, err := ToPNG([]byte("<svg/>"), 2.0)
	if err == nil {
		t.Fatal("ToPNG() should propagate converter failure")
	}
	if !errors.Is(err, errors.ErrCodeConvert) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeConvert)
	}
	if !strings.Contains(err.Error(), "bad svg input") {
		t.Errorf("error should carry converter stderr: %v", err)
	}
}
