package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/packviz/packviz/pkg/errors"
)

// rsvgConvert is the external tool used for SVG conversion.
// Install via: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
const rsvgConvert = "rsvg-convert"

// ToPDF converts SVG bytes to PDF using rsvg-convert.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "--format=pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert.
// The scale factor controls output resolution (2.0 = 2x for high-DPI displays).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convert(svg, "--format=png", fmt.Sprintf("--zoom=%g", scale))
}

func convert(svg []byte, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(rsvgConvert); err != nil {
		return nil, errors.New(errors.ErrCodeConvert,
			"%s not found: install librsvg (brew install librsvg / apt install librsvg2-bin)", rsvgConvert)
	}

	cmd := exec.Command(rsvgConvert, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConvert, err,
			"%s failed: %s", rsvgConvert, stderr.String())
	}
	return stdout.Bytes(), nil
}
