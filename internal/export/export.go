// Package export turns a rendered document into the artifacts users take
// away: standalone SVG files, PNG rasters and clipboard text.
package export

import (
	"errors"
	"regexp"
	"strings"

	"github.com/veaveberg/qreate/internal/render"
)

var (
	ErrNothingToExport = errors.New("export: no document to export")
	ErrClipboard       = errors.New("export: failed to copy SVG")
)

const prolog = `<?xml version="1.0" standalone="no"?>` + "\n" +
	`<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">` + "\n"

// Standalone returns doc as a complete SVG file, with XML declaration,
// doctype and both namespace declarations.
func Standalone(doc *render.Document) (string, error) {
	if doc == nil {
		return "", ErrNothingToExport
	}
	var b strings.Builder
	b.WriteString(prolog)
	if err := doc.Encode(&b, render.EncodeOptions{XLink: true}); err != nil {
		return "", err
	}
	return b.String(), nil
}

var (
	schemePattern  = regexp.MustCompile(`^https?://`)
	invalidPattern = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	hyphenRuns     = regexp.MustCompile(`-+`)
)

// Filename derives a download name from the encoded text, e.g.
// "https://example.com/a b" gives "qr-example.com-a-b.svg" for ext "svg".
func Filename(text, ext string) string {
	name := schemePattern.ReplaceAllString(text, "")
	name = invalidPattern.ReplaceAllString(name, "-")
	name = hyphenRuns.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		name = "code"
	}
	return "qr-" + name + "." + strings.TrimPrefix(ext, ".")
}
