package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/veaveberg/qreate/internal/qr"
	"github.com/veaveberg/qreate/internal/render"
	"github.com/veaveberg/qreate/internal/vector"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func newPipeline() *render.Pipeline {
	return render.NewPipeline(qr.NewEncoder(), vector.NewScope())
}

func TestOnceSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "code.svg")
	opts := options{text: "https://example.com", radius: 10, out: out, fg: render.DefaultFill}
	if err := once(context.Background(), newPipeline(), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") || !strings.HasSuffix(string(data), "</svg>") {
		t.Errorf("expected a standalone SVG file, got %.80q", data)
	}
}

func TestOncePNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "code.png")
	opts := options{text: "hello", radius: 10, out: out, pngSize: 64, bg: "#ffffff"}
	if err := once(context.Background(), newPipeline(), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("expected 64px, got %v", img.Bounds())
	}
}

func TestOnceDerivedFilename(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if err := once(context.Background(), newPipeline(), options{text: "https://example.com/a b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "qr-example.com-a-b.svg")); err != nil {
		t.Errorf("expected the derived file name: %v", err)
	}
}

func TestOnceErrors(t *testing.T) {
	if err := once(context.Background(), newPipeline(), options{}); err == nil {
		t.Error("expected an error without text")
	}
	opts := options{text: strings.Repeat("a", 4000), out: filepath.Join(t.TempDir(), "x.svg")}
	if err := once(context.Background(), newPipeline(), opts); err == nil {
		t.Error("expected an encoder error")
	}
}

func TestWatch(t *testing.T) {
	out := filepath.Join(t.TempDir(), "live.svg")
	opts := options{radius: 0, out: out, debounce: 500 * time.Millisecond}
	in := strings.NewReader("first\n\nsecond\nhttps://example.com\n")

	if err := watch(context.Background(), newPipeline(), opts, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected the last line to be written: %v", err)
	}

	want, err := newPipeline().Generate(context.Background(), render.Input{Text: "https://example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), want.ModulePath) {
		t.Error("expected the file to hold the last watched input")
	}
}
