// Command qreate renders text as a rounded vector QR code.
//
//	qreate -text https://example.com -o code.svg
//	qreate -text hello -png 800 -o code.png
//	qreate -text hello -copy
//	tail -f urls.txt | qreate -watch -o live.svg
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/veaveberg/qreate/internal/config"
	"github.com/veaveberg/qreate/internal/export"
	"github.com/veaveberg/qreate/internal/qr"
	"github.com/veaveberg/qreate/internal/render"
	"github.com/veaveberg/qreate/internal/vector"
	"github.com/veaveberg/qreate/pkg/log"
)

type options struct {
	text     string
	radius   float64
	out      string
	pngSize  int
	copy     bool
	watch    bool
	debounce time.Duration
	fg, bg   string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var opts options
	flag.StringVar(&opts.text, "text", "", "text or URL to encode (defaults to the remaining arguments)")
	flag.Float64Var(&opts.radius, "radius", cfg.CornerRadius, "corner rounding radius, 0 disables rounding")
	flag.StringVar(&opts.out, "o", "", `output file; "-" for stdout, empty derives qr-<text>.svg|png`)
	flag.IntVar(&opts.pngSize, "png", 0, "write a PNG of this many pixels instead of SVG")
	flag.BoolVar(&opts.copy, "copy", false, "copy the SVG to the clipboard instead of writing a file")
	flag.BoolVar(&opts.watch, "watch", false, "re-render every line read from stdin")
	flag.DurationVar(&opts.debounce, "debounce", 150*time.Millisecond, "quiet period before a watched line is rendered")
	flag.StringVar(&opts.fg, "fg", render.DefaultFill, "module colour")
	flag.StringVar(&opts.bg, "bg", "", "background colour, empty for none")
	flag.Parse()

	if opts.text == "" {
		opts.text = strings.Join(flag.Args(), " ")
	}
	if opts.radius < 0 {
		fmt.Fprintln(os.Stderr, "radius must not be negative")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := render.NewPipeline(qr.NewEncoder(), vector.NewScope())
	if opts.watch {
		err = watch(ctx, pipeline, opts, os.Stdin)
	} else {
		err = once(ctx, pipeline, opts)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func once(ctx context.Context, p *render.Pipeline, opts options) error {
	if opts.text == "" {
		return fmt.Errorf("nothing to encode: pass -text or arguments")
	}
	doc, err := p.Generate(ctx, render.Input{Text: opts.text, Radius: opts.radius})
	if err != nil {
		return err
	}
	return emit(doc, opts)
}

func watch(ctx context.Context, p *render.Pipeline, opts options, in io.Reader) error {
	inputs := make(chan render.Input)
	scanErr := make(chan error, 1)
	go func() {
		defer close(inputs)
		scanner := bufio.NewScanner(in)
		defer func() { scanErr <- scanner.Err() }()
		for scanner.Scan() {
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			select {
			case inputs <- render.Input{Text: text, Radius: opts.radius}:
			case <-ctx.Done():
				return
			}
		}
	}()

	r := render.NewRenderer(p)
	r.Watch(ctx, inputs, opts.debounce, func(doc *render.Document, err error) {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if err := emit(doc, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		log.Debug(log.Fields{"text_length": len(doc.Text), "modules": doc.ModuleCount}, "[qreate.watch] rendered")
	})

	select {
	case err := <-scanErr:
		return err
	default:
		return nil
	}
}

// emit writes doc to the destination picked by opts.
func emit(doc *render.Document, opts options) error {
	doc = doc.WithStyle(render.Style{Fill: opts.fg, Background: opts.bg})

	if opts.copy {
		if err := export.CopyToClipboard(doc); err != nil {
			return fmt.Errorf("failed to copy SVG: %w", err)
		}
		return nil
	}

	ext := "svg"
	if opts.pngSize > 0 {
		ext = "png"
	}
	out := opts.out
	if out == "" {
		out = export.Filename(doc.Text, ext)
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if opts.pngSize > 0 {
		return export.RasterizePNG(w, doc, opts.pngSize)
	}
	svg, err := export.Standalone(doc)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, svg)
	return err
}
