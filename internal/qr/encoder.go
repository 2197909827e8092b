package qr

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeqown/go-qrcode/v2"
)

var (
	ErrEmptyInput = errors.New("qr: input text is empty")
	ErrEncode     = errors.New("qr: encoding failed")
)

// Encoder turns text into a symbol matrix.
type Encoder interface {
	Encode(ctx context.Context, text string) (ModuleGrid, error)
}

// HighEncoder encodes at error correction level H using go-qrcode.
type HighEncoder struct{}

// NewEncoder returns the default encoder.
func NewEncoder() HighEncoder { return HighEncoder{} }

// Encode runs the encoder off the caller's goroutine so a cancelled ctx
// returns immediately; the abandoned result is dropped.
func (HighEncoder) Encode(ctx context.Context, text string) (ModuleGrid, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}

	type result struct {
		grid ModuleGrid
		err  error
	}
	done := make(chan result, 1)
	go func() {
		grid, err := encode(text)
		done <- result{grid, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.grid, r.err
	}
}

func encode(text string) (ModuleGrid, error) {
	qrc, err := qrcode.NewWith(text, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	w := &matrixWriter{}
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if w.grid == nil {
		return nil, fmt.Errorf("%w: encoder produced no matrix", ErrEncode)
	}
	return w.grid, nil
}

// matrixWriter is a qrcode.Writer that keeps the matrix instead of drawing it.
type matrixWriter struct {
	grid ModuleGrid
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	grid := make(ModuleGrid, mat.Height())
	for row := range grid {
		grid[row] = make([]bool, mat.Width())
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		grid[y][x] = v.IsSet()
	})
	w.grid = grid
	return nil
}

func (w *matrixWriter) Close() error { return nil }
