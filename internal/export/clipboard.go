package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/veaveberg/qreate/internal/render"
	"github.com/veaveberg/qreate/pkg/log"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// CopyToClipboard places the standalone SVG of doc on the system clipboard.
// Failures wrap ErrClipboard.
func CopyToClipboard(doc *render.Document) error {
	svg, err := Standalone(doc)
	if err != nil {
		return err
	}
	if err := writeClipboard(svg); err != nil {
		log.Warn(log.Fields{"error": err.Error()}, "[export.CopyToClipboard] clipboard write failed")
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return nil
}
