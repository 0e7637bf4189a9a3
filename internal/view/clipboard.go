package view

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// reportFrames is how much of the sim log tail goes into a copied report.
const reportFrames = 300

var errNoClipboard = errors.New("clipboard not supported on this platform")

// clipboardWrite is swapped out in tests; headless CI has no clipboard.
var clipboardWrite = func(s string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(s)
}

// copyReport puts the session report on the system clipboard.
func (g *Game) copyReport() error {
	if err := clipboardWrite(g.sim.SessionReport(reportFrames)); err != nil {
		return fmt.Errorf("failed to copy report: %w", err)
	}
	return nil
}
