package qrcode

import (
	"io"

	"github.com/charmbracelet/log"
)

// pkgLogger is silent by default: a reusable library should never write to
// stderr unless the embedding application asks it to. cmd/qrgen calls
// SetLogger to wire up visible logging.
var pkgLogger = log.NewWithOptions(io.Discard, log.Options{})

// SetLogger replaces the package-level logger used for the debug, info and
// warn messages emitted during version selection, mask scoring, encoding and
// capacity-table loading. Passing nil
// restores the silent default.
func SetLogger(l *log.Logger) {
	if l == nil {
		pkgLogger = log.NewWithOptions(io.Discard, log.Options{})
		return
	}
	pkgLogger = l
}
