// Package qrterm displays a QR symbol in a terminal, either by walking this
// module's own module grid (Render) or by delegating to a third-party
// terminal QR renderer (RenderWithLibrary). Like qrimage, it is an external
// collaborator: it only consumes (size, module grid) or the raw message,
// never the encoder's internal state.
package qrterm

import (
	"fmt"
	"io"

	"github.com/mdp/qrterminal/v3"

	"github.com/ashokshau/qrcode"
)

// Symbol is the subset of qrcode.Code that rendering needs.
type Symbol interface {
	Size() int
	Module(row, col int) bool
}

var _ Symbol = (*qrcode.Code)(nil)

// Render prints code to w using Unicode half-block characters, two module
// rows per terminal line, with a 4-module quiet zone. Grounded on
// dfbb-im2code's internal/channel/whatsapp/qr.go renderQR, generalized from
// a flat []bool grid to the qrcode.Code/Symbol interface.
func Render(w io.Writer, code Symbol) {
	size := code.Size()
	const quiet = 4
	totalCols := size + 2*quiet

	blankLine := func() {
		for col := 0; col < totalCols; col++ {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintln(w)
	}

	for row := 0; row < quiet; row += 2 {
		blankLine()
	}

	for row := 0; row < size; row += 2 {
		for col := 0; col < quiet; col++ {
			fmt.Fprint(w, "  ")
		}
		for col := 0; col < size; col++ {
			top := code.Module(row, col)
			bot := false
			if row+1 < size {
				bot = code.Module(row+1, col)
			}
			switch {
			case top && bot:
				fmt.Fprint(w, "██")
			case top && !bot:
				fmt.Fprint(w, "▀▀")
			case !top && bot:
				fmt.Fprint(w, "▄▄")
			default:
				fmt.Fprint(w, "  ")
			}
		}
		for col := 0; col < quiet; col++ {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintln(w)
	}

	for row := 0; row < quiet; row += 2 {
		blankLine()
	}
}

// qrterminalLevel maps our ECLevel onto qrterminal's own level type, which
// shares the same L/M/Q/H ordinal names but not necessarily the same wire
// values, so the mapping is spelled out rather than cast.
func qrterminalLevel(ec qrcode.ECLevel) qrterminal.Level {
	switch ec {
	case qrcode.ECLevelL:
		return qrterminal.L
	case qrcode.ECLevelM:
		return qrterminal.M
	case qrcode.ECLevelQ:
		return qrterminal.Q
	case qrcode.ECLevelH:
		return qrterminal.H
	default:
		return qrterminal.M
	}
}

// RenderWithLibrary re-encodes message with github.com/mdp/qrterminal/v3 and
// prints it to w. Unlike Render, this does not read a qrcode.Code at all:
// qrterminal owns its own encoder, so this path is useful when a caller
// wants the library's half-block/full-block rendering choices without
// depending on this package's matrix layout.
func RenderWithLibrary(w io.Writer, message string, ec qrcode.ECLevel, halfBlocks bool) {
	qrterminal.GenerateWithConfig(message, qrterminal.Config{
		Level:      qrterminalLevel(ec),
		Writer:     w,
		HalfBlocks: halfBlocks,
		BlackChar:  qrterminal.BLACK,
		WhiteChar:  qrterminal.WHITE,
		QuietZone:  qrterminal.QUIET_ZONE,
	})
}
