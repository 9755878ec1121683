package qrcode

import "strings"

// Mode selects how the message payload is packed into the bitstream.
// Kanji (mode indicator 0011) is out of scope, per spec.md §1 Non-goals.
type Mode int

const (
	// ModeNumeric accepts only ASCII decimal digits.
	ModeNumeric Mode = iota
	// ModeAlphanumeric accepts 0-9, A-Z, and the symbols " $%*+-./:".
	ModeAlphanumeric
	// ModeByte accepts arbitrary octets, interpreted as ISO-8859-1.
	ModeByte
)

func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "Numeric"
	case ModeAlphanumeric:
		return "Alphanumeric"
	case ModeByte:
		return "Byte"
	default:
		return "Unknown"
	}
}

// modeIndicator returns the 4-bit mode indicator prefixed to the bitstream.
func (m Mode) modeIndicator() uint32 {
	switch m {
	case ModeNumeric:
		return 0b0001
	case ModeAlphanumeric:
		return 0b0010
	case ModeByte:
		return 0b0100
	default:
		return 0
	}
}

// charCountBits returns the width, in bits, of the character-count indicator
// for this mode at the given symbol version. See spec.md §4.C.
func (m Mode) charCountBits(version int) int {
	switch m {
	case ModeNumeric:
		switch {
		case version <= 9:
			return 10
		case version <= 26:
			return 12
		default:
			return 14
		}
	case ModeAlphanumeric:
		switch {
		case version <= 9:
			return 9
		case version <= 26:
			return 11
		default:
			return 13
		}
	case ModeByte:
		if version <= 9 {
			return 8
		}
		return 16
	default:
		return 0
	}
}

// ECLevel is the error-correction level of a symbol. The integer values are
// the wire ordering used when the level is embedded in the 15-bit format
// word (spec.md §3): M=0, L=1, H=2, Q=3.
type ECLevel int

const (
	ECLevelM ECLevel = 0
	ECLevelL ECLevel = 1
	ECLevelH ECLevel = 2
	ECLevelQ ECLevel = 3
)

func (e ECLevel) String() string {
	switch e {
	case ECLevelL:
		return "L"
	case ECLevelM:
		return "M"
	case ECLevelQ:
		return "Q"
	case ECLevelH:
		return "H"
	default:
		return "Unknown"
	}
}

// ParseECLevel parses a single-letter EC level name ("L", "M", "Q", "H",
// case-insensitive).
func ParseECLevel(s string) (ECLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return ECLevelL, nil
	case "M":
		return ECLevelM, nil
	case "Q":
		return ECLevelQ, nil
	case "H":
		return ECLevelH, nil
	default:
		return 0, newError(InvalidArgument, "unknown EC level "+s)
	}
}

// ParseMode parses a mode name ("numeric", "alphanumeric", "byte",
// case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numeric":
		return ModeNumeric, nil
	case "alphanumeric":
		return ModeAlphanumeric, nil
	case "byte", "binary":
		return ModeByte, nil
	default:
		return 0, newError(InvalidArgument, "unknown mode "+s)
	}
}

// alphanumeric character set, indexed 0..44, per spec.md §3.
const alphanumericChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func alphanumericCode(c byte) (int, bool) {
	i := strings.IndexByte(alphanumericChars, c)
	if i < 0 {
		return 0, false
	}
	return i, true
}
