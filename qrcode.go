package qrcode

import "strconv"

// Code is a fully encoded QR symbol: its module matrix and the statistics
// describing how it was built, per spec.md §3's Code/Stats types.
type Code struct {
	Stats Stats

	size int
	mat  [][]bool
}

// Size returns the symbol's side length in modules (21 for version 1, up to
// 177 for version 40).
func (c *Code) Size() int { return c.size }

// Module reports whether the module at (row, col) is dark.
func (c *Code) Module(row, col int) bool { return c.mat[row][col] }

// Stats records the decisions made while encoding a message, per spec.md §5.
type Stats struct {
	Message         string
	MessageLength   int
	Mode            Mode
	Version         int
	ECLevel         ECLevel
	MaskID          int
	SymbolSize      int
	DataCodewords   int
	ECCodewords     int
	FunctionModules int
	DataModules     int
}

// Option configures Encode. Without options, Encode picks the smallest
// version that fits and uses ECLevelM and ModeByte.
type Option func(*encodeConfig)

type encodeConfig struct {
	version int
	ec      ECLevel
	mode    Mode
	hasMode bool
}

// WithVersion pins the symbol version (1-40) instead of letting Encode pick
// the smallest version that fits the message.
func WithVersion(version int) Option {
	return func(c *encodeConfig) { c.version = version }
}

// WithECLevel selects the error-correction level. The default is
// ECLevelM, per spec.md §4.A.
func WithECLevel(ec ECLevel) Option {
	return func(c *encodeConfig) { c.ec = ec }
}

// WithMode selects the encoding mode. The default is ModeByte, per spec.md
// §6's Core API signature; callers must opt in to the narrower Numeric or
// Alphanumeric modes explicitly.
func WithMode(mode Mode) Option {
	return func(c *encodeConfig) {
		c.mode = mode
		c.hasMode = true
	}
}

// Encode builds a QR symbol for message, per spec.md §4's full pipeline:
// mode/version selection, bitstream assembly, Reed-Solomon error-correction
// codewords, block interleaving, function-pattern and data placement, and
// mask selection.
func Encode(message string, opts ...Option) (*Code, error) {
	cfg := encodeConfig{ec: ECLevelM, mode: ModeByte}
	for _, opt := range opts {
		opt(&cfg)
	}

	mode := cfg.mode
	if err := validateMessageForMode(message, mode); err != nil {
		return nil, err
	}

	version, err := selectVersion(len(message), mode, cfg.ec, cfg.version)
	if err != nil {
		return nil, err
	}

	rec, err := lookupCapacity(version, cfg.ec)
	if err != nil {
		return nil, err
	}

	dataBytes, err := assembleBitstream(message, mode, version, rec.dataCodewords)
	if err != nil {
		return nil, err
	}

	dataBlocks := splitBlocks(dataBytes, rec)
	ecBlocks := make([][]int, len(dataBlocks))
	for i, block := range dataBlocks {
		ecBlocks[i] = computeECCodewords(block, rec.ecPerBlock)
	}
	codewords := interleave(dataBlocks, ecBlocks)
	dataBits := codewordsToBits(codewords)

	m := newSymbolMatrix(version)
	m.addFinderAndTiming()
	m.addAlignmentPatterns(version)
	m.reserveFormatArea()
	if version >= 7 {
		m.addVersionInfo(intToBitsMSB(versionWord(version), 18))
	}
	functionModules := 0
	for _, row := range m.functionMask {
		for _, isData := range row {
			if !isData {
				functionModules++
			}
		}
	}

	m.steerData(dataBits)

	maskID, maskedMat := selectMask(m.mat, m.functionMask, cfg.ec)

	final := &symbolMatrix{size: m.size, mat: maskedMat, functionMask: m.functionMask}
	final.writeFormatInfo(formatWord(cfg.ec, maskID))

	dataModules := m.size*m.size - functionModules

	pkgLogger.Infof("encoded %d-char %s message at version %d, EC %s, mask %d", len(message), mode, version, cfg.ec, maskID)

	return &Code{
		size: m.size,
		mat:  final.mat,
		Stats: Stats{
			Message:         message,
			MessageLength:   len(message),
			Mode:            mode,
			Version:         version,
			ECLevel:         cfg.ec,
			MaskID:          maskID,
			SymbolSize:      m.size,
			DataCodewords:   rec.dataCodewords,
			ECCodewords:     rec.ecPerBlock * rec.totalBlocks(),
			FunctionModules: functionModules,
			DataModules:     dataModules,
		},
	}, nil
}

// validateMessageForMode rejects a message that an explicitly requested mode
// cannot encode, so the caller gets an InvalidCharacter error up front rather
// than a failure deep in bitstream assembly.
func validateMessageForMode(message string, mode Mode) error {
	switch mode {
	case ModeNumeric:
		for i := 0; i < len(message); i++ {
			if message[i] < '0' || message[i] > '9' {
				return newError(InvalidCharacter, "numeric mode requires ASCII decimal digits, found "+strconv.QuoteRune(rune(message[i])))
			}
		}
	case ModeAlphanumeric:
		for i := 0; i < len(message); i++ {
			c := message[i]
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			if _, ok := alphanumericCode(c); !ok {
				return newError(InvalidCharacter, "character not valid in alphanumeric mode: "+strconv.QuoteRune(rune(message[i])))
			}
		}
	case ModeByte:
		// every octet is valid
	default:
		return newError(InvalidArgument, "unknown mode")
	}
	return nil
}
