package qrcode

import "strconv"

const maxVersion = 40

// encodedPayloadBits returns the worst-case number of bits the message
// payload itself (not counting mode indicator or character count) occupies,
// per spec.md §4.C.
func encodedPayloadBits(msgLen int, mode Mode) int {
	switch mode {
	case ModeNumeric:
		bits := 10 * (msgLen / 3)
		switch msgLen % 3 {
		case 1:
			bits += 4
		case 2:
			bits += 7
		}
		return bits
	case ModeAlphanumeric:
		return 11*(msgLen/2) + 6*(msgLen%2)
	case ModeByte:
		return 8 * msgLen
	default:
		return 0
	}
}

// selectVersion picks the smallest version in 1..40 whose data capacity (at
// the given EC level) can hold msgLen characters encoded in mode, or
// validates an explicitly requested version. See spec.md §4.C.
func selectVersion(msgLen int, mode Mode, ec ECLevel, explicitVersion int) (int, error) {
	payloadBits := encodedPayloadBits(msgLen, mode)

	fits := func(version int) (bool, error) {
		rec, err := lookupCapacity(version, ec)
		if err != nil {
			return false, err
		}
		need := 4 + mode.charCountBits(version) + payloadBits
		return rec.dataCodewords*8 >= need, nil
	}

	if explicitVersion != 0 {
		if explicitVersion < 1 || explicitVersion > maxVersion {
			return 0, newError(InvalidArgument, "version must be between 1 and 40, got "+strconv.Itoa(explicitVersion))
		}
		ok, err := fits(explicitVersion)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, newError(MessageTooLong,
				"version "+strconv.Itoa(explicitVersion)+" cannot hold a "+strconv.Itoa(msgLen)+"-character "+mode.String()+" message at EC level "+ec.String())
		}
		pkgLogger.Debugf("using explicit version %d for %s message of length %d", explicitVersion, mode, msgLen)
		return explicitVersion, nil
	}

	for v := 1; v <= maxVersion; v++ {
		ok, err := fits(v)
		if err != nil {
			// capacity gaps are expected at some (version, EC) combinations
			// for a handful of table variants; skip and keep searching.
			continue
		}
		if ok {
			pkgLogger.Debugf("selected version %d for %s message of length %d at EC level %s", v, mode, msgLen, ec)
			return v, nil
		}
	}
	return 0, newError(MessageTooLong,
		"no version 1..40 can hold a "+strconv.Itoa(msgLen)+"-character "+mode.String()+" message at EC level "+ec.String())
}
