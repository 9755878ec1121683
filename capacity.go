package qrcode

import (
	"bufio"
	"bytes"
	_ "embed"
	"strconv"
	"strings"
	"sync"
)

//go:embed capacity_table.txt
var capacityTableSource []byte

// blockGroup is one (block_count, data_codewords_per_block) pair from
// spec.md §3's CapacityRecord. A record has one group, or two when the data
// codewords don't split evenly across blocks (the second group's blocks each
// carry one more codeword than the first).
type blockGroup struct {
	blocks     int
	dataPerLen int
}

// capacityRecord is spec.md §3's CapacityRecord.
type capacityRecord struct {
	dataCodewords int
	ecPerBlock    int
	groups        []blockGroup
}

func (r capacityRecord) totalBlocks() int {
	n := 0
	for _, g := range r.groups {
		n += g.blocks
	}
	return n
}

// blockLengths returns the data length of each block in the order the
// blocks are numbered (group 1 first, then group 2).
func (r capacityRecord) blockLengths() []int {
	lengths := make([]int, 0, r.totalBlocks())
	for _, g := range r.groups {
		for i := 0; i < g.blocks; i++ {
			lengths = append(lengths, g.dataPerLen)
		}
	}
	return lengths
}

type capacityKey struct {
	version int
	ec      ECLevel
}

var (
	capacityTableOnce sync.Once
	capacityTable     map[capacityKey]capacityRecord
	capacityTableErr  error
)

// ecLevelFromFileCode maps the capacity file's wire encoding (M=0, L=1, H=2,
// Q=3, per spec.md §6) to our ECLevel, which shares the same integer values.
func ecLevelFromFileCode(code int) (ECLevel, bool) {
	switch code {
	case 0:
		return ECLevelM, true
	case 1:
		return ECLevelL, true
	case 2:
		return ECLevelH, true
	case 3:
		return ECLevelQ, true
	default:
		return 0, false
	}
}

// loadCapacityTable parses the embedded whitespace-delimited capacity table
// (spec.md §6): "version ec_level data_codewords ec_per_block b1 d1 [b2 d2]"
// per line. Lines that don't parse are skipped with a warning, mirroring
// original_source/qrgen/dataspec.py's _parse_data_spec/spec_dict_from_file.
func loadCapacityTable() (map[capacityKey]capacityRecord, error) {
	capacityTableOnce.Do(func() {
		table := make(map[capacityKey]capacityRecord)
		scanner := bufio.NewScanner(bytes.NewReader(capacityTableSource))
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) != 6 && len(fields) != 8 {
				pkgLogger.Warnf("capacity table: skipping malformed line %d: %q", lineNum, line)
				continue
			}
			nums := make([]int, len(fields))
			ok := true
			for i, f := range fields {
				n, err := strconv.Atoi(f)
				if err != nil {
					ok = false
					break
				}
				nums[i] = n
			}
			if !ok {
				pkgLogger.Warnf("capacity table: skipping non-integer line %d: %q", lineNum, line)
				continue
			}

			version, ecCode, dataCodewords, ecPerBlock := nums[0], nums[1], nums[2], nums[3]
			ec, known := ecLevelFromFileCode(ecCode)
			if !known {
				pkgLogger.Warnf("capacity table: skipping unknown EC code on line %d: %q", lineNum, line)
				continue
			}

			var groups []blockGroup
			if len(nums) == 6 {
				groups = []blockGroup{{blocks: nums[4], dataPerLen: nums[5]}}
			} else {
				groups = []blockGroup{
					{blocks: nums[4], dataPerLen: nums[5]},
					{blocks: nums[6], dataPerLen: nums[7]},
				}
			}

			table[capacityKey{version: version, ec: ec}] = capacityRecord{
				dataCodewords: dataCodewords,
				ecPerBlock:    ecPerBlock,
				groups:        groups,
			}
		}
		if err := scanner.Err(); err != nil {
			capacityTableErr = wrapError(TableLoadError, "failed to read embedded capacity table", err)
			return
		}
		if len(table) == 0 {
			capacityTableErr = newError(TableLoadError, "embedded capacity table produced no entries")
			return
		}
		capacityTable = table
	})
	return capacityTable, capacityTableErr
}

// lookupCapacity returns the capacity record for (version, ec), or a
// CapacityUnavailable error if that combination is missing from the table.
func lookupCapacity(version int, ec ECLevel) (capacityRecord, error) {
	table, err := loadCapacityTable()
	if err != nil {
		return capacityRecord{}, err
	}
	rec, ok := table[capacityKey{version: version, ec: ec}]
	if !ok {
		return capacityRecord{}, newError(CapacityUnavailable,
			"no capacity data for version "+strconv.Itoa(version)+" EC level "+ec.String())
	}
	return rec, nil
}
