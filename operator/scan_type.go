package operator

import (
	"strconv"

	"github.com/hupe1980/colstore/model"
)

// ScanType is the comparison a TableScan applies between a column value and
// the search value.
type ScanType uint8

const (
	Equals ScanType = iota
	NotEquals
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

var scanTypeSymbols = [...]string{
	Equals:             "=",
	NotEquals:          "!=",
	LessThan:           "<",
	LessThanOrEqual:    "<=",
	GreaterThan:        ">",
	GreaterThanOrEqual: ">=",
}

// String returns the comparison operator symbol.
func (t ScanType) String() string {
	if t.Valid() {
		return scanTypeSymbols[t]
	}
	return "scantype(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is a known scan type.
func (t ScanType) Valid() bool {
	return int(t) < len(scanTypeSymbols)
}

// ParseScanType returns the scan type for a symbol such as ">=".
// "==" and "<>" are accepted as aliases.
func ParseScanType(symbol string) (ScanType, error) {
	switch symbol {
	case "==":
		return Equals, nil
	case "<>":
		return NotEquals, nil
	}
	for i, s := range scanTypeSymbols {
		if s == symbol {
			return ScanType(i), nil
		}
	}
	return 0, &model.NotFoundError{What: "scan type", Name: symbol}
}

// holds reports whether a three-way comparison result satisfies t.
func (t ScanType) holds(c int) bool {
	switch t {
	case Equals:
		return c == 0
	case NotEquals:
		return c != 0
	case LessThan:
		return c < 0
	case LessThanOrEqual:
		return c <= 0
	case GreaterThan:
		return c > 0
	case GreaterThanOrEqual:
		return c >= 0
	default:
		return false
	}
}
