package classify

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	bareIntegerRe = regexp.MustCompile(`^\d+$`)
	numericCellRe = regexp.MustCompile(`^[\d,]+\.?\d*$`)
	leadsDigitRe  = regexp.MustCompile(`^\d`)
	firstIntRe    = regexp.MustCompile(`\d+`)
	productCodeRe = regexp.MustCompile(`^[A-Z]+\d+[A-Z]*$`)
	pureNumberRe  = regexp.MustCompile(`^[\d.,\s]+$`)
)

// currency symbols and codes stripped before numeric classification
var currencyMarkers = []string{"$", "€", "£", "¥", "qar", "aed", "usd", "omr", "sar", "inr"}

// Normalize lowercases, trims, and applies Unicode NFKC folding so that
// visually identical header text compares equal.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// IsBareInteger reports whether the cell is a plain integer within
// [min, max], the signature of a serial-number cell.
func IsBareInteger(cell string, min, max int) bool {
	cell = strings.TrimSpace(cell)
	if !bareIntegerRe.MatchString(cell) {
		return false
	}
	n, err := strconv.Atoi(cell)
	if err != nil {
		return false
	}
	return n >= min && n <= max
}

// IsNumericCell reports whether the cell holds a number, optionally
// decorated with thousands separators or a currency marker.
func IsNumericCell(cell string) bool {
	s := Normalize(cell)
	for _, marker := range currencyMarkers {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return numericCellRe.MatchString(s)
}

// LeadsNumeric reports whether the cell starts with a digit, such as a
// quantity with a trailing unit ("2 nos").
func LeadsNumeric(cell string) bool {
	return leadsDigitRe.MatchString(strings.TrimSpace(cell))
}

// IsProductCode reports whether the cell matches a product-code pattern
// such as "LF200A".
func IsProductCode(cell string) bool {
	return productCodeRe.MatchString(strings.TrimSpace(cell))
}

// IsPureNumber reports whether the cell contains only digits, separators
// and whitespace.
func IsPureNumber(cell string) bool {
	s := strings.TrimSpace(cell)
	return s != "" && pureNumberRe.MatchString(s)
}

// FirstInteger returns the first embedded integer in the cell, or false
// when none is present. "Item 12b" yields 12.
func FirstInteger(cell string) (int, bool) {
	match := firstIntRe.FindString(cell)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

// nonEmptyCount returns how many cells hold non-whitespace text.
func nonEmptyCount(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}
