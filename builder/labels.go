// Package builder provides internal helper functions and types
// for naming vertices when a graph is rendered or logged.
package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// LabelFn renders a vertex index as a display label.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Graph algorithms only ever see indices; labels are for output.
type LabelFn func(idx int) string

// DefaultLabelFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultLabelFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolLabelFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Indices outside the alphabet fall back to ExcelColumnLabelFn.
func SymbolLabelFn(idx int) string {
	if idx < 0 || idx > 25 {
		return ExcelColumnLabelFn(idx)
	}
	return string('A' + rune(idx))
}

// AlphanumericLabelFn returns a base-36 string for idx, e.g. 0→"0", 10→"a", 35→"z", 36→"10".
func AlphanumericLabelFn(idx int) string {
	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnLabelFn returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx).
// Negative indices render as decimals.
func ExcelColumnLabelFn(idx int) string {
	if idx < 0 {
		return strconv.Itoa(idx)
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexLabelFn returns the lowercase hexadecimal representation of idx,
// e.g. 0→"0", 10→"a", 255→"ff".
func HexLabelFn(idx int) string {
	return strconv.FormatInt(int64(idx), 16)
}

// PrefixLabelFn returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixLabelFn(prefix string) LabelFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ListLabelFn returns names[idx] when present and the decimal index otherwise.
// The slice is copied.
func ListLabelFn(names []string) LabelFn {
	cp := append([]string(nil), names...)
	return func(idx int) string {
		if idx >= 0 && idx < len(cp) && cp[idx] != "" {
			return cp[idx]
		}
		return strconv.Itoa(idx)
	}
}

// LabelScheme resolves a scheme name as used by scenario files:
// "index" (or ""), "symbol", "excel", "alnum", "hex", or "prefix:<p>".
func LabelScheme(name string) (LabelFn, error) {
	name = strings.TrimSpace(name)
	if p, ok := strings.CutPrefix(name, "prefix:"); ok {
		return PrefixLabelFn(p), nil
	}
	switch strings.ToLower(name) {
	case "", "index":
		return DefaultLabelFn, nil
	case "symbol":
		return SymbolLabelFn, nil
	case "excel":
		return ExcelColumnLabelFn, nil
	case "alnum":
		return AlphanumericLabelFn, nil
	case "hex":
		return HexLabelFn, nil
	}
	return nil, fmt.Errorf("LabelScheme(%q): %w", name, ErrOptionViolation)
}
