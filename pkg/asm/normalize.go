package asm

import (
	"strings"
	"unicode"
)

type LineKind int

const (
	LineBlank LineKind = iota
	LineLabel
	LineAddress
	LineCompute
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineLabel:
		return "label"
	case LineAddress:
		return "A-instruction"
	case LineCompute:
		return "C-instruction"
	}
	return "unknown"
}

// Normalize removes all whitespace from raw and drops everything from the
// first "//" on. An empty result means the line carries nothing to assemble.
func Normalize(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))

	inComment := false
	runes := []rune(raw)
	for i, r := range runes {
		if r == '/' && i+1 < len(runes) && runes[i+1] == '/' {
			inComment = true
		}
		if inComment {
			break
		}
		if !unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Classify reports what kind of statement a normalized line holds.
func Classify(line string) LineKind {
	switch {
	case line == "":
		return LineBlank
	case line[0] == '(':
		return LineLabel
	case line[0] == '@':
		return LineAddress
	default:
		return LineCompute
	}
}

// parseLabel extracts NAME from a normalized "(NAME)" line.
func parseLabel(line string, lineNo int) (string, error) {
	if len(line) < 2 || line[len(line)-1] != ')' {
		return "", newError(ErrMalformedLabel, lineNo, line)
	}
	name := line[1 : len(line)-1]
	if !isSymbol(name) {
		return "", newError(ErrMalformedLabel, lineNo, line)
	}
	return name, nil
}

// isSymbol reports whether s is a legal user-defined symbol: letters, digits,
// '_', '.', '$' and ':', not starting with a digit.
func isSymbol(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("_.$:", r) {
			return false
		}
	}

	return true
}
