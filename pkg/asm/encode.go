package asm

import (
	"strconv"
	"strings"
	"unicode"
)

// EncodeAddress encodes a normalized "@operand" line. Numeric operands must
// fit in 15 bits; symbolic operands are resolved through syms, allocating a
// variable address on first use.
func EncodeAddress(line string, lineNo int, syms *SymbolTable) (Word, error) {
	operand := strings.TrimPrefix(line, "@")
	if operand == "" {
		return 0, newError(ErrInvalidSymbol, lineNo, line)
	}

	if unicode.IsDigit(rune(operand[0])) {
		v, err := strconv.ParseUint(operand, 10, 15)
		if err != nil {
			return 0, &Error{Kind: ErrInvalidLiteral, Line: lineNo, Text: operand}
		}
		return Word(v), nil
	}

	if !isSymbol(operand) {
		return 0, newError(ErrInvalidSymbol, lineNo, operand)
	}
	addr, _, err := syms.Allocate(operand)
	if err != nil {
		return 0, &Error{Kind: ErrAddressOverflow, Line: lineNo, Text: operand, Err: err}
	}
	return Word(addr), nil
}

// splitCompute breaks "dest=comp;jump" into its three fields. Missing fields
// are returned empty.
func splitCompute(line string) (dest, comp, jump string) {
	eq := strings.IndexByte(line, '=')
	sc := strings.IndexByte(line, ';')

	rest := line
	if eq >= 0 && (sc < 0 || eq < sc) {
		dest = line[:eq]
		rest = line[eq+1:]
		sc = strings.IndexByte(rest, ';')
	}

	if sc >= 0 {
		comp = rest[:sc]
		jump = rest[sc+1:]
	} else {
		comp = rest
	}
	return dest, comp, jump
}

// EncodeCompute encodes a normalized C-instruction line.
func EncodeCompute(line string, lineNo int) (Word, error) {
	dest, comp, jump := splitCompute(line)

	c, ok := compTable[comp]
	if !ok {
		return 0, &Error{Kind: ErrUnknownMnemonic, Line: lineNo, Field: "comp", Text: comp}
	}
	d, ok := destTable[dest]
	if !ok {
		return 0, &Error{Kind: ErrUnknownMnemonic, Line: lineNo, Field: "dest", Text: dest}
	}
	j, ok := jumpTable[jump]
	if !ok {
		return 0, &Error{Kind: ErrUnknownMnemonic, Line: lineNo, Field: "jump", Text: jump}
	}

	return Word(computeMarker | c<<6 | d<<3 | j), nil
}
