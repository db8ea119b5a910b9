package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Disassemble returns the assembly text for a single word.
func Disassemble(w Word) (string, error) {
	if w.IsAddress() {
		return "@" + strconv.Itoa(int(w.Address())), nil
	}
	if uint16(w)&computeMarker != computeMarker {
		return "", &Error{Kind: ErrUnknownMnemonic, Field: "prefix", Text: w.String()}
	}

	comp, ok := compNames[w.Comp()]
	if !ok {
		return "", &Error{Kind: ErrUnknownMnemonic, Field: "comp", Text: fmt.Sprintf("%07b", w.Comp())}
	}
	// Every 3-bit dest and jump code has a mnemonic.
	dest := destNames[w.Dest()]
	jump := jumpNames[w.Jump()]

	var sb strings.Builder
	if dest != "" {
		sb.WriteString(dest)
		sb.WriteByte('=')
	}
	sb.WriteString(comp)
	if jump != "" {
		sb.WriteByte(';')
		sb.WriteString(jump)
	}
	return sb.String(), nil
}

// DisassembleAll writes one instruction per line to w. Errors carry the
// 1-based position of the offending word.
func DisassembleAll(words []Word, w io.Writer) error {
	for i, word := range words {
		text, err := Disassemble(word)
		if err != nil {
			if e, ok := err.(*Error); ok {
				e.Line = i + 1
			}
			return err
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return errors.Wrap(err, "write disassembly")
		}
	}
	return nil
}
