package asm

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WordBits is the width of one machine word.
const WordBits = 16

// computeMarker is the fixed "111" prefix of every C-instruction.
const computeMarker = 0b111 << 13

// Word is one encoded instruction.
type Word uint16

// String renders w as 16 '0'/'1' characters, most significant bit first.
func (w Word) String() string {
	return fmt.Sprintf("%016b", uint16(w))
}

// IsAddress reports whether w is an A-instruction.
func (w Word) IsAddress() bool {
	return w&0x8000 == 0
}

// Address returns the low 15 bits of an A-instruction.
func (w Word) Address() uint16 {
	return uint16(w) & MaxAddress
}

// Comp, Dest and Jump return the fields of a C-instruction.
func (w Word) Comp() uint16 { return uint16(w>>6) & 0x7F }
func (w Word) Dest() uint16 { return uint16(w>>3) & 0x7 }
func (w Word) Jump() uint16 { return uint16(w) & 0x7 }

// WriteHack writes one newline-terminated line per word.
func WriteHack(w io.Writer, words []Word) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word.String() + "\n"); err != nil {
			return errors.Wrap(err, "write hack")
		}
	}
	return errors.Wrap(bw.Flush(), "write hack")
}

// ReadHack parses the textual binary format produced by WriteHack. Blank
// lines are skipped.
func ReadHack(r io.Reader) ([]Word, error) {
	var words []Word
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if len(line) != WordBits {
			return nil, newError(ErrInvalidWord, lineNo, line)
		}
		v, err := strconv.ParseUint(line, 2, WordBits)
		if err != nil {
			return nil, newError(ErrInvalidWord, lineNo, line)
		}
		words = append(words, Word(v))
	}
	if err := s.Err(); err != nil {
		return nil, &Error{Kind: ErrFileAccess, Err: err}
	}
	return words, nil
}
