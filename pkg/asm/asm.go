// Package asm assembles Hack assembly into Hack machine code and back.
package asm

import (
	"bufio"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"hackasm/pkg/utils"
)

// Program is the result of a successful run.
type Program struct {
	Words []Word

	// SourceMap maps each instruction address to its 1-based source line.
	SourceMap map[uint16]int
}

// Strings returns the words in their 16-character textual form.
func (p *Program) Strings() []string {
	out := make([]string, len(p.Words))
	for i, w := range p.Words {
		out[i] = w.String()
	}
	return out
}

type Assembler struct {
	symbols *SymbolTable
}

func NewAssembler() *Assembler {
	return &Assembler{
		symbols: NewSymbolTable(),
	}
}

// Symbols exposes the table built by the last run.
func (a *Assembler) Symbols() *SymbolTable {
	return a.symbols
}

func Assemble(code string) (*Program, error) {
	return NewAssembler().Assemble(code)
}

func (a *Assembler) Assemble(code string) (*Program, error) {
	return a.AssembleLines(strings.Split(code, "\n"))
}

// AssembleLines runs both passes over lines with a fresh symbol table. The
// second pass does not start until every label in the input is bound.
func (a *Assembler) AssembleLines(lines []string) (*Program, error) {
	a.symbols = NewSymbolTable()

	glog.V(1).Infof("first pass started: %d lines", len(lines))
	if err := a.pass1(lines); err != nil {
		return nil, err
	}

	glog.V(1).Info("second pass started")
	prog, err := a.pass2(lines)
	if err != nil {
		return nil, err
	}

	glog.V(3).Infof("symbol table:\n%s", a.symbols)
	return prog, nil
}

func (a *Assembler) pass1(lines []string) error {
	var address int

	for i, raw := range lines {
		lineNo := i + 1
		line := Normalize(raw)

		switch Classify(line) {
		case LineBlank:
			continue
		case LineLabel:
			name, err := parseLabel(line, lineNo)
			if err != nil {
				return err
			}
			if address > MaxAddress {
				return newError(ErrAddressOverflow, lineNo, name)
			}
			if err := a.symbols.Define(name, uint16(address)); err != nil {
				return &Error{Kind: ErrDuplicateLabel, Line: lineNo, Text: name, Err: err}
			}
		default:
			if address > MaxAddress {
				return newError(ErrAddressOverflow, lineNo, line)
			}
			address++
		}
	}

	return nil
}

func (a *Assembler) pass2(lines []string) (*Program, error) {
	prog := &Program{
		Words:     make([]Word, 0, len(lines)),
		SourceMap: make(map[uint16]int),
	}

	for i, raw := range lines {
		lineNo := i + 1
		line := Normalize(raw)

		var (
			word Word
			err  error
		)
		kind := Classify(line)
		switch kind {
		case LineBlank, LineLabel:
			continue
		case LineAddress:
			word, err = EncodeAddress(line, lineNo, a.symbols)
		default:
			word, err = EncodeCompute(line, lineNo)
		}
		if err != nil {
			return nil, err
		}

		glog.V(2).Infof("line %d: %s %s -> %s", lineNo, kind, line, word)
		prog.SourceMap[uint16(len(prog.Words))] = lineNo
		prog.Words = append(prog.Words, word)
	}

	return prog, nil
}

// ReadLines reads path into lines without trailing newlines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: ErrFileAccess, Text: path, Err: err}
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, &Error{Kind: ErrFileAccess, Text: path, Err: errors.Wrap(err, "read")}
	}
	return lines, nil
}

// AssembleFile assembles inPath and writes the result to outPath. The output
// file is only created once assembly has succeeded.
func AssembleFile(inPath, outPath string) error {
	fullPath, _, err := utils.GetPathInfo(inPath)
	if err != nil {
		return &Error{Kind: ErrFileAccess, Text: inPath, Err: err}
	}

	glog.Infof("assembling started: %s", fullPath)
	lines, err := ReadLines(fullPath)
	if err != nil {
		return err
	}

	prog, err := NewAssembler().AssembleLines(lines)
	if err != nil {
		return errors.Wrap(err, filepath.Base(inPath))
	}

	err = utils.WriteFileAtomic(outPath, func(f *os.File) error {
		return WriteHack(f, prog.Words)
	})
	if err != nil {
		return &Error{Kind: ErrFileAccess, Text: outPath, Err: err}
	}

	glog.Infof("assembling ended: %d words -> %s", len(prog.Words), outPath)
	return nil
}
