package asm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// VariableBase is the first data-memory address handed out to variables.
	VariableBase = 16

	// MaxAddress is the largest value an A-instruction can carry.
	MaxAddress = 1<<15 - 1
)

var reservedSymbols = map[string]uint16{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": 16384,
	"KBD":    24576,
}

func init() {
	for i := 0; i < 16; i++ {
		reservedSymbols["R"+strconv.Itoa(i)] = uint16(i)
	}
}

type SymbolKind int

const (
	SymbolReserved SymbolKind = iota
	SymbolLabel
	SymbolVariable
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolReserved:
		return "reserved"
	case SymbolLabel:
		return "label"
	case SymbolVariable:
		return "variable"
	}
	return "unknown"
}

type Symbol struct {
	Address uint16
	Kind    SymbolKind
}

// SymbolTable maps symbolic names to addresses for a single assembly run.
// Labels are bound during the first pass, variables lazily during the
// second pass in order of first reference.
type SymbolTable struct {
	symbols map[string]Symbol

	// Next free variable address (monotonically increasing).
	nextVariable int
}

func NewSymbolTable() *SymbolTable {
	s := &SymbolTable{
		symbols:      make(map[string]Symbol, len(reservedSymbols)),
		nextVariable: VariableBase,
	}
	for name, addr := range reservedSymbols {
		s.symbols[name] = Symbol{Address: addr, Kind: SymbolReserved}
	}
	return s
}

// IsReserved reports whether name is one of the architecture's predefined
// symbols.
func IsReserved(name string) bool {
	_, ok := reservedSymbols[name]
	return ok
}

// Define binds a label to addr. A label may shadow a reserved name; binding
// the same label twice is an error.
func (s *SymbolTable) Define(name string, addr uint16) error {
	if sym, ok := s.symbols[name]; ok && sym.Kind != SymbolReserved {
		return errors.Errorf("%q already bound to %d", name, sym.Address)
	}
	s.symbols[name] = Symbol{Address: addr, Kind: SymbolLabel}
	return nil
}

// Allocate returns the address bound to name, binding the next free variable
// address on first use. The bool result reports whether name already existed.
func (s *SymbolTable) Allocate(name string) (uint16, bool, error) {
	if sym, ok := s.symbols[name]; ok {
		return sym.Address, true, nil
	}
	if s.nextVariable > MaxAddress {
		return 0, false, errors.Errorf("no variable address left for %q", name)
	}
	addr := uint16(s.nextVariable)
	s.nextVariable++
	s.symbols[name] = Symbol{Address: addr, Kind: SymbolVariable}
	return addr, false, nil
}

// Lookup returns the address bound to name and whether it was found.
func (s *SymbolTable) Lookup(name string) (uint16, bool) {
	sym, ok := s.symbols[name]
	return sym.Address, ok
}

// Get returns the full symbol entry for name.
func (s *SymbolTable) Get(name string) (Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

func (s *SymbolTable) Len() int {
	return len(s.symbols)
}

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := s.symbols[names[i]], s.symbols[names[j]]
		if a.Address != b.Address {
			return a.Address < b.Address
		}
		return names[i] < names[j]
	})

	var sb strings.Builder
	for _, name := range names {
		sym := s.symbols[name]
		fmt.Fprintf(&sb, "  %-20s  %5d  (%s)\n", name, sym.Address, sym.Kind)
	}
	return sb.String()
}
