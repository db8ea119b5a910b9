package asm

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestSymbolTable(t *testing.T) {
	t.Run("Reserved", func(t *testing.T) {
		s := NewSymbolTable()
		want := map[string]uint16{
			"SP":     0,
			"LCL":    1,
			"ARG":    2,
			"THIS":   3,
			"THAT":   4,
			"SCREEN": 16384,
			"KBD":    24576,
		}
		for i := 0; i < 16; i++ {
			want["R"+strconv.Itoa(i)] = uint16(i)
		}
		for name, addr := range want {
			got, ok := s.Lookup(name)
			if !ok || got != addr {
				t.Errorf("Lookup(%q) = %d, %v; want %d, true", name, got, ok, addr)
			}
			if !IsReserved(name) {
				t.Errorf("IsReserved(%q) = false", name)
			}
		}
		if s.Len() != len(want) {
			t.Errorf("Len() = %d; want %d", s.Len(), len(want))
		}
		if IsReserved("R16") || IsReserved("sp") {
			t.Error("IsReserved accepted a non-reserved name")
		}
	})

	t.Run("VariableAllocation", func(t *testing.T) {
		s := NewSymbolTable()
		for i, name := range []string{"x", "y", "z"} {
			addr, existed, err := s.Allocate(name)
			if err != nil {
				t.Fatalf("Allocate(%q) failed: %v", name, err)
			}
			if existed {
				t.Errorf("Allocate(%q) reported existing", name)
			}
			if want := uint16(VariableBase + i); addr != want {
				t.Errorf("Allocate(%q) = %d; want %d", name, addr, want)
			}
		}

		// Second reference resolves to the same address.
		addr, existed, _ := s.Allocate("y")
		if !existed || addr != 17 {
			t.Errorf("Allocate(\"y\") again = %d, %v; want 17, true", addr, existed)
		}

		// Reserved names and labels are never reallocated.
		if addr, existed, _ := s.Allocate("KBD"); !existed || addr != 24576 {
			t.Errorf("Allocate(\"KBD\") = %d, %v; want 24576, true", addr, existed)
		}
	})

	t.Run("Labels", func(t *testing.T) {
		s := NewSymbolTable()
		if err := s.Define("LOOP", 4); err != nil {
			t.Fatalf("Define failed: %v", err)
		}
		err := s.Define("LOOP", 9)
		if err == nil {
			t.Fatal("Define accepted a duplicate label")
		}
		if trace := fmt.Sprintf("%+v", err); !strings.Contains(trace, "Define") {
			t.Errorf("Define error carries no stack trace:\n%s", trace)
		}
		if got, _ := s.Lookup("LOOP"); got != 4 {
			t.Errorf("LOOP = %d after failed redefinition; want 4", got)
		}

		if err := s.Define("THIS", 7); err != nil {
			t.Fatalf("Define over reserved name failed: %v", err)
		}
		sym, _ := s.Get("THIS")
		if sym.Address != 7 || sym.Kind != SymbolLabel {
			t.Errorf("THIS = %+v; want label at 7", sym)
		}

		// Labels do not consume variable addresses.
		if addr, _, _ := s.Allocate("v"); addr != VariableBase {
			t.Errorf("first variable = %d; want %d", addr, VariableBase)
		}
	})

	t.Run("Exhausted", func(t *testing.T) {
		s := NewSymbolTable()
		s.nextVariable = MaxAddress
		if addr, _, err := s.Allocate("last"); err != nil || addr != MaxAddress {
			t.Fatalf("Allocate(\"last\") = %d, %v; want %d", addr, err, MaxAddress)
		}
		if _, _, err := s.Allocate("one_more"); err == nil {
			t.Error("Allocate past 15-bit range succeeded")
		}
	})

	t.Run("String", func(t *testing.T) {
		s := NewSymbolTable()
		s.Define("END", 2)
		s.Allocate("i")
		out := s.String()
		if out != s.String() {
			t.Error("String() is not deterministic")
		}
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if !strings.Contains(lines[0], "R0") {
			t.Errorf("first line = %q; want R0 (address 0, sorted by name)", lines[0])
		}
		if !strings.Contains(out, "END") || !strings.Contains(out, "(label)") || !strings.Contains(out, "(variable)") {
			t.Errorf("String() missing entries:\n%s", out)
		}
	})
}
