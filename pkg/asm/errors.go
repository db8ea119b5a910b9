package asm

import (
	"fmt"
)

// Kind classifies an assembly failure. A Kind is itself an error so callers
// can match with errors.Is(err, asm.ErrUnknownMnemonic).
type Kind int

const (
	ErrFileAccess Kind = iota + 1
	ErrMalformedLabel
	ErrDuplicateLabel
	ErrInvalidLiteral
	ErrInvalidSymbol
	ErrUnknownMnemonic
	ErrAddressOverflow
	ErrInvalidWord
)

var kindNames = map[Kind]string{
	ErrFileAccess:      "file access error",
	ErrMalformedLabel:  "malformed label",
	ErrDuplicateLabel:  "duplicate label",
	ErrInvalidLiteral:  "invalid literal",
	ErrInvalidSymbol:   "invalid symbol",
	ErrUnknownMnemonic: "unknown mnemonic",
	ErrAddressOverflow: "address overflow",
	ErrInvalidWord:     "invalid word",
}

func (k Kind) Error() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("asm error %d", int(k))
}

// Error is the error returned for every failed run. Line is 1-based and zero
// when the failure is not tied to a source line.
type Error struct {
	Kind  Kind
	Line  int
	Text  string
	Field string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Field != "" {
		msg += " in " + e.Field + " field"
	}
	if e.Text != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Text)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s on line %d", msg, e.Line)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, lineNo int, text string) *Error {
	return &Error{Kind: kind, Line: lineNo, Text: text}
}
