package main

import (
	"errors"

	"etxdir/internal/diag"
	"etxdir/internal/scaffold"
)

// Exit codes, one per error kind of the core.
const (
	exitOK                  = 0
	exitGeneric             = 1
	exitUnrecognizedGrammar = 2
	exitMalformedLine       = 3
	exitDepthInconsistency  = 4
	exitFilesystemFailure   = 5
)

// exitCodeError carries a process exit status through cobra's RunE chain.
// The message is already printed by the time it is returned, so cobra's own
// error printing is suppressed via SilenceErrors on the commands that use it.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string { return "" }

// exitForBag maps the first error diagnostic to its exit code.
func exitForBag(bag *diag.Bag) *exitCodeError {
	first, ok := bag.FirstError()
	if !ok {
		return &exitCodeError{code: exitGeneric}
	}
	switch first.Code {
	case diag.DetUnrecognizedGrammar:
		return &exitCodeError{code: exitUnrecognizedGrammar}
	case diag.ClsMalformedLine, diag.ClsEmptyLabel, diag.ClsStrayBrace, diag.ClsBadName:
		return &exitCodeError{code: exitMalformedLine}
	case diag.TreeDepthInconsistency:
		return &exitCodeError{code: exitDepthInconsistency}
	default:
		return &exitCodeError{code: exitGeneric}
	}
}

// exitForErr maps a filesystem-phase error to its exit code.
func exitForErr(err error) *exitCodeError {
	var entryErr *scaffold.EntryError
	if errors.As(err, &entryErr) {
		return &exitCodeError{code: exitFilesystemFailure}
	}
	return &exitCodeError{code: exitGeneric}
}
