package main

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates that an input line is not a valid JSON object
	ErrParse = errors.New("parse error")

	// ErrIO indicates that a file could not be opened, read or written
	ErrIO = errors.New("io error")

	// ErrInvalid indicates well-formed input that cannot be laid out as rows
	ErrInvalid = errors.New("invalid data")
)

// Error is a conversion failure tied to a file and, for parse errors, a line.
type Error struct {
	// Kind is ErrParse, ErrIO or ErrInvalid
	Kind error

	// Path is the file being read or written
	Path string

	// Line is the 1-based input line number, 0 when not applicable
	Line int

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: %s:%d: %v", e.Kind, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the error's kind, so errors.Is(err, ErrParse) works.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func newParseError(path string, line int, err error) *Error {
	return &Error{Kind: ErrParse, Path: path, Line: line, Err: err}
}

func newIOError(path string, err error) *Error {
	return &Error{Kind: ErrIO, Path: path, Err: err}
}

func newInvalidError(path string, line int, err error) *Error {
	return &Error{Kind: ErrInvalid, Path: path, Line: line, Err: err}
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsIOError checks if an error is an io error
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsInvalidError checks if an error is an invalid data error
func IsInvalidError(err error) bool {
	return errors.Is(err, ErrInvalid)
}
