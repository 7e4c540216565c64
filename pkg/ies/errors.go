package ies

import (
	"errors"
	"fmt"
)

// ErrorCode is the closed set of outcomes of a parse.
type ErrorCode int

const (
	Success              ErrorCode = iota
	NoFile                         // no input file given
	NotIESFile                     // no TILT= line found
	FailedToReadFile               // file could not be opened or read
	InvalidDataInIESFile           // parse OK but the values fail validation
	ParseFailed                    // malformed numeric token or too many tokens
	UnexpectedEndOfFile            // tokens ran out before the table was complete
	NotSupported                   // valid IES feature the renderer cannot handle
)

var errorCodeNames = [...]string{
	Success:              "success",
	NoFile:               "no file",
	NotIESFile:           "not an IES file",
	FailedToReadFile:     "failed to read file",
	InvalidDataInIESFile: "invalid data in IES file",
	ParseFailed:          "parse failed",
	UnexpectedEndOfFile:  "unexpected end of file",
	NotSupported:         "not supported",
}

func (c ErrorCode) String() string {
	if c >= 0 && int(c) < len(errorCodeNames) {
		return errorCodeNames[c]
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error makes ErrorCode usable as a sentinel with errors.Is.
func (c ErrorCode) Error() string {
	return "ies: " + c.String()
}

// Code extracts the ErrorCode carried by err. A nil error is Success and an
// error that carries no code is reported as ParseFailed.
func Code(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}
	return ParseFailed
}
