package exprerrors

import (
	"fmt"
	"strings"
)

// Expected categorizes the token class the parser was looking for when it
// failed. It lets callers produce targeted diagnostics without string
// matching on the message.
type Expected string

const (
	ExpectedExpression Expected = "expression"   // any license expression
	ExpectedLicense    Expected = "license"      // license id or LicenseRef
	ExpectedException  Expected = "exception"    // exception id or AdditionRef after WITH
	ExpectedOperator   Expected = "operator"     // AND or OR
	ExpectedCloseParen Expected = "close-paren" // )
)

// ParseError describes why an expression failed to parse. Offset is the
// byte position in the input where the failure was detected (0-based);
// Expected, when determinable, names the token class that would have been
// accepted there.
//
// ParseError is a diagnostic value, not a control-flow signal: the engine's
// Parse returns a nil tree for invalid input and only ParseWithInfo surfaces
// the ParseError.
type ParseError struct {
	Input      string   // the original expression
	Offset     int      // byte offset of the failure
	Message    string   // what went wrong
	Expected   Expected // token class expected at Offset, if determinable
	Suggestion string   // suggested fix (optional)
}

// Error implements the error interface. It returns a formatted message with
// a caret marking the failure position.
func (e *ParseError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("invalid SPDX expression at offset %d: %s\n", e.Offset, e.Message))

	if e.Input != "" {
		sb.WriteString("  | ")
		sb.WriteString(e.Input)
		sb.WriteString("\n  | ")
		sb.WriteString(strings.Repeat(" ", caretColumn(e.Input, e.Offset)))
		sb.WriteString("^\n")
	}

	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("  = expected: %s\n", e.Expected))
	}
	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  = suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// caretColumn clamps the caret position into the printable range of the
// input line.
func caretColumn(input string, offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(input) {
		return len(input)
	}
	return offset
}

// New creates a ParseError for the given input and offset.
func New(input string, offset int, message string) *ParseError {
	return &ParseError{
		Input:   input,
		Offset:  offset,
		Message: message,
	}
}

// WithExpected returns the error with its expected token class set.
func (e *ParseError) WithExpected(expected Expected) *ParseError {
	e.Expected = expected
	return e
}

// WithSuggestion returns the error with a suggestion attached.
func (e *ParseError) WithSuggestion(suggestion string) *ParseError {
	e.Suggestion = suggestion
	return e
}
