package qbank

import "fmt"

// ParseCause is a short machine-readable tag describing why a question
// block was rejected.
type ParseCause string

const (
	CauseMissingChoices   ParseCause = "missing choices before next question"
	CauseMissingStem      ParseCause = "missing question stem text"
	CauseEOFBeforeChoices ParseCause = "reached EOF before choices"
	CauseExpectedChoice   ParseCause = "expected choice line"
	CauseDuplicateChoice  ParseCause = "duplicate choice letter"
	CauseIncompleteSet    ParseCause = "incomplete letter set"
	CauseMissingAnswer    ParseCause = "missing Answer line"
	CauseExpectedAnswer   ParseCause = "expected Answer line"
)

// ParseError reports the first structurally invalid question block.
// Parsing halts on it; callers must not write any output when one occurs.
type ParseError struct {
	// Line is the 1-based source line where the offending block started.
	Line int

	// Cause is the machine-readable rejection tag.
	Cause ParseCause

	// Detail elaborates on Cause (offending letter, nearby line number).
	// May be empty.
	Detail string

	// Snippet is a bounded excerpt of the source around the block,
	// never the whole file.
	Snippet string
}

func (e *ParseError) Error() string {
	msg := string(e.Cause)
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	return fmt.Sprintf("malformed question near line %d: %s\nSnippet:\n%s", e.Line, msg, e.Snippet)
}
