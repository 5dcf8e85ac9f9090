package qbank

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	questionStartRe = regexp.MustCompile(`^\s*\d+\.\s*(.*)$`)
	choiceRe        = regexp.MustCompile(`^\s*([A-D])\.\s+(.*)$`)
	answerRe        = regexp.MustCompile(`(?i)^\s*answer\s*:\s*([A-D])\s*$`)
)

// Parse scans input lines top to bottom and extracts every structurally
// valid question block. It returns the questions in source order together
// with the count of lines that belonged to no recognizable block.
//
// The first malformed block aborts the scan with a *ParseError; there is
// no partial result. Original question numbers are only a recognition
// signal; blocks are renumbered sequentially at render time.
func Parse(lines []string) ([]Question, int, error) {
	var questions []Question
	discarded := 0
	i := 0
	n := len(lines)

	for i < n {
		m := questionStartRe.FindStringSubmatch(lines[i])
		if m == nil {
			// Blank filler between blocks is structural whitespace;
			// only lines with unrecognized content count as discarded.
			if strings.TrimSpace(lines[i]) != "" {
				discarded++
			}
			i++
			continue
		}

		startIdx := i
		startLine := i + 1
		var stemLines []string
		if m[1] != "" {
			stemLines = append(stemLines, m[1])
		}
		i++

		// Standalone numbering line (e.g. "1."): skip spacer blanks
		// before the stem text begins.
		for i < n && len(stemLines) == 0 && strings.TrimSpace(lines[i]) == "" {
			i++
		}

		// Stem continues until the first choice line.
		for i < n && !choiceRe.MatchString(lines[i]) {
			if questionStartRe.MatchString(lines[i]) {
				return nil, 0, &ParseError{
					Line:    startLine,
					Cause:   CauseMissingChoices,
					Snippet: snippet(lines, startLine, i+1),
				}
			}
			stemLines = append(stemLines, lines[i])
			i++
		}

		if len(stemLines) == 0 {
			return nil, 0, &ParseError{
				Line:    startLine,
				Cause:   CauseMissingStem,
				Detail:  "before choices",
				Snippet: snippet(lines, startLine, i+2),
			}
		}

		if i >= n {
			return nil, 0, &ParseError{
				Line:    startLine,
				Cause:   CauseEOFBeforeChoices,
				Snippet: snippet(lines, startLine, startIdx+8),
			}
		}

		var choices []Choice
		seen := map[string]bool{}

		for i < n && len(choices) < NumChoices {
			if strings.TrimSpace(lines[i]) == "" {
				i++
				continue
			}
			cm := choiceRe.FindStringSubmatch(lines[i])
			if cm == nil {
				return nil, 0, &ParseError{
					Line:    startLine,
					Cause:   CauseExpectedChoice,
					Detail:  fmt.Sprintf("A-D around line %d", i+1),
					Snippet: snippet(lines, startLine, i+3),
				}
			}
			letter, text := cm[1], cm[2]
			if seen[letter] {
				return nil, 0, &ParseError{
					Line:    startLine,
					Cause:   CauseDuplicateChoice,
					Detail:  fmt.Sprintf("%q at line %d", letter, i+1),
					Snippet: snippet(lines, startLine, i+2),
				}
			}
			seen[letter] = true
			choices = append(choices, Choice{Letter: letter, Text: text})
			i++
		}

		if !fullAlphabet(seen) {
			return nil, 0, &ParseError{
				Line:    startLine,
				Cause:   CauseIncompleteSet,
				Detail:  "(expected exactly one choice each for A, B, C, and D)",
				Snippet: snippet(lines, startLine, i+2),
			}
		}

		for i < n && strings.TrimSpace(lines[i]) == "" {
			i++
		}

		if i >= n {
			return nil, 0, &ParseError{
				Line:    startLine,
				Cause:   CauseMissingAnswer,
				Detail:  "before EOF",
				Snippet: snippet(lines, startLine, startIdx+12),
			}
		}

		am := answerRe.FindStringSubmatch(lines[i])
		if am == nil {
			return nil, 0, &ParseError{
				Line:    startLine,
				Cause:   CauseExpectedAnswer,
				Detail:  fmt.Sprintf("'Answer: <A-D>' around line %d", i+1),
				Snippet: snippet(lines, startLine, i+2),
			}
		}

		answer := strings.ToUpper(am[1])
		// The full-alphabet check above makes this impossible today; kept
		// as a real check so loosening the alphabet degrades into a
		// reported error instead of a bad lookup during the shuffle.
		if !seen[answer] {
			return nil, 0, &ParseError{
				Line:    startLine,
				Cause:   CauseExpectedAnswer,
				Detail:  fmt.Sprintf("letter %q matches no collected choice", answer),
				Snippet: snippet(lines, startLine, i+2),
			}
		}

		questions = append(questions, Question{
			StemLines:    stemLines,
			Choices:      choices,
			AnswerLetter: answer,
			StartLine:    startLine,
		})
		i++
	}

	return questions, discarded, nil
}

func fullAlphabet(seen map[string]bool) bool {
	if len(seen) != NumChoices {
		return false
	}
	for i := 0; i < NumChoices; i++ {
		if !seen[LetterAt(i)] {
			return false
		}
	}
	return true
}

// snippet returns the source lines from 1-based line start through end,
// clamped to the input. Error reports use it to show a bounded window
// around the failing block.
func snippet(lines []string, start, end int) string {
	lo := start - 1
	if lo < 0 {
		lo = 0
	}
	hi := end
	if hi > len(lines) {
		hi = len(lines)
	}
	if lo > hi {
		lo = hi
	}
	return strings.Join(lines[lo:hi], "\n")
}
