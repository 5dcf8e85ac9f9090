package qbank

import (
	"fmt"
	"strings"
)

// FormatCombined renders questions and answer lines into a single
// document. Questions are renumbered from 1 regardless of their source
// numbering.
func FormatCombined(questions []ShuffledQuestion) string {
	var out []string
	for i, q := range questions {
		out = appendQuestion(out, i+1, q)
		out = append(out, fmt.Sprintf("Answer: %s", q.NewAnswerLetter))
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// FormatQuestionsOnly renders the questions without answer lines, for the
// split-output mode's question sheet.
func FormatQuestionsOnly(questions []ShuffledQuestion) string {
	var out []string
	for i, q := range questions {
		out = appendQuestion(out, i+1, q)
	}
	return strings.Join(out, "\n")
}

// FormatAnswersOnly renders the answer key: one "n. X" line per question.
func FormatAnswersOnly(questions []ShuffledQuestion) string {
	var out []string
	for i, q := range questions {
		out = append(out, fmt.Sprintf("%d. %s", i+1, q.NewAnswerLetter))
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

func appendQuestion(out []string, number int, q ShuffledQuestion) []string {
	out = append(out, fmt.Sprintf("%d. %s", number, q.StemLines[0]))
	out = append(out, q.StemLines[1:]...)
	for idx, text := range q.ShuffledChoices {
		out = append(out, fmt.Sprintf("%s. %s", LetterAt(idx), text))
	}
	return append(out, "")
}
