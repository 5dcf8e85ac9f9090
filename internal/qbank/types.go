package qbank

import "strings"

// Alphabet is the fixed set of choice labels in display order. Index 0
// renders first; the same table drives both letter→index and index→letter
// lookups so rendering order and answer remapping cannot drift apart.
const Alphabet = "ABCD"

// NumChoices is the number of choices every question must carry.
const NumChoices = len(Alphabet)

// LetterAt returns the choice label for a zero-based position.
func LetterAt(i int) string {
	return string(Alphabet[i])
}

// LetterIndex returns the zero-based position of a choice label, or -1 if
// the letter is not part of the alphabet.
func LetterIndex(letter string) int {
	return strings.Index(Alphabet, letter)
}

// Choice is one labeled answer option as it appeared in the source.
type Choice struct {
	// Letter is the label from the source file, always one of Alphabet.
	Letter string

	// Text is the option text after the label.
	Text string
}

// Question is a validated question block.
//
// Questions are produced only by Parse and never mutated afterwards;
// Shuffle emits fresh ShuffledQuestion values instead of editing in place.
type Question struct {
	// StemLines is the prompt text, one entry per source line, in source
	// order. Always non-empty.
	StemLines []string

	// Choices holds exactly one entry per letter of Alphabet, in the order
	// encountered in the source.
	Choices []Choice

	// AnswerLetter is the original correct choice's label, upper-cased.
	AnswerLetter string

	// StartLine is the 1-based source line where the block began.
	// Used only for diagnostics.
	StartLine int
}

// ShuffledQuestion is the rewrite of a Question after its choices have
// been permuted. Original letters are dropped; choices render under fresh
// labels in Alphabet order.
type ShuffledQuestion struct {
	// StemLines is copied verbatim from the source question.
	StemLines []string

	// ShuffledChoices holds the four choice texts in permuted order.
	ShuffledChoices []string

	// NewAnswerLetter labels the position in ShuffledChoices now holding
	// the originally correct text.
	NewAnswerLetter string
}
