// Package runner wires the qbank parse/shuffle/render pipeline to the
// filesystem for a single one-shot transformation.
package runner

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	randv2 "math/rand/v2"

	"github.com/quizmix/quizmix/internal/qbank"
)

// Options describes one transformation run.
type Options struct {
	// Input is the path of the question-bank text file to read.
	Input string

	// Output is the destination path (combined mode) or the base used to
	// derive split file names. Ignored when InPlace is set.
	Output string

	// Seed makes the shuffle reproducible. Nil means fresh entropy.
	Seed *uint64

	// InPlace overwrites the input file instead of writing Output.
	InPlace bool

	// Split writes a questions file and an answer-key file instead of
	// one combined file.
	Split bool

	// QuestionsOut and AnswersOut override the derived split paths.
	QuestionsOut string
	AnswersOut   string
}

// Summary reports what a successful run produced.
type Summary struct {
	Questions int
	Discarded int

	// OutputPath is set in combined mode.
	OutputPath string

	// QuestionsPath and AnswersPath are set in split mode.
	QuestionsPath string
	AnswersPath   string

	Split bool
}

// String renders the one-line report shown to the user after a run.
func (s *Summary) String() string {
	if s.Split {
		return fmt.Sprintf(
			"Questions processed: %d | Discarded non-question lines: %d | Questions file: %s | Answers file: %s",
			s.Questions, s.Discarded, s.QuestionsPath, s.AnswersPath)
	}
	return fmt.Sprintf(
		"Questions processed: %d | Discarded non-question lines: %d | Output: %s",
		s.Questions, s.Discarded, s.OutputPath)
}

// Run reads the input file, extracts and shuffles its questions, and
// writes the requested outputs. Nothing is written when parsing fails, so
// a malformed bank leaves the filesystem untouched.
func Run(opts Options) (*Summary, error) {
	raw, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	questions, discarded, err := qbank.Parse(splitLines(string(raw)))
	if err != nil {
		return nil, err
	}
	shuffled := qbank.Shuffle(questions, newRand(opts.Seed))

	target := opts.Output
	if opts.InPlace {
		target = opts.Input
	}

	sum := &Summary{
		Questions: len(shuffled),
		Discarded: discarded,
		Split:     opts.Split,
	}

	if opts.Split {
		qPath, aPath := opts.QuestionsOut, opts.AnswersOut
		if qPath == "" || aPath == "" {
			qPath, aPath = defaultSplitPaths(target)
		}
		if err := os.WriteFile(qPath, []byte(qbank.FormatQuestionsOnly(shuffled)), 0o644); err != nil {
			return nil, fmt.Errorf("write questions file: %w", err)
		}
		if err := os.WriteFile(aPath, []byte(qbank.FormatAnswersOnly(shuffled)), 0o644); err != nil {
			return nil, fmt.Errorf("write answers file: %w", err)
		}
		sum.QuestionsPath = qPath
		sum.AnswersPath = aPath
		return sum, nil
	}

	if err := os.WriteFile(target, []byte(qbank.FormatCombined(shuffled)), 0o644); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	sum.OutputPath = target
	return sum, nil
}

// SuggestOutputPath derives a default output path next to the input file,
// e.g. bank.txt -> bank_shuffled.txt.
func SuggestOutputPath(input string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(filepath.Base(input), ext)
	return filepath.Join(filepath.Dir(input), stem+"_shuffled.txt")
}

// defaultSplitPaths derives the split-mode file names from the output
// base: bank.txt -> bank_questions.txt, bank_answers.txt.
func defaultSplitPaths(output string) (string, string) {
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	return base + "_questions.txt", base + "_answers.txt"
}

// splitLines breaks file contents into lines the way the parser expects:
// no trailing phantom line for a final newline, CR stripped for CRLF input.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// newRand builds the shuffle generator: a fixed PCG stream for seeded
// runs, fresh entropy otherwise.
func newRand(seed *uint64) *randv2.Rand {
	if seed != nil {
		return randv2.New(randv2.NewPCG(*seed, *seed))
	}
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// the globally seeded source if it somehow does.
		return randv2.New(randv2.NewPCG(randv2.Uint64(), randv2.Uint64()))
	}
	return randv2.New(randv2.NewPCG(
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	))
}
