// Package form implements the interactive screen for configuring and
// running one shuffle pass: input file, output base, optional seed, and
// the split-output toggle.
package form

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizmix/quizmix/internal/runner"
	"github.com/quizmix/quizmix/internal/screen"
	"github.com/quizmix/quizmix/internal/ui/components"
	"github.com/quizmix/quizmix/internal/ui/layout"
	"github.com/quizmix/quizmix/internal/ui/theme"
)

type field int

const (
	fieldInput field = iota
	fieldOutput
	fieldSeed
	fieldSplit
	fieldProcess
	fieldCount
)

// resultMsg carries the outcome of a background run back to the screen.
type resultMsg struct {
	summary string
	err     error
}

// FormScreen collects run options and launches the transformation.
type FormScreen struct {
	input   components.TextInput
	output  components.TextInput
	seed    components.TextInput
	split   components.Checkbox
	process components.Button

	focus   field
	running bool
	summary string
	errMsg  string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the form screen with the split toggle on, matching the most
// common use (separate question sheet and answer key).
func New() *FormScreen {
	f := &FormScreen{
		input:  components.NewTextInput("path/to/questions.txt", false, 0),
		output: components.NewTextInput("leave empty for <input>_shuffled.txt", false, 0),
		seed:   components.NewTextInput("optional, for a reproducible shuffle", true, 20),
		split:  components.NewCheckbox("Generate separate files: questions + answer key", true),
	}
	f.process = components.NewButton("Process", false, f.startRun)
	return f
}

func (f *FormScreen) Title() string {
	return "Shuffle a question bank"
}

func (f *FormScreen) Init() tea.Cmd {
	return f.input.Focus()
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Shift+Tab", Description: "Previous field"},
		{Key: "Enter", Description: "Process"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		f.running = false
		if msg.err != nil {
			f.errMsg = msg.err.Error()
			f.summary = ""
		} else {
			f.summary = msg.summary
			f.errMsg = ""
		}
		return f, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return f, f.setFocus((f.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return f, f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		}
	}

	return f, f.updateFocused(msg)
}

func (f *FormScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldInput:
		f.input, cmd = f.input.Update(msg)
	case fieldOutput:
		f.output, cmd = f.output.Update(msg)
	case fieldSeed:
		f.seed, cmd = f.seed.Update(msg)
	case fieldSplit:
		f.split, cmd = f.split.Update(msg)
	case fieldProcess:
		f.process, cmd = f.process.Update(msg)
	}
	return cmd
}

func (f *FormScreen) setFocus(target field) tea.Cmd {
	f.input.Blur()
	f.output.Blur()
	f.seed.Blur()
	f.split.Active = false
	f.process.Active = false
	f.focus = target

	switch target {
	case fieldInput:
		return f.input.Focus()
	case fieldOutput:
		// Leaving the input field suggests an output path once.
		if f.output.Value() == "" && strings.TrimSpace(f.input.Value()) != "" {
			f.output.SetValue(runner.SuggestOutputPath(strings.TrimSpace(f.input.Value())))
		}
		return f.output.Focus()
	case fieldSeed:
		return f.seed.Focus()
	case fieldSplit:
		f.split.Active = true
	case fieldProcess:
		f.process.Active = true
	}
	return nil
}

// startRun validates the form and kicks off the pipeline in a command.
func (f *FormScreen) startRun() tea.Cmd {
	if f.running {
		return nil
	}

	input := strings.TrimSpace(f.input.Value())
	if input == "" {
		f.errMsg = "Please choose an input file."
		return nil
	}

	output := strings.TrimSpace(f.output.Value())
	if output == "" {
		output = runner.SuggestOutputPath(input)
	}

	opts := runner.Options{
		Input:  input,
		Output: output,
		Split:  f.split.Checked,
	}

	if raw := strings.TrimSpace(f.seed.Value()); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			f.errMsg = "Seed must be a whole number."
			return nil
		}
		opts.Seed = &seed
	}

	f.running = true
	f.errMsg = ""
	f.summary = ""

	return func() tea.Msg {
		sum, err := runner.Run(opts)
		if err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{summary: sum.String()}
	}
}

func (f *FormScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Label.Render("Input file") + "\n")
	b.WriteString(f.input.View() + "\n\n")

	b.WriteString(theme.Label.Render("Output base file") + "\n")
	b.WriteString(f.output.View() + "\n\n")

	b.WriteString(theme.Label.Render("Seed") + "\n")
	b.WriteString(f.seed.View() + "\n\n")

	b.WriteString(f.split.View() + "\n\n")
	b.WriteString(f.process.View() + "\n")

	switch {
	case f.running:
		b.WriteString("\n" + theme.Hint.Render("Processing..."))
	case f.errMsg != "":
		b.WriteString("\n" + theme.Failed.Render(f.errMsg))
	case f.summary != "":
		b.WriteString("\n" + theme.Ok.Render(f.summary))
	}

	card := theme.Card.Width(min(width-4, 80)).Render(b.String())
	return lipgloss.NewStyle().Padding(1, 2).Render(card)
}
