package form

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRun_RequiresInput(t *testing.T) {
	f := New()

	cmd := f.startRun()
	assert.Nil(t, cmd)
	assert.Contains(t, f.errMsg, "input file")
}

func TestStartRun_RejectsBadSeed(t *testing.T) {
	f := New()
	f.input.SetValue("bank.txt")
	f.seed.SetValue("12x")

	cmd := f.startRun()
	assert.Nil(t, cmd)
	assert.Contains(t, f.errMsg, "Seed")
}

func TestStartRun_ProcessesFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bank.txt")
	bank := "1. Q?\nA. a\nB. b\nC. c\nD. d\nAnswer: A\n"
	require.NoError(t, os.WriteFile(input, []byte(bank), 0o644))

	f := New()
	f.input.SetValue(input)
	f.seed.SetValue("42")
	f.split.Checked = false

	cmd := f.startRun()
	require.NotNil(t, cmd)
	assert.True(t, f.running)

	msg := cmd()
	res, ok := msg.(resultMsg)
	require.True(t, ok)
	require.NoError(t, res.err)
	assert.Contains(t, res.summary, "Questions processed: 1")

	// Output path was derived next to the input.
	assert.FileExists(t, filepath.Join(dir, "bank_shuffled.txt"))
}

func TestStartRun_SurfacesParseFailureWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bank.txt")
	require.NoError(t, os.WriteFile(input, []byte("1. Broken\nA. x\n"), 0o644))

	f := New()
	f.input.SetValue(input)
	f.split.Checked = false

	cmd := f.startRun()
	require.NotNil(t, cmd)

	msg := cmd()
	res, ok := msg.(resultMsg)
	require.True(t, ok)
	require.Error(t, res.err)
	assert.NoFileExists(t, filepath.Join(dir, "bank_shuffled.txt"))
}

func TestUpdate_ResultMessage(t *testing.T) {
	f := New()
	f.running = true

	s, _ := f.Update(resultMsg{summary: "done"})
	got := s.(*FormScreen)
	assert.False(t, got.running)
	assert.Equal(t, "done", got.summary)
	assert.Empty(t, got.errMsg)

	s, _ = got.Update(resultMsg{err: errors.New("boom")})
	got = s.(*FormScreen)
	assert.Equal(t, "boom", got.errMsg)
	assert.Empty(t, got.summary)
}

func TestView_ShowsFormFields(t *testing.T) {
	f := New()
	view := f.View(100, 40)

	assert.Contains(t, view, "Input file")
	assert.Contains(t, view, "Output base file")
	assert.Contains(t, view, "Seed")
	assert.True(t, strings.Contains(view, "answer key"))
}
