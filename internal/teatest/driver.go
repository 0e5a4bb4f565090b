// Package teatest drives bubbletea models synchronously in tests.
//
// Interactive forms are tea.Models; the Driver feeds them key messages
// through Update and runs every returned Cmd inline, so a test can fill a
// form without a terminal or a running tea.Program.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one message may trigger.
const MaxDrainDepth = 100

// Cmds that take longer than this are dropped. Cursor blink Cmds sleep on
// a timer; focus and group-change Cmds return immediately.
const cmdTimeout = 10 * time.Millisecond

// Driver holds the model under test.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been produced.
	Quitting bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers an initial WindowSizeMsg.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// New wraps model and runs its Init Cmd.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	d.drain(d.Model.Init(), 0)
	return d
}

// Send dispatches msg and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Type enters s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Backspace deletes n characters before the cursor.
func (d *Driver) Backspace(n int) {
	d.T.Helper()
	for range n {
		d.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	}
}

// Enter presses Enter n times, one field at a time.
func (d *Driver) Enter(n int) {
	d.T.Helper()
	for range n {
		d.Send(tea.KeyMsg{Type: tea.KeyEnter})
	}
}

// Down moves a selection cursor.
func (d *Driver) Down() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

// Esc sends the Escape key.
func (d *Driver) Esc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := runCmd(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(m)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// runCmd returns nil when cmd does not finish within cmdTimeout.
func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink matches cursor blink messages. The first blink of a focused
// input uses an unexported type, matched by name.
func isBlink(msg tea.Msg) bool {
	if _, ok := msg.(cursor.BlinkMsg); ok {
		return true
	}
	name := fmt.Sprintf("%T", msg)
	return strings.Contains(strings.ToLower(name), "blink")
}
