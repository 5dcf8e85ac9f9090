package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/quizmix/quizmix/internal/ui/theme"
)

// Checkbox is a toggleable boolean option.
type Checkbox struct {
	Label   string
	Checked bool
	Active  bool
}

// NewCheckbox creates a new checkbox.
func NewCheckbox(label string, checked bool) Checkbox {
	return Checkbox{
		Label:   label,
		Checked: checked,
	}
}

// Update toggles the checkbox on space or enter while active.
func (c Checkbox) Update(msg tea.Msg) (Checkbox, tea.Cmd) {
	if !c.Active {
		return c, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case " ", "space", "enter":
			c.Checked = !c.Checked
		}
	}

	return c, nil
}

// View renders the checkbox.
func (c Checkbox) View() string {
	box := "[ ] "
	if c.Checked {
		box = "[x] "
	}
	if c.Active {
		return theme.Label.Render(box) + theme.Body.Render(c.Label)
	}
	return theme.Hint.Render(box + c.Label)
}
