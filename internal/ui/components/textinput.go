package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput wraps bubbles/textinput for small numeric fields like the
// test time limit and question count.
type NumberInput struct {
	Model textinput.Model
	Max   int
}

// NewNumberInput creates a numeric input seeded with an initial value and
// an upper bound on the accepted value.
func NewNumberInput(initial string, max int) NumberInput {
	ti := textinput.New()
	ti.CharLimit = 3
	ti.SetValue(initial)
	return NumberInput{Model: ti, Max: max}
}

// Focus gives the input keyboard focus.
func (n *NumberInput) Focus() tea.Cmd {
	return n.Model.Focus()
}

// Blur removes keyboard focus.
func (n *NumberInput) Blur() {
	n.Model.Blur()
}

// Update filters for digits and forwards to the underlying model.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// Value parses the entered number, clamped to [0, Max]. Empty input is 0.
func (n NumberInput) Value() int {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil || v < 0 {
		return 0
	}
	if n.Max > 0 && v > n.Max {
		return n.Max
	}
	return v
}

// View renders the input.
func (n NumberInput) View() string {
	return n.Model.View()
}
