package interactive

import (
	"strconv"

	"github.com/pterm/pterm"
)

// Prompter asks the user for input
type Prompter interface {
	// Select returns one of options
	Select(label string, options []string, def string) (string, error)
	// Text returns a line of text, def when the user just presses enter
	Text(label string, def string) (string, error)
	// Confirm returns a yes or no answer
	Confirm(label string, def bool) (bool, error)
}

// PtermPrompter prompts on the terminal with pterm's interactive printers
type PtermPrompter struct{}

// Select shows an interactive select list
func (PtermPrompter) Select(label string, options []string, def string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(def).
		WithMaxHeight(len(options)).
		Show(label)
}

// Text shows a single line text input
func (PtermPrompter) Text(label string, def string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithDefaultValue(def).
		Show(label)
}

// Confirm shows a yes/no question
func (PtermPrompter) Confirm(label string, def bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(def).
		Show(label)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
