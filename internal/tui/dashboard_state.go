package tui

import (
	"github.com/akyairhashvil/sessionplan/internal/config"
	"github.com/akyairhashvil/sessionplan/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
)

// Pane identifies one of the dashboard columns.
type Pane int

const (
	PaneUpcoming Pane = iota
	PanePast
	PaneBacklog
	paneCount
)

func (p Pane) String() string {
	switch p {
	case PaneUpcoming:
		return "Upcoming"
	case PanePast:
		return "Past"
	case PaneBacklog:
		return "Backlog"
	default:
		return "Unknown"
	}
}

// ViewState tracks pane focus and the cursor inside each pane.
type ViewState struct {
	focused  Pane
	cursors  [paneCount]int
	showHelp bool
}

func (v *ViewState) cursor() int {
	return v.cursors[v.focused]
}

func (v *ViewState) focusNext() {
	v.focused = (v.focused + 1) % paneCount
}

func (v *ViewState) focusPrev() {
	v.focused = (v.focused + paneCount - 1) % paneCount
}

// move shifts the focused cursor by delta within a pane of length items.
func (v *ViewState) move(delta, length int) {
	v.cursors[v.focused] = util.Clamp(v.cursors[v.focused]+delta, 0, length-1)
}

// clamp pulls every cursor back inside its pane after a reload.
func (v *ViewState) clamp(lengths [paneCount]int) {
	for p := range v.cursors {
		v.cursors[p] = util.Clamp(v.cursors[p], 0, lengths[p]-1)
	}
}

// InputKind says what a submitted input line creates.
type InputKind int

const (
	InputNone InputKind = iota
	InputTask
	InputSubtask
	InputSession
)

// InputForm is the single-line prompt used by the add actions.
type InputForm struct {
	kind     InputKind
	parentID string
	prompt   string
	input    textinput.Model
}

func newInputForm() InputForm {
	ti := textinput.New()
	ti.CharLimit = config.MaxTitleLength + config.MaxNoteLength
	ti.Width = 50
	return InputForm{input: ti}
}

func (f *InputForm) Open(kind InputKind, prompt, placeholder string) {
	f.kind, f.prompt = kind, prompt
	f.input.Reset()
	f.input.Placeholder = placeholder
	f.input.Focus()
}

func (f *InputForm) Close() {
	f.kind, f.parentID, f.prompt = InputNone, "", ""
	f.input.Blur()
	f.input.Reset()
}

func (f InputForm) Active() bool {
	return f.kind != InputNone
}
