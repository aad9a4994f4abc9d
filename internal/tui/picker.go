// Package tui implements the interactive history picker: an input field
// over a table of recorded commands, refined client-side as the user types.
// The chosen command is returned to the caller; nothing is executed here.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Row is one pickable history entry.
type Row struct {
	Cmd   string
	Count int64
	When  string
}

// Picker is the full-screen selection UI. Rows are loaded once before the
// UI starts; no queries run while it is open.
type Picker struct {
	app     *tview.Application
	input   *tview.InputField
	table   *tview.Table
	layout  *tview.Flex
	styles  *Styles
	rows    []Row
	visible []Row
	choice  string
}

// NewPicker builds a picker over the given rows.
func NewPicker(rows []Row) *Picker {
	p := &Picker{
		app:    tview.NewApplication(),
		styles: DefaultStyles(),
		rows:   rows,
	}

	p.input = tview.NewInputField().
		SetLabel("> ").
		SetLabelColor(p.styles.TitleFg).
		SetFieldBackgroundColor(p.styles.BgColor).
		SetFieldTextColor(p.styles.FgColor)

	p.table = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	p.table.SetBorder(true).
		SetBorderColor(p.styles.BorderColor).
		SetTitleColor(p.styles.TitleFg)

	p.input.SetChangedFunc(func(text string) {
		p.reload(text)
	})

	p.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			p.choose()
		case tcell.KeyEscape:
			p.app.Stop()
		}
	})

	// Navigation keys steer the table while the input keeps focus.
	p.input.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown, tcell.KeyPgUp, tcell.KeyPgDn:
			p.table.InputHandler()(event, func(tview.Primitive) {})

			return nil
		}

		return event
	})

	p.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(p.input, 1, 0, true).
		AddItem(p.table, 0, 1, false)

	return p
}

// Run displays the picker and blocks until a choice is made or the user
// escapes. It returns the chosen command, or the empty string when nothing
// was picked.
func (p *Picker) Run() (string, error) {
	p.reload("")

	if err := p.app.SetRoot(p.layout, true).Run(); err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}

	return p.choice, nil
}

// choose records the selected command and stops the UI.
func (p *Picker) choose() {
	row, _ := p.table.GetSelection()

	idx := row - 1
	if idx >= 0 && idx < len(p.visible) {
		p.choice = p.visible[idx].Cmd
	}

	p.app.Stop()
}

// reload refilters the rows and redraws the table.
func (p *Picker) reload(raw string) {
	p.visible = filterRows(p.rows, raw)

	p.table.Clear()

	headers := []string{"Command", "Count", "Last used"}
	for col, header := range headers {
		cell := tview.NewTableCell(header).
			SetTextColor(p.styles.TableHeaderFg).
			SetBackgroundColor(p.styles.TableHeaderBg).
			SetSelectable(false)

		if col == 0 {
			cell.SetExpansion(1)
		}

		p.table.SetCell(0, col, cell)
	}

	for i, r := range p.visible {
		p.table.SetCell(i+1, 0, tview.NewTableCell(r.Cmd).
			SetTextColor(p.styles.FgColor).
			SetExpansion(1))
		p.table.SetCell(i+1, 1, tview.NewTableCell(fmt.Sprintf("%d", r.Count)).
			SetTextColor(p.styles.CountFg).
			SetAlign(tview.AlignRight))
		p.table.SetCell(i+1, 2, tview.NewTableCell(r.When).
			SetTextColor(p.styles.CountFg))
	}

	p.table.SetTitle(fmt.Sprintf(" History (%d) ", len(p.visible)))

	if len(p.visible) > 0 {
		p.table.Select(1, 0)
	}
}

// filterRows applies the filter expression to the rows, matching against
// the command text.
func filterRows(rows []Row, raw string) []Row {
	expr := parseFilter(raw)

	filtered := make([]Row, 0, len(rows))

	for _, r := range rows {
		if expr.matches(r.Cmd) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}
