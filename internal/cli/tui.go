package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// AxisBrowserModel pages through axis reports one at a time.
type AxisBrowserModel struct {
	Reports []axisReport
	Cursor  int
}

func (m AxisBrowserModel) Init() tea.Cmd {
	return nil
}

func (m AxisBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h", "up", "k", "shift+tab":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "right", "l", "down", "j", "tab":
		if m.Cursor < len(m.Reports)-1 {
			m.Cursor++
		}
	}
	return m, nil
}

func (m AxisBrowserModel) View() string {
	var b strings.Builder
	b.WriteString(StyleDim.Render("←/→ switch axis  q quit"))
	b.WriteString("\n\n")
	if len(m.Reports) > 0 {
		b.WriteString(renderReport(m.Reports[m.Cursor]))
	}
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Reports))))
	b.WriteString("\n")
	return b.String()
}

func browseAxes(ctx context.Context, reports []axisReport) error {
	p := tea.NewProgram(AxisBrowserModel{Reports: reports}, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
