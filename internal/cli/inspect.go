package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/guidekit/pkg/axis"
	"github.com/matzehuels/guidekit/pkg/document"
)

var tickHeaders = []string{"Tick", "Value", "X", "Y", "Label", "Label X", "Label Y", "Anchor", "Shown"}

// axisReport is the resolved layout of one axis.
type axisReport struct {
	ID    string
	Kind  string
	Rows  [][]string
	Title string
}

func (c *CLI) inspectCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect <document>",
		Short: "Show the resolved tick and label positions of every axis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := inspectDocument(args[0])
			if err != nil {
				return err
			}
			if interactive {
				return runAxisBrowser(cmd.Context(), reports)
			}
			for i, r := range reports {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, renderReport(r))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse axes interactively")
	return cmd
}

func inspectDocument(path string) ([]axisReport, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	axes, err := doc.BuildAxes()
	if err != nil {
		return nil, err
	}
	reports := make([]axisReport, 0, len(axes))
	for _, ax := range axes {
		r, err := reportAxis(ax)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func reportAxis(ax *axis.Axis) (axisReport, error) {
	items, err := ax.ProcessTicks()
	if err != nil {
		return axisReport{}, err
	}
	cfg := ax.Config()
	r := axisReport{ID: ax.ID(), Kind: geometryKind(ax.Geometry())}

	shown := ax.VisibleLabels(items)
	for i, it := range items {
		row := []string{it.ID, num(it.Value), num(it.Point.X), num(it.Point.Y), "", "", "", "", ""}
		if cfg.Label != nil {
			a := ax.LabelAttrs(it, i)
			row[4], row[5], row[6], row[7] = a.Text, num(a.X), num(a.Y), a.TextAlign
			row[8] = "yes"
			if !shown[i] {
				row[8] = "hidden"
			}
		}
		r.Rows = append(r.Rows, row)
	}
	if cfg.Title != nil {
		a := ax.TitleAttrs()
		r.Title = fmt.Sprintf("%q at (%s, %s) %s", a.Text, num(a.X), num(a.Y), a.TextAlign)
	}
	return r, nil
}

func geometryKind(g axis.Geometry) string {
	switch g.(type) {
	case *axis.Circle:
		return document.TypeCircle
	case *axis.Line:
		return document.TypeLine
	default:
		return fmt.Sprintf("%T", g)
	}
}

func renderReport(r axisReport) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(r.ID))
	b.WriteString(StyleDim.Render(" (" + r.Kind + ")"))
	b.WriteString("\n")

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(tickHeaders...).
		Rows(r.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 || col == 4 {
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})
	b.WriteString(t.Render())

	if r.Title != "" {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("title " + r.Title))
	}
	return b.String()
}

func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// runAxisBrowser is a no-op for documents without axes.
func runAxisBrowser(ctx context.Context, reports []axisReport) error {
	if len(reports) == 0 {
		printInfo("No axes")
		return nil
	}
	return browseAxes(ctx, reports)
}
